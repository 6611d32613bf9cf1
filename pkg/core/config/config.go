// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     config
// Description: Configuration loading, defaults and validation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/foundation/utils/mathx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "SELLERDESK_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Form     FormConfig     `toml:"form" yaml:"form"`
	Database DatabaseConfig `toml:"database" yaml:"database"`
	Events   EventsConfig   `toml:"events" yaml:"events"`
	Metrics  MetricsConfig  `toml:"metrics" yaml:"metrics"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
	LogFile     string `toml:"log_file" yaml:"log_file"`
}

// FormConfig holds how fields are rendered and parsed
type FormConfig struct {
	Locale       string `toml:"locale" yaml:"locale"`
	DateLayout   string `toml:"date_layout" yaml:"date_layout"`
	SalaryPlaces int    `toml:"salary_places" yaml:"salary_places"`
}

// DatabaseConfig selects and configures the store backend
type DatabaseConfig struct {
	Driver          string   `toml:"driver" yaml:"driver"` // sqlite or postgres
	Path            string   `toml:"path" yaml:"path"`
	DSN             string   `toml:"dsn" yaml:"dsn"`
	MaxOpenConns    int      `toml:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// EventsConfig holds Kafka change event settings
type EventsConfig struct {
	Enabled      bool     `toml:"enabled" yaml:"enabled"`
	Brokers      []string `toml:"brokers" yaml:"brokers"`
	Topic        string   `toml:"topic" yaml:"topic"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Addr    string `toml:"addr" yaml:"addr"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		General: GeneralConfig{
			Name:        "sellerdesk",
			Environment: "development",
			DataDir:     "./data",
			LogLevel:    "info",
			LogFormat:   "text",
		},
		Form: FormConfig{
			Locale:       "en-US",
			DateLayout:   "02/01/2006",
			SalaryPlaces: mathx.DefaultPlaces,
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			Path:            "./data/sellerdesk.db",
			MaxOpenConns:    10,
			ConnMaxLifetime: Duration{30 * time.Minute},
		},
		Events: EventsConfig{
			Brokers:      []string{"localhost:9092"},
			Topic:        "sellerdesk.changes",
			WriteTimeout: Duration{5 * time.Second},
		},
		Metrics: MetricsConfig{
			Addr: ":9464",
		},
	}
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from SELLERDESK_CONFIG or a default
// location. Without any file the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/sellerdesk/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := Default()
		cfg.expandEnvVars()
		return &cfg, nil
	}

	return Load(path)
}

// applyDefaults fills zero values from Default
func (c *Config) applyDefaults() error {
	if err := mergo.Merge(c, Default()); err != nil {
		return mdwerror.Wrap(err, "failed to apply config defaults").WithCode(mdwerror.CodeConfigError)
	}
	return nil
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.Database.Path = os.ExpandEnv(c.Database.Path)
	c.Database.DSN = os.ExpandEnv(c.Database.DSN)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			return invalid("database.dsn", "postgres driver requires a dsn")
		}
	default:
		return invalid("database.driver", fmt.Sprintf("unknown driver %q", c.Database.Driver))
	}

	if _, err := c.NumberFormat(); err != nil {
		return invalid("form.locale", err.Error())
	}
	if probe := time.Date(1999, time.November, 23, 0, 0, 0, 0, time.UTC); probe.Format(c.Form.DateLayout) == c.Form.DateLayout {
		return invalid("form.date_layout", fmt.Sprintf("layout %q has no date fields", c.Form.DateLayout))
	}
	return nil
}

// NumberFormat returns the salary format of the form section
func (c *Config) NumberFormat() (mathx.NumberFormat, error) {
	return mathx.ParseNumberFormat(c.Form.Locale, c.Form.SalaryPlaces)
}

func invalid(key, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidConfig).
		WithDetail("key", key).
		WithOperation("config.validate")
}
