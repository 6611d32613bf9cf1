// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Wiring of config, logging, stores, metrics and events
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/events"
	"github.com/msto63/sellerdesk/internal/form"
	"github.com/msto63/sellerdesk/internal/form/metrics"
	"github.com/msto63/sellerdesk/internal/notify"
	"github.com/msto63/sellerdesk/internal/refdata"
	"github.com/msto63/sellerdesk/internal/service"
	"github.com/msto63/sellerdesk/internal/store"
	"github.com/msto63/sellerdesk/internal/store/postgres"
	"github.com/msto63/sellerdesk/internal/store/sqlite"
	"github.com/msto63/sellerdesk/pkg/core/config"
	"github.com/msto63/sellerdesk/pkg/core/health"
	"github.com/msto63/sellerdesk/pkg/core/logging"
	"github.com/msto63/sellerdesk/pkg/core/version"
)

// errInvalidInput is returned after field errors have been printed
var errInvalidInput = errors.New("input is invalid")

type app struct {
	cfg       *config.Config
	logger    *logging.Logger
	store     store.Store
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	health    *health.Registry
	publisher *events.Publisher
	server    *http.Server

	departments *service.DepartmentService
	sellers     *service.SellerService
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// openApp loads the configuration and builds the app. interactive keeps
// log output off the terminal.
func openApp(ctx context.Context, interactive bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg, interactive)
}

func newApp(ctx context.Context, cfg *config.Config, interactive bool) (*app, error) {
	lc := logging.DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	if verbose {
		lc.Level = "debug"
	}
	lc.Format = cfg.General.LogFormat
	lc.File = cfg.General.LogFile
	lc.NoStderr = interactive
	logger := logging.Wrap(logging.NewLogger(lc), cfg.General.Name)

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	checks := health.NewRegistry(cfg.General.Name, version.Version)
	checks.Register(health.PingCheck("database", st))

	a := &app{
		cfg:         cfg,
		logger:      logger,
		store:       st,
		registry:    reg,
		metrics:     metrics.NewWithRegisterer(reg),
		health:      checks,
		departments: service.NewDepartmentService(st, logger),
		sellers:     service.NewSellerService(st, logger),
	}

	if cfg.Events.Enabled {
		a.publisher, err = events.NewKafkaPublisher(events.Config{
			Brokers:      cfg.Events.Brokers,
			Topic:        cfg.Events.Topic,
			WriteTimeout: cfg.Events.WriteTimeout.Duration,
		}, logger)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
	}

	if cfg.Metrics.Enabled {
		a.serveMetrics(cfg.Metrics.Addr)
	}

	logger.Debug("app ready", "driver", cfg.Database.Driver, "events", cfg.Events.Enabled)
	return a, nil
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		st, err := sqlite.New(sqlite.Config{Path: cfg.Path})
		if err != nil {
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := postgres.Open(ctx, postgres.Config{
			DSN:             cfg.DSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime.Duration,
		})
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func (a *app) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	mux.Handle("/healthz", a.health.Handler(2*time.Second))
	a.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", addr)
}

func (a *app) close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = a.server.Shutdown(ctx)
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
	_ = a.logger.Sync()
}

// publishChanges subscribes a change event publisher when events are enabled
func (a *app) publishChanges(form string, subscribe func(func()) notify.Subscription, entityID func() *int) {
	if a.publisher == nil {
		return
	}
	subscribe(a.publisher.Observer(form, entityID))
}

func (a *app) departmentSession(p form.Presenter) *form.Session[domain.Department, form.DepartmentFields] {
	s := form.NewSession("department", form.Binder[domain.Department, form.DepartmentFields](form.DepartmentBinder{}),
		form.WithSaver[domain.Department, form.DepartmentFields](a.departments),
		form.WithPresenter[domain.Department, form.DepartmentFields](p),
		form.WithLogger[domain.Department, form.DepartmentFields](a.logger),
		form.WithMetrics[domain.Department, form.DepartmentFields](a.metrics),
	)
	a.publishChanges(s.Name(), s.Subscribe, func() *int {
		d, _ := s.Entity()
		return d.ID
	})
	return s
}

func (a *app) sellerSession(p form.Presenter) (*form.Session[domain.Seller, form.SellerFields], error) {
	nf, err := a.cfg.NumberFormat()
	if err != nil {
		return nil, err
	}
	loader := refdata.NewLoader(a.departments,
		refdata.WithLogger(a.logger),
		refdata.WithMetrics(a.metrics),
	)

	s := form.NewSession("seller", form.Binder[domain.Seller, form.SellerFields](form.NewSellerBinder(nf, a.cfg.Form.DateLayout)),
		form.WithSaver[domain.Seller, form.SellerFields](a.sellers),
		form.WithLoader[domain.Seller, form.SellerFields](loader),
		form.WithPresenter[domain.Seller, form.SellerFields](p),
		form.WithLogger[domain.Seller, form.SellerFields](a.logger),
		form.WithMetrics[domain.Seller, form.SellerFields](a.metrics),
	)
	a.publishChanges(s.Name(), s.Subscribe, func() *int {
		seller, _ := s.Entity()
		return seller.ID
	})
	return s, nil
}

// findDepartment returns a new department for id 0
func (a *app) findDepartment(ctx context.Context, id int) (domain.Department, error) {
	if id == 0 {
		return domain.Department{}, nil
	}
	return a.departments.FindByID(ctx, id)
}

// findSeller returns a new seller for id 0
func (a *app) findSeller(ctx context.Context, id int) (domain.Seller, error) {
	if id == 0 {
		return domain.Seller{}, nil
	}
	return a.sellers.FindByID(ctx, id)
}

// submit runs one submit and turns a non-saved outcome into an error
func submit[E, F any](ctx context.Context, s *form.Session[E, F]) (E, error) {
	outcome := s.Submit(ctx)
	switch outcome.Kind {
	case form.OutcomeSaved:
		entity, _ := s.Entity()
		return entity, nil
	case form.OutcomeInvalid:
		var zero E
		return zero, errInvalidInput
	default:
		var zero E
		return zero, outcome.Fault
	}
}
