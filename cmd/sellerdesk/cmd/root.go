// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Root command and global flags
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sellerdesk",
	Short: "sellerdesk - department and seller records",
	Long: `sellerdesk edits department and seller records through validated forms.

Records are kept in SQLite (default) or PostgreSQL. Every successful save
can publish a change event to Kafka.

Commands:
  department  - edit, save or list departments
  seller      - edit, save or list sellers
  migrate     - create missing tables
  health      - check the database connection
  version     - show build information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
