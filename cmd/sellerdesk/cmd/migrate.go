// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Migrate command creating missing tables
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx, false)
		if err != nil {
			printError("failed to start", err)
			return err
		}
		defer a.close()

		if err := a.store.Migrate(ctx); err != nil {
			printError("migration failed", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date (%s)\n", a.cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
