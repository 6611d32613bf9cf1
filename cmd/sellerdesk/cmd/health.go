// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Health command checking the database connection
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sellerdesk/pkg/core/health"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the database is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx, false)
		if err != nil {
			printError("failed to start", err)
			return err
		}
		defer a.close()

		report := a.health.Check(ctx)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report)
		for _, c := range report.Checks {
			fmt.Fprintf(out, "  %-10s %-9s %v %s\n", c.Name, c.Status, c.Duration, c.Message)
		}
		if report.Status == health.StatusUnhealthy {
			return fmt.Errorf("service is %s", report.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
