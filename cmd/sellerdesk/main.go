// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     main
// Description: Entry point of the sellerdesk CLI
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/sellerdesk/cmd/sellerdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
