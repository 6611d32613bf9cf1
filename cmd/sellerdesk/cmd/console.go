// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Presenter printing form feedback to a writer
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/form"
)

// consolePresenter prints submit failures for headless commands
type consolePresenter struct {
	out io.Writer
}

var _ form.Presenter = consolePresenter{}

func (p consolePresenter) ShowFieldErrors(errs validation.ErrorSet) {
	for _, fe := range errs.Errors() {
		fmt.Fprintf(p.out, "  %s: %s\n", fe.Field, fe.Message)
	}
}

func (p consolePresenter) ShowAlert(title, message string) {
	fmt.Fprintf(p.out, "%s\n  %s\n", title, message)
}
