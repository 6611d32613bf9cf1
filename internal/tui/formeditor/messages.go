// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     formeditor
// Description: Async commands and result messages
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package formeditor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/sellerdesk/internal/form"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// referenceLoadedMsg is sent when the department list has been fetched
type referenceLoadedMsg struct {
	refs refdata.List
	err  error
}

// submitDoneMsg is sent when a submit attempt has produced its outcome
type submitDoneMsg struct {
	outcome form.Outcome
}

func loadReferenceData(ed Editor, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		refs, err := ed.LoadReferenceData(ctx)
		return referenceLoadedMsg{refs: refs, err: err}
	}
}

func submit(ed Editor, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return submitDoneMsg{outcome: ed.Submit(ctx)}
	}
}
