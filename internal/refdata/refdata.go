// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     refdata
// Description: Loads the departments a seller may belong to
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package refdata

import (
	"context"
	"time"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/form/metrics"
	"github.com/msto63/sellerdesk/pkg/core/logging"
)

// DepartmentFinder lists all departments
type DepartmentFinder interface {
	FindAll(ctx context.Context) ([]domain.Department, error)
}

// List is an ordered, read-only sequence of departments
type List struct {
	items []domain.Department
}

// NewList copies items into a List
func NewList(items ...domain.Department) List {
	l := List{items: make([]domain.Department, len(items))}
	for i, d := range items {
		d.ID = domain.CloneID(d.ID)
		l.items[i] = d
	}
	return l
}

// Len returns the number of departments
func (l List) Len() int {
	return len(l.items)
}

func (l List) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the i-th department
func (l List) At(i int) domain.Department {
	d := l.items[i]
	d.ID = domain.CloneID(d.ID)
	return d
}

// First returns the first department, if any
func (l List) First() (domain.Department, bool) {
	if l.IsEmpty() {
		return domain.Department{}, false
	}
	return l.At(0), true
}

// Items returns a copy of the departments
func (l List) Items() []domain.Department {
	out := make([]domain.Department, len(l.items))
	for i := range l.items {
		out[i] = l.At(i)
	}
	return out
}

// IndexOf returns the position of the department equal to d, or -1.
// Persisted departments match by id, others by name.
func (l List) IndexOf(d domain.Department) int {
	for i, item := range l.items {
		if d.ID != nil && item.ID != nil {
			if *d.ID == *item.ID {
				return i
			}
			continue
		}
		if item.Equal(d) {
			return i
		}
	}
	return -1
}

// Loader fetches a fresh List on every call. Nothing is cached.
type Loader struct {
	finder  DepartmentFinder
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// Option configures a Loader
type Option func(*Loader)

func WithLogger(l *logging.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(ld *Loader) { ld.metrics = m }
}

// NewLoader creates a loader backed by finder
func NewLoader(finder DepartmentFinder, opts ...Option) *Loader {
	l := &Loader{finder: finder, logger: logging.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns all departments in the finder's order. A finder failure is
// returned as a persistence fault, never as an empty list.
func (l *Loader) Load(ctx context.Context) (List, error) {
	if l == nil || l.finder == nil {
		panic(mdwerror.Precondition("refdata.load", "department finder was null"))
	}

	start := time.Now()
	defer l.metrics.ObserveReferenceLoad(start)

	items, err := l.finder.FindAll(ctx)
	if err != nil {
		l.logger.Error("failed to load departments", "error", err)
		return List{}, persistenceFault(err)
	}

	l.logger.Debug("departments loaded", "count", len(items))
	return NewList(items...), nil
}

func persistenceFault(err error) error {
	if mdwerror.IsPersistence(err) {
		return mdwerror.Wrap(err, "failed to load departments")
	}
	return mdwerror.Wrap(err, "failed to load departments").
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation("refdata.load")
}
