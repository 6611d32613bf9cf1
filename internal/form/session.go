// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     form
// Description: Form session lifecycle: populate, load, submit, cancel
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package form

import (
	"context"
	"time"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/form/metrics"
	"github.com/msto63/sellerdesk/internal/notify"
	"github.com/msto63/sellerdesk/internal/refdata"
	"github.com/msto63/sellerdesk/pkg/core/logging"
)

// AlertTitle is the title of the alert shown for persistence faults
const AlertTitle = "Error saving object!"

// Saver persists an entity and returns the stored value
type Saver[E any] interface {
	SaveOrUpdate(ctx context.Context, entity E) (E, error)
}

// ReferenceLoader provides the departments a form can select from
type ReferenceLoader interface {
	Load(ctx context.Context) (refdata.List, error)
}

// Presenter displays submit failures. Field errors are shown inline, alerts
// block until acknowledged.
type Presenter interface {
	ShowFieldErrors(errs validation.ErrorSet)
	ShowAlert(title, message string)
}

// State of a session
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitting
	StateErrorDisplayed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateErrorDisplayed:
		return "error_displayed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// OutcomeKind tells which of the three submit results occurred
type OutcomeKind int

const (
	OutcomeSaved OutcomeKind = iota + 1
	OutcomeInvalid
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSaved:
		return metrics.OutcomeSaved
	case OutcomeInvalid:
		return metrics.OutcomeInvalid
	case OutcomeFailed:
		return metrics.OutcomeFailed
	default:
		return "unknown"
	}
}

// Outcome is the result of one Submit. Errors is set for OutcomeInvalid,
// Fault for OutcomeFailed.
type Outcome struct {
	Kind   OutcomeKind
	Errors validation.ErrorSet
	Fault  error
}

// Session drives the edit, validate, save and notify cycle for one entity.
// A Session is used from a single goroutine and does no locking.
type Session[E, F any] struct {
	name      string
	binder    Binder[E, F]
	saver     Saver[E]
	loader    ReferenceLoader
	presenter Presenter
	notifier  *notify.Notifier
	logger    *logging.Logger
	metrics   *metrics.Metrics

	state     State
	entity    E
	hasEntity bool
	fields    F
	refs      refdata.List
	errs      validation.ErrorSet
}

// Option configures a Session
type Option[E, F any] func(*Session[E, F])

// WithSaver sets the persistence collaborator
func WithSaver[E, F any](s Saver[E]) Option[E, F] {
	return func(sess *Session[E, F]) { sess.saver = s }
}

// WithLoader sets the reference data loader
func WithLoader[E, F any](l ReferenceLoader) Option[E, F] {
	return func(sess *Session[E, F]) { sess.loader = l }
}

// WithPresenter sets where submit failures are shown
func WithPresenter[E, F any](p Presenter) Option[E, F] {
	return func(sess *Session[E, F]) { sess.presenter = p }
}

// WithNotifier shares a notifier with other sessions or views
func WithNotifier[E, F any](n *notify.Notifier) Option[E, F] {
	return func(sess *Session[E, F]) { sess.notifier = n }
}

func WithLogger[E, F any](l *logging.Logger) Option[E, F] {
	return func(sess *Session[E, F]) { sess.logger = l }
}

func WithMetrics[E, F any](m *metrics.Metrics) Option[E, F] {
	return func(sess *Session[E, F]) { sess.metrics = m }
}

// NewSession creates an idle session. name labels logs and metrics.
func NewSession[E, F any](name string, binder Binder[E, F], opts ...Option[E, F]) *Session[E, F] {
	s := &Session[E, F]{
		name:      name,
		binder:    binder,
		presenter: NopPresenter{},
		notifier:  notify.New(),
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("form", name)
	return s
}

// Populate sets the entity to edit and renders its fields
func (s *Session[E, F]) Populate(entity E) {
	if s.saver == nil {
		panic(mdwerror.Precondition(s.name+".populate", "service was null"))
	}
	s.entity = entity
	s.hasEntity = true
	s.fields = s.binder.Render(entity, s.refs)
	s.errs = validation.ErrorSet{}
	s.state = StateEditing
}

// LoadReferenceData fetches a fresh department list. On failure the
// previous list is kept and the fault is returned for the caller to show.
func (s *Session[E, F]) LoadReferenceData(ctx context.Context) error {
	if s.loader == nil {
		panic(mdwerror.Precondition(s.name+".load_reference_data", "department service was null"))
	}
	refs, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load reference data", "error", err)
		return err
	}
	s.refs = refs
	return nil
}

// Submit maps the current fields and saves the result. It reports exactly
// one outcome and shows it through the presenter.
func (s *Session[E, F]) Submit(ctx context.Context) Outcome {
	switch {
	case s.state == StateClosed:
		panic(mdwerror.Precondition(s.name+".submit", "session is closed"))
	case !s.hasEntity:
		panic(mdwerror.Precondition(s.name+".submit", "entity was null"))
	case s.saver == nil:
		panic(mdwerror.Precondition(s.name+".submit", "service was null"))
	}

	s.state = StateSubmitting

	result := s.binder.Map(s.fields, s.refs)
	candidate, ok := result.Entity()
	if !ok {
		return s.invalid(result.Errors())
	}

	start := time.Now()
	saved, err := s.saver.SaveOrUpdate(ctx, candidate)
	s.metrics.ObserveSave(s.name, start)
	if err != nil {
		return s.failed(err)
	}

	s.entity = saved
	s.fields = s.binder.Render(saved, s.refs)
	s.errs = validation.ErrorSet{}
	s.notifier.Notify()
	s.state = StateClosed

	s.metrics.IncrementSubmit(s.name, metrics.OutcomeSaved)
	s.logger.Info("entity saved")
	return Outcome{Kind: OutcomeSaved}
}

func (s *Session[E, F]) invalid(errs validation.ErrorSet) Outcome {
	s.errs = errs
	s.state = StateErrorDisplayed
	s.metrics.IncrementSubmit(s.name, metrics.OutcomeInvalid)
	s.logger.Debug("validation failed", "fields", errs.Fields())

	s.presenter.ShowFieldErrors(errs.Clone())
	return Outcome{Kind: OutcomeInvalid, Errors: errs.Clone()}
}

func (s *Session[E, F]) failed(err error) Outcome {
	fault := err
	if !mdwerror.IsPersistence(err) {
		fault = mdwerror.Wrap(err, "failed to save "+s.name).
			WithCode(mdwerror.CodeDatabaseError).
			WithOperation(s.name + ".save")
	}

	s.errs = validation.ErrorSet{}
	s.state = StateErrorDisplayed
	s.metrics.IncrementSubmit(s.name, metrics.OutcomeFailed)
	s.logger.Error("failed to save entity", "error", err)

	s.presenter.ShowAlert(AlertTitle, err.Error())
	return Outcome{Kind: OutcomeFailed, Fault: fault}
}

// Cancel closes the session without saving or notifying
func (s *Session[E, F]) Cancel() {
	s.state = StateClosed
}

// Subscribe registers fn to run after every successful save
func (s *Session[E, F]) Subscribe(fn func()) notify.Subscription {
	return s.notifier.Subscribe(fn)
}

// Unsubscribe removes an observer registered with Subscribe
func (s *Session[E, F]) Unsubscribe(sub notify.Subscription) bool {
	return s.notifier.Unsubscribe(sub)
}

// SetFields replaces the edited field state
func (s *Session[E, F]) SetFields(f F) {
	if s.state == StateIdle || s.state == StateClosed {
		return
	}
	s.fields = f
	if s.state == StateErrorDisplayed {
		return
	}
	s.state = StateEditing
}

// Fields returns the current field state
func (s *Session[E, F]) Fields() F {
	return s.fields
}

// Entity returns the entity held by the session
func (s *Session[E, F]) Entity() (E, bool) {
	return s.entity, s.hasEntity
}

func (s *Session[E, F]) State() State {
	return s.state
}

// Errors returns the field errors of the last invalid submit
func (s *Session[E, F]) Errors() validation.ErrorSet {
	return s.errs.Clone()
}

// ReferenceData returns the loaded department list
func (s *Session[E, F]) ReferenceData() refdata.List {
	return s.refs
}

// Name returns the form name
func (s *Session[E, F]) Name() string {
	return s.name
}

// NopPresenter discards everything
type NopPresenter struct{}

func (NopPresenter) ShowFieldErrors(validation.ErrorSet) {}
func (NopPresenter) ShowAlert(string, string)            {}
