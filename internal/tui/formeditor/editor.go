// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     formeditor
// Description: Form adapters and presenter used by the TUI
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package formeditor

import (
	"context"
	"sync"

	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/form"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// Field describes one editable text input
type Field struct {
	Name        string
	Label       string
	Placeholder string
}

// Editor adapts a typed form session to the text inputs of the model.
// Values and Apply use the order of Fields.
type Editor interface {
	Title() string
	ID() string
	Fields() []Field
	Values() []string
	HasDepartment() bool
	Department() *domain.Department
	Apply(values []string, department *domain.Department)
	LoadReferenceData(ctx context.Context) (refdata.List, error)
	Submit(ctx context.Context) form.Outcome
	Cancel()
}

type departmentEditor struct {
	session *form.Session[domain.Department, form.DepartmentFields]
}

// NewDepartmentEditor wraps a populated department session
func NewDepartmentEditor(s *form.Session[domain.Department, form.DepartmentFields]) Editor {
	return &departmentEditor{session: s}
}

func (e *departmentEditor) Title() string { return "Department" }
func (e *departmentEditor) ID() string    { return e.session.Fields().ID }

func (e *departmentEditor) Fields() []Field {
	return []Field{
		{Name: form.FieldName, Label: "Name", Placeholder: "Department name"},
	}
}

func (e *departmentEditor) Values() []string {
	return []string{e.session.Fields().Name}
}

func (e *departmentEditor) HasDepartment() bool            { return false }
func (e *departmentEditor) Department() *domain.Department { return nil }

func (e *departmentEditor) Apply(values []string, _ *domain.Department) {
	f := e.session.Fields()
	f.Name = values[0]
	e.session.SetFields(f)
}

func (e *departmentEditor) LoadReferenceData(context.Context) (refdata.List, error) {
	return refdata.List{}, nil
}

func (e *departmentEditor) Submit(ctx context.Context) form.Outcome { return e.session.Submit(ctx) }
func (e *departmentEditor) Cancel()                                 { e.session.Cancel() }

type sellerEditor struct {
	session *form.Session[domain.Seller, form.SellerFields]
	layout  string
}

// NewSellerEditor wraps a populated seller session. layout is only used
// as the placeholder of the birth date input.
func NewSellerEditor(s *form.Session[domain.Seller, form.SellerFields], layout string) Editor {
	if layout == "" {
		layout = form.DefaultDateLayout
	}
	return &sellerEditor{session: s, layout: layout}
}

func (e *sellerEditor) Title() string { return "Seller" }
func (e *sellerEditor) ID() string    { return e.session.Fields().ID }

func (e *sellerEditor) Fields() []Field {
	return []Field{
		{Name: form.FieldName, Label: "Name", Placeholder: "Full name"},
		{Name: form.FieldEmail, Label: "Email", Placeholder: "name@example.com"},
		{Name: form.FieldBirthDate, Label: "Birth date", Placeholder: e.layout},
		{Name: form.FieldBaseSalary, Label: "Base salary", Placeholder: "0.00"},
	}
}

func (e *sellerEditor) Values() []string {
	f := e.session.Fields()
	return []string{f.Name, f.Email, f.BirthDate, f.BaseSalary}
}

func (e *sellerEditor) HasDepartment() bool { return true }

func (e *sellerEditor) Department() *domain.Department {
	return e.session.Fields().Department
}

func (e *sellerEditor) Apply(values []string, department *domain.Department) {
	f := e.session.Fields()
	f.Name = values[0]
	f.Email = values[1]
	f.BirthDate = values[2]
	f.BaseSalary = values[3]
	f.Department = department
	e.session.SetFields(f)
}

func (e *sellerEditor) LoadReferenceData(ctx context.Context) (refdata.List, error) {
	err := e.session.LoadReferenceData(ctx)
	return e.session.ReferenceData(), err
}

func (e *sellerEditor) Submit(ctx context.Context) form.Outcome { return e.session.Submit(ctx) }
func (e *sellerEditor) Cancel()                                 { e.session.Cancel() }

// Alert is a blocking message shown over the form
type Alert struct {
	Title   string
	Message string
}

// Presenter records what a session wants to show. The model reads it
// once the submit command has returned.
type Presenter struct {
	mu     sync.Mutex
	errs   validation.ErrorSet
	alert  *Alert
	alerts int
}

var _ form.Presenter = (*Presenter)(nil)

// NewPresenter creates an empty presenter
func NewPresenter() *Presenter {
	return &Presenter{}
}

// ShowFieldErrors implements form.Presenter
func (p *Presenter) ShowFieldErrors(errs validation.ErrorSet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = errs.Clone()
}

// ShowAlert implements form.Presenter
func (p *Presenter) ShowAlert(title, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alert = &Alert{Title: title, Message: message}
	p.alerts++
}

// FieldErrors returns the last field errors shown
func (p *Presenter) FieldErrors() validation.ErrorSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errs.Clone()
}

// TakeAlert returns the pending alert and clears it
func (p *Presenter) TakeAlert() (Alert, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.alert == nil {
		return Alert{}, false
	}
	a := *p.alert
	p.alert = nil
	return a, true
}

// AlertCount returns how many alerts have been shown
func (p *Presenter) AlertCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alerts
}
