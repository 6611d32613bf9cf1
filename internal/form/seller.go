// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     form
// Description: Seller field binding and validation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package form

import (
	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/foundation/utils/mathx"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// Seller field names
const (
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
	FieldDepartment = "department"
)

// DefaultDateLayout renders birth dates as dd/MM/yyyy
const DefaultDateLayout = "02/01/2006"

// SellerFields is the editable state of a seller form. Department is the
// selector value; nil means nothing is selected.
type SellerFields struct {
	ID         string
	Name       string
	Email      string
	BirthDate  string
	BaseSalary string
	Department *domain.Department
}

// SellerBinder maps between Seller and SellerFields
type SellerBinder struct {
	Format     mathx.NumberFormat
	DateLayout string
}

var _ Binder[domain.Seller, SellerFields] = SellerBinder{}

// NewSellerBinder returns a binder using format for salaries and layout for
// birth dates. An empty layout selects DefaultDateLayout.
func NewSellerBinder(format mathx.NumberFormat, layout string) SellerBinder {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return SellerBinder{Format: format, DateLayout: layout}
}

func (b SellerBinder) layout() string {
	if b.DateLayout == "" {
		return DefaultDateLayout
	}
	return b.DateLayout
}

// Render implements Binder. A seller without department selects the first
// reference item.
func (b SellerBinder) Render(s domain.Seller, refs refdata.List) SellerFields {
	f := SellerFields{
		ID:         idText(s.ID),
		Name:       s.Name,
		Email:      s.Email,
		BaseSalary: b.Format.Format(s.BaseSalary),
	}
	if !s.BirthDate.IsZero() {
		f.BirthDate = s.BirthDate.Format(b.layout())
	}
	f.Department = defaultDepartment(s.Department, refs)
	return f
}

// Map implements Binder. A missing department selection falls back to the
// first reference item without registering an error; with no reference
// data the department stays nil.
func (b SellerBinder) Map(f SellerFields, refs refdata.List) Result[domain.Seller] {
	var errs validation.ErrorSet

	s := domain.Seller{ID: validation.ParseOptionalInt(f.ID)}
	s.Name, _ = validation.RequiredText(&errs, FieldName, f.Name, domain.SellerNameMax)
	s.Email, _ = validation.RequiredText(&errs, FieldEmail, f.Email, domain.SellerEmailMax)
	s.BirthDate = validation.ParseDate(&errs, FieldBirthDate, f.BirthDate, b.layout())
	s.BaseSalary = validation.ParseDecimal(&errs, FieldBaseSalary, f.BaseSalary, b.Format)
	s.Department = defaultDepartment(f.Department, refs)

	return resultOf(s, errs)
}

func defaultDepartment(selected *domain.Department, refs refdata.List) *domain.Department {
	if selected != nil {
		d := *selected
		d.ID = domain.CloneID(d.ID)
		return &d
	}
	if first, ok := refs.First(); ok {
		return &first
	}
	return nil
}
