// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     form
// Description: Department field binding and validation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package form

import (
	"strconv"

	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// Department field names
const (
	FieldID   = "id"
	FieldName = "name"
)

// DepartmentFields is the editable state of a department form
type DepartmentFields struct {
	ID   string
	Name string
}

// DepartmentBinder maps between Department and DepartmentFields
type DepartmentBinder struct{}

var _ Binder[domain.Department, DepartmentFields] = DepartmentBinder{}

// Render implements Binder
func (DepartmentBinder) Render(d domain.Department, _ refdata.List) DepartmentFields {
	return DepartmentFields{
		ID:   idText(d.ID),
		Name: d.Name,
	}
}

// Map implements Binder
func (DepartmentBinder) Map(f DepartmentFields, _ refdata.List) Result[domain.Department] {
	var errs validation.ErrorSet

	d := domain.Department{ID: validation.ParseOptionalInt(f.ID)}
	d.Name, _ = validation.RequiredText(&errs, FieldName, f.Name, domain.DepartmentNameMax)

	return resultOf(d, errs)
}

func idText(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}
