// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     domain
// Description: Department and Seller value types
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Field limits
const (
	DepartmentNameMax = 30
	SellerNameMax     = 70
	SellerEmailMax    = 70
)

// Department groups sellers
type Department struct {
	ID   *int
	Name string
}

// Equal compares id and name
func (d Department) Equal(o Department) bool {
	return equalID(d.ID, o.ID) && d.Name == o.Name
}

// HasID reports whether the department was persisted
func (d Department) HasID() bool {
	return d.ID != nil
}

func (d Department) String() string {
	return fmt.Sprintf("Department{id=%s, name=%q}", idString(d.ID), d.Name)
}

// Seller is a sales person belonging to a department
type Seller struct {
	ID         *int
	Name       string
	Email      string
	BirthDate  time.Time
	BaseSalary decimal.Decimal
	Department *Department
}

// Equal compares all fields. BaseSalary is compared by value, BirthDate by
// calendar day.
func (s Seller) Equal(o Seller) bool {
	if !equalID(s.ID, o.ID) || s.Name != o.Name || s.Email != o.Email {
		return false
	}
	if !sameDay(s.BirthDate, o.BirthDate) || !s.BaseSalary.Equal(o.BaseSalary) {
		return false
	}
	switch {
	case s.Department == nil && o.Department == nil:
		return true
	case s.Department == nil || o.Department == nil:
		return false
	default:
		return s.Department.Equal(*o.Department)
	}
}

func (s Seller) HasID() bool {
	return s.ID != nil
}

// WithDepartment returns a copy of s owning a copy of d
func (s Seller) WithDepartment(d Department) Seller {
	d.ID = CloneID(d.ID)
	s.Department = &d
	return s
}

func (s Seller) String() string {
	dep := "<nil>"
	if s.Department != nil {
		dep = s.Department.String()
	}
	return fmt.Sprintf("Seller{id=%s, name=%q, email=%q, birthDate=%s, baseSalary=%s, department=%s}",
		idString(s.ID), s.Name, s.Email, s.BirthDate.Format(time.DateOnly), s.BaseSalary.String(), dep)
}

// IntID returns a pointer to n
func IntID(n int) *int {
	return &n
}

// CloneID copies an optional id
func CloneID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func equalID(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func idString(id *int) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *id)
}
