// File: errorset.go
// Title: Ordered Field Error Set
// Description: ErrorSet maps field names to a single message each and
//              remembers the order in which fields were first registered.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package validation

import (
	"strings"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
)

// Standard validation codes
const (
	CodeRequired = "VALIDATION_REQUIRED"
	CodeLength   = "VALIDATION_LENGTH"
	CodeNumeric  = "VALIDATION_NUMERIC"
	CodeDate     = "VALIDATION_DATE"
	CodeFormat   = "VALIDATION_FORMAT"
)

// FieldError is the message registered for one field
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ErrorSet is an ordered field -> message map. The zero value is empty and
// ready to use.
type ErrorSet struct {
	order   []string
	byField map[string]FieldError
}

// NewErrorSet returns an empty set
func NewErrorSet() ErrorSet {
	return ErrorSet{}
}

// Add registers message for field. An existing entry is overwritten in place.
func (s *ErrorSet) Add(field, code, message string) {
	if s.byField == nil {
		s.byField = make(map[string]FieldError)
	}
	if _, ok := s.byField[field]; !ok {
		s.order = append(s.order, field)
	}
	s.byField[field] = FieldError{Field: field, Code: code, Message: message}
}

// Merge adds all entries of other, in other's order
func (s *ErrorSet) Merge(other ErrorSet) {
	for _, fe := range other.Errors() {
		s.Add(fe.Field, fe.Code, fe.Message)
	}
}

// Has reports whether field has a registered message
func (s ErrorSet) Has(field string) bool {
	_, ok := s.byField[field]
	return ok
}

// Message returns the message for field, or "" if none
func (s ErrorSet) Message(field string) string {
	return s.byField[field].Message
}

// Get returns the entry for field
func (s ErrorSet) Get(field string) (FieldError, bool) {
	fe, ok := s.byField[field]
	return fe, ok
}

// Fields returns field names in first-registration order
func (s ErrorSet) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Errors returns the entries in first-registration order
func (s ErrorSet) Errors() []FieldError {
	out := make([]FieldError, 0, len(s.order))
	for _, f := range s.order {
		out = append(out, s.byField[f])
	}
	return out
}

// Map returns a field -> message copy
func (s ErrorSet) Map() map[string]string {
	out := make(map[string]string, len(s.order))
	for f, fe := range s.byField {
		out[f] = fe.Message
	}
	return out
}

func (s ErrorSet) Len() int {
	return len(s.order)
}

func (s ErrorSet) IsEmpty() bool {
	return len(s.order) == 0
}

// Clone returns an independent copy
func (s ErrorSet) Clone() ErrorSet {
	var c ErrorSet
	c.Merge(s)
	return c
}

// ToError converts a non-empty set into a validation fault. It returns nil
// for an empty set.
func (s ErrorSet) ToError() error {
	if s.IsEmpty() {
		return nil
	}
	err := mdwerror.New("validation failed").
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("validation")
	for _, fe := range s.Errors() {
		err = err.WithDetail(fe.Field, fe.Message)
	}
	return err
}

// String renders "field: message" pairs in order, separated by "; "
func (s ErrorSet) String() string {
	parts := make([]string, 0, len(s.order))
	for _, fe := range s.Errors() {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
