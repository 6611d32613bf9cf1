// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     form
// Description: Entity <-> field binding and the edit/validate/save session
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package form

import (
	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// Binder renders an entity into editable fields and maps edited fields back
// into a candidate entity.
type Binder[E, F any] interface {
	// Render produces the field state for entity
	Render(entity E, refs refdata.List) F
	// Map runs every field validator and returns either a complete entity
	// or the accumulated errors
	Map(fields F, refs refdata.List) Result[E]
}

// Result is either a valid entity or a non-empty error set, never both
type Result[E any] struct {
	entity E
	errs   validation.ErrorSet
	ok     bool
}

// Ok wraps a valid entity
func Ok[E any](entity E) Result[E] {
	return Result[E]{entity: entity, ok: true}
}

// Invalid wraps a non-empty error set
func Invalid[E any](errs validation.ErrorSet) Result[E] {
	return Result[E]{errs: errs.Clone()}
}

// resultOf returns Invalid when errs holds anything, Ok otherwise
func resultOf[E any](entity E, errs validation.ErrorSet) Result[E] {
	if !errs.IsEmpty() {
		return Invalid[E](errs)
	}
	return Ok(entity)
}

// Entity returns the mapped entity. ok is false for invalid results.
func (r Result[E]) Entity() (E, bool) {
	if !r.ok {
		var zero E
		return zero, false
	}
	return r.entity, true
}

// Errors returns the error set; it is empty for valid results
func (r Result[E]) Errors() validation.ErrorSet {
	return r.errs.Clone()
}

func (r Result[E]) IsValid() bool {
	return r.ok
}
