// File: doc.go
// Title: Field Validation Package Documentation
// Description: Accumulating per-field validation for form input.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-18 v0.2.0: Replaced validator chains with an ordered ErrorSet and
//                      field parsers for form mapping

/*
Package validation collects per-field validation errors for form input.

Validators never fail fast. Each one checks a single field, registers at most
one message for it in an ErrorSet and returns the parsed value (or its zero
value). A mapper runs every validator and then decides on the result by
looking at the set:

	var errs validation.ErrorSet
	name, _ := validation.RequiredText(&errs, "name", fields.Name, 30)
	salary := validation.ParseDecimal(&errs, "baseSalary", fields.BaseSalary, nf)
	if !errs.IsEmpty() {
		return errs.ToError()
	}

ErrorSet keeps fields in first-registration order. Registering a field again
replaces its message but not its position.
*/
package validation
