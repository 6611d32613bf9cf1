// Package error provides structured faults for the sellerdesk form core.
//
// Package: error
// Title: Fault Handling Framework
// Description: Structured errors with codes, severities and details. The code
//              of a fault decides how the form layer reacts to it:
//
//   - CodePrecondition: a component was used before it was wired; callers panic
//   - validation codes: shown inline next to the offending field
//   - persistence codes: shown as a single blocking alert, session stays open
//
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Usage:
//
//	import mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
//
//	err := mdwerror.Wrap(dbErr, "failed to save department").
//		WithCode(mdwerror.CodeDatabaseError).
//		WithOperation("department.save")
//
//	if mdwerror.IsPersistence(err) {
//		presenter.ShowAlert("Error saving object!", err.Error())
//	}
package error
