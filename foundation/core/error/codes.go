// File: codes.go
// Title: Fault Code Definitions
// Description: Defines the error codes used to classify faults raised by the
//              form core. Codes decide which presentation channel a fault is
//              routed to: inline field errors, a blocking alert, or an abort.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to precondition/validation/persistence taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Wiring defects. Never shown to a user.
	CodePrecondition Code = "PRECONDITION"

	// Persistence boundary
	CodeDatabaseError       Code = "DATABASE_ERROR"
	CodeConnectionFailed    Code = "CONNECTION_FAILED"
	CodeNotFound            Code = "NOT_FOUND"
	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Categories returned by Code.Category
const (
	CategoryPrecondition  = "precondition"
	CategoryPersistence   = "persistence"
	CategoryValidation    = "validation"
	CategoryConfiguration = "configuration"
	CategoryGeneric       = "generic"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodePrecondition,
		CodeDatabaseError, CodeConnectionFailed, CodeNotFound, CodeConstraintViolation,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodePrecondition:
		return CategoryPrecondition
	case CodeDatabaseError, CodeConnectionFailed, CodeNotFound, CodeConstraintViolation:
		return CategoryPersistence
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return CategoryValidation
	case CodeConfigError, CodeInvalidConfig:
		return CategoryConfiguration
	default:
		return CategoryGeneric
	}
}
