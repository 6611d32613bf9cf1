// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that log output and
//              alerts can be prioritised.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for the form fault codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers user-recoverable input problems
	SeverityLow Severity = iota

	// SeverityMedium covers faults with a workaround, e.g. retrying a save
	SeverityMedium

	// SeverityHigh covers faults of the storage layer
	SeverityHigh

	// SeverityCritical covers wiring defects that abort the program
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodePrecondition:
		return SeverityCritical
	case CodeDatabaseError, CodeConnectionFailed:
		return SeverityHigh
	case CodeNotFound, CodeConstraintViolation, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
