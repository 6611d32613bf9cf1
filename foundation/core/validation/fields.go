// File: fields.go
// Title: Field Validators
// Description: Single-field checks and parsers that register their failure
//              in an ErrorSet and return the parsed value.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/msto63/sellerdesk/foundation/utils/mathx"
	"github.com/shopspring/decimal"
)

// MsgRequired is shown for blank fields and for text that does not parse
const MsgRequired = "Field can't be empty"

// LengthMessage returns the message for a field longer than max characters
func LengthMessage(max int) string {
	return fmt.Sprintf("Field can't exceed %d characters", max)
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required registers MsgRequired when raw is blank. The raw value is
// returned untrimmed.
func Required(errs *ErrorSet, field, raw string) (string, bool) {
	if IsBlank(raw) {
		errs.Add(field, CodeRequired, MsgRequired)
		return raw, false
	}
	return raw, true
}

// MaxLength registers a length error when value has more than max runes
func MaxLength(errs *ErrorSet, field, value string, max int) bool {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, CodeLength, LengthMessage(max))
		return false
	}
	return true
}

// RequiredText combines Required and MaxLength. The length check only runs
// for non-blank input so a field carries at most one message.
func RequiredText(errs *ErrorSet, field, raw string, max int) (string, bool) {
	v, ok := Required(errs, field, raw)
	if !ok {
		return v, false
	}
	return v, MaxLength(errs, field, v, max)
}

// ParseDecimal parses a locale formatted amount. Blank and unparseable input
// both register MsgRequired.
func ParseDecimal(errs *ErrorSet, field, raw string, format mathx.NumberFormat) decimal.Decimal {
	if IsBlank(raw) {
		errs.Add(field, CodeRequired, MsgRequired)
		return decimal.Zero
	}
	d, err := format.Parse(raw)
	if err != nil {
		errs.Add(field, CodeNumeric, MsgRequired)
		return decimal.Zero
	}
	return d
}

// ParseDate parses raw with layout. Blank and unparseable input both
// register MsgRequired.
func ParseDate(errs *ErrorSet, field, raw, layout string) time.Time {
	if IsBlank(raw) {
		errs.Add(field, CodeRequired, MsgRequired)
		return time.Time{}
	}
	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		errs.Add(field, CodeDate, MsgRequired)
		return time.Time{}
	}
	return t
}

// ParseOptionalInt returns nil for blank or non-integer text
func ParseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
