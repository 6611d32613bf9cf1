// File: locale.go
// Title: Locale Number Formats
// Description: NumberFormat binds a BCP 47 locale and a number of decimal
//              places. Separators are taken from CLDR data through x/text.
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18

package mathx

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPlaces is the number of fraction digits used for amounts
const DefaultPlaces = 2

// probe has seven integer digits so that locales with a minimum grouping
// of two still show a group separator.
const probe = 1234567.5

// NumberFormat describes how amounts are rendered and read back
type NumberFormat struct {
	Locale language.Tag
	Places int
}

// DefaultNumberFormat returns en-US with two fraction digits
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{Locale: language.AmericanEnglish, Places: DefaultPlaces}
}

// ParseNumberFormat builds a NumberFormat from a locale string like "de-DE"
func ParseNumberFormat(locale string, places int) (NumberFormat, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return NumberFormat{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if places < 0 {
		return NumberFormat{}, fmt.Errorf("invalid number of places: %d", places)
	}
	return NumberFormat{Locale: tag, Places: places}, nil
}

// Separators returns the group and decimal separator of the locale. The
// group separator is 0 for locales that do not group digits.
func (f NumberFormat) Separators() (group, dec rune) {
	p := message.NewPrinter(f.Locale)
	runes := []rune(p.Sprint(number.Decimal(probe)))

	dec = '.'
	if len(runes) >= 2 {
		dec = runes[len(runes)-2]
	}
	if len(runes) >= 2 && !unicode.IsDigit(runes[1]) {
		group = runes[1]
	}
	return group, dec
}

// Format renders d rounded to f.Places without grouping
func (f NumberFormat) Format(d decimal.Decimal) string {
	s := d.StringFixed(int32(f.Places))
	_, dec := f.Separators()
	if dec == '.' {
		return s
	}
	return strings.Replace(s, ".", string(dec), 1)
}

// Parse reads a locale formatted amount. Group separators are ignored.
// Only digits and separators are accepted, so signs and exponents fail.
func (f NumberFormat) Parse(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	group, dec := f.Separators()
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == dec:
			b.WriteRune('.')
		case group != 0 && r == group:
		case unicode.IsSpace(r):
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return decimal.Zero, fmt.Errorf("invalid amount %q: unexpected %q", text, r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return d, nil
}
