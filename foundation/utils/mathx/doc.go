// File: doc.go
// Title: Package Documentation for mathx
// Description: Locale aware formatting and parsing of decimal amounts.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Decimal arithmetic delegated to shopspring/decimal, locale
//                      formatting via golang.org/x/text

// Package mathx formats and parses decimal amounts for a given locale.
//
// Formatting never touches process-wide state: the locale travels in a
// NumberFormat value passed to every call.
//
//	nf := mathx.NumberFormat{Locale: language.German, Places: 2}
//	nf.Format(decimal.RequireFromString("1234.5")) // "1234,50"
//	d, err := nf.Parse("1.234,50")                 // 1234.5
package mathx
