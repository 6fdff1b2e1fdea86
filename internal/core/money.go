// Package core provides the expense domain: records, buckets, grouping,
// ordering and amount handling.
//
// This file contains the two amount paths. The chart pipeline coerces
// amounts to float64 and sums them with plain addition; the tracker
// command parses and totals entries as decimals so listings print exact
// two-place amounts.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a log cell to a float. Surrounding whitespace is
// ignored. ok is false for anything strconv cannot parse and for NaN or
// infinite values.
func ParseAmount(s string) (amount float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseEntryAmount parses an amount typed by the user for a new entry.
//
// Examples:
//
//	ParseEntryAmount("12.5")  -> 12.5, nil
//	ParseEntryAmount(" 3 ")   -> 3, nil
//	ParseEntryAmount("lots")  -> 0, ErrInvalidAmount
func ParseEntryAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RecordAmount returns the record amount as a decimal.
func (r ExpenseRecord) RecordAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.Amount)
}

// SumAmounts totals the record amounts without float drift.
func SumAmounts(records []ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.RecordAmount())
	}
	return total
}
