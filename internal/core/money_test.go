package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"1", 1, true},
		{"3.50", 3.5, true},
		{" 2.75 ", 2.75, true},
		{"-4", -4, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"1,23", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Fatalf("%q expected (%v, %v), got (%v, %v)", tc.in, tc.out, tc.ok, got, ok)
		}
	}
}

func TestParseEntryAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"12.5", "12.50", true},
		{" 3 ", "3.00", true},
		{"0", "0.00", true},
		{"1.005", "1.01", true},
		{"lots", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseEntryAmount(tc.in)
		if tc.ok {
			if err != nil || FormatAmount(got) != tc.out {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, FormatAmount(got), err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestSumAmounts(t *testing.T) {
	records := []ExpenseRecord{{Amount: 0.1}, {Amount: 0.2}, {Amount: 12}}
	if got := SumAmounts(records); !got.Equal(decimal.RequireFromString("12.3")) {
		t.Fatalf("expected 12.3, got %s", got)
	}
	if got := SumAmounts(nil); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}
