package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"daily", ModeDaily, true},
		{"category", ModeCategory, true},
		{"", "", false},
		{"Daily", "", false},
		{"weekly", "", false},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.want, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("%q expected ErrInvalidMode, got %v", tc.in, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}

	for _, bad := range []string{"", "2024-1-01", "2024/01/01", "01-01-2024", "2023-02-29", "yesterday"} {
		_, err := ParseDate(bad)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("%q expected ErrInvalidDateFormat, got %v", bad, err)
		}
		var dfe *DateFormatError
		if !errors.As(err, &dfe) || dfe.Label != bad {
			t.Fatalf("%q expected DateFormatError with label, got %v", bad, err)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(""); got != UncategorizedLabel {
		t.Fatalf("empty category got %q", got)
	}
	if got := CategoryLabel("food"); got != "food" {
		t.Fatalf("food got %q", got)
	}
	// Whitespace is not empty.
	if got := CategoryLabel(" "); got != " " {
		t.Fatalf("blank category got %q", got)
	}
}
