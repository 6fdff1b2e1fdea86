package core

import (
	"errors"
	"fmt"
	"time"
)

const (
	ModeDaily    Mode = "daily"
	ModeCategory Mode = "category"
)

const (
	// DateLayout is the only accepted shape for date labels (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// UncategorizedLabel replaces an empty category before grouping.
	UncategorizedLabel = "uncat"
)

type (
	// Mode selects the aggregation dimension.
	Mode string

	// ExpenseRecord is one row of the expense log. Amount is always a
	// parsed number; rows without one never become records.
	ExpenseRecord struct {
		Date        string
		Category    string
		Description string
		Amount      float64
	}

	// Bucket is one aggregated (label, total) pair.
	Bucket struct {
		Label string
		Total float64
		Date  time.Time // set by by-date ordering only
	}
)

var (
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNoData            = errors.New("no data to plot")
)

// DateFormatError reports a date label that does not match DateLayout.
type DateFormatError struct {
	Label string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%v: %q does not match YYYY-MM-DD: %v", ErrInvalidDateFormat, e.Label, e.Err)
}

func (e *DateFormatError) Unwrap() []error {
	return []error{ErrInvalidDateFormat, e.Err}
}

// ParseMode maps a command-line token to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDaily, ModeCategory:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// String returns the token form of the mode.
func (m Mode) String() string {
	return string(m)
}

// ParseDate parses a date label strictly as YYYY-MM-DD.
func ParseDate(label string) (time.Time, error) {
	t, err := time.Parse(DateLayout, label)
	if err != nil {
		return time.Time{}, &DateFormatError{Label: label, Err: err}
	}
	return t, nil
}

// CategoryLabel returns the grouping label for a category.
func CategoryLabel(category string) string {
	if category == "" {
		return UncategorizedLabel
	}
	return category
}
