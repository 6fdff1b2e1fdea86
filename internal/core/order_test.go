package core

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestOrderByDate_Scenario(t *testing.T) {
	records := []ExpenseRecord{
		{"2024-01-02", "transit", "bus", 2.75},
		{"2024-01-01", "food", "coffee", 3.50},
		{"2024-01-01", "food", "lunch", 12.00},
	}
	got, err := OrderByDate(SumByDate(records))
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	want := []Bucket{{Label: "2024-01-01", Total: 15.50}, {Label: "2024-01-02", Total: 2.75}}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %v", len(want), got)
	}
	for i := range want {
		if got[i].Label != want[i].Label || got[i].Total != want[i].Total {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], got[i])
		}
		if got[i].Date.Format(DateLayout) != want[i].Label {
			t.Fatalf("bucket %d: date not carried, got %v", i, got[i].Date)
		}
	}
}

func TestOrderByDate_Chronological(t *testing.T) {
	f := gofakeit.New(3)
	got, err := OrderByDate(SumByDate(fakeRecords(f, 500)))
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("bucket %d (%s) before bucket %d (%s)", i, got[i].Label, i-1, got[i-1].Label)
		}
	}
}

func TestOrderByDate_RejectsMalformedLabel(t *testing.T) {
	buckets := []Bucket{{Label: "2024-01-01", Total: 1}, {Label: "01/02/2024", Total: 2}}
	got, err := OrderByDate(buckets)
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial output, got %v", got)
	}
}

func TestOrderByTotal_Scenario(t *testing.T) {
	records := []ExpenseRecord{
		{"2024-01-01", "food", "x", 10},
		{"2024-01-01", "", "y", 5},
		{"2024-01-02", "transit", "z", 20},
	}
	got := OrderByTotal(SumByCategory(records))
	want := []Bucket{{Label: "transit", Total: 20}, {Label: "food", Total: 10}, {Label: "uncat", Total: 5}}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestOrderByTotal_Descending(t *testing.T) {
	f := gofakeit.New(11)
	got := OrderByTotal(SumByCategory(fakeRecords(f, 400)))
	for i := 1; i < len(got); i++ {
		if got[i-1].Total < got[i].Total {
			t.Fatalf("bucket %d total %v < bucket %d total %v", i-1, got[i-1].Total, i, got[i].Total)
		}
	}
}

func TestOrderByTotal_DoesNotMutateInput(t *testing.T) {
	in := []Bucket{{Label: "a", Total: 1}, {Label: "b", Total: 2}}
	_ = OrderByTotal(in)
	if in[0].Label != "a" || in[1].Label != "b" {
		t.Fatalf("input reordered: %v", in)
	}
}

func TestOrder_UnknownMode(t *testing.T) {
	if _, err := Order(nil, Mode("x")); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}
