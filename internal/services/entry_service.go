package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tracker/internal/core"
	applog "tracker/internal/log"
	"tracker/internal/storage"
)

// ErrNoEntries is returned by List when the log does not exist yet.
var ErrNoEntries = errors.New("no entries yet")

// EntryStore is the log the tracker reads and appends to.
type EntryStore interface {
	storage.RecordReader
	storage.RecordWriter
}

// Listing is every record of the log with its total.
type Listing struct {
	Records []core.ExpenseRecord
	Total   decimal.Decimal
}

// EntryService adds and lists expense entries.
type EntryService struct {
	store  EntryStore
	now    func() time.Time
	logger *applog.Logger
}

func NewEntryService(store EntryStore, logger *applog.Logger) *EntryService {
	if logger == nil {
		logger = applog.Discard()
	}
	return &EntryService{
		store:  store,
		now:    time.Now,
		logger: logger.WithComponent(applog.ComponentEntry),
	}
}

// WithClock replaces the clock used to date new entries.
func (s *EntryService) WithClock(now func() time.Time) *EntryService {
	s.now = now
	return s
}

// Add appends an entry dated today in local time. Commas in category and
// description become spaces, an empty category becomes the uncategorized
// label, and the amount is rounded to cents.
func (s *EntryService) Add(ctx context.Context, amount decimal.Decimal, category, description string) (core.ExpenseRecord, error) {
	r := core.ExpenseRecord{
		Date:        s.now().Format(core.DateLayout),
		Category:    core.CategoryLabel(SanitizeField(category)),
		Description: SanitizeField(description),
		Amount:      amount.Round(2).InexactFloat64(),
	}

	if err := s.store.Append(ctx, r); err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("append entry: %w", err)
	}

	s.logger.DebugContext(ctx, "Entry added",
		applog.NewFields().WithOperation(applog.OpAppend).WithRecord(r.Date, r.Category, r.Amount).ToSlice()...)
	return r, nil
}

// List returns all entries and their decimal total.
func (s *EntryService) List(ctx context.Context) (Listing, error) {
	records, err := s.store.ReadRecords(ctx)
	if errors.Is(err, os.ErrNotExist) {
		return Listing{}, ErrNoEntries
	}
	if err != nil {
		return Listing{}, fmt.Errorf("list entries: %w", err)
	}
	listing := Listing{Records: records, Total: core.SumAmounts(records)}
	s.logger.DebugContext(ctx, "Entries listed",
		applog.FieldOperation, applog.OpList,
		applog.FieldRecords, len(records))
	return listing, nil
}

// SanitizeField replaces commas with spaces.
func SanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}
