package memory

import (
	"context"
	"sync"

	"tracker/internal/core"
	"tracker/internal/storage"
)

// Ensure interface conformance
var (
	_ storage.RecordReader = (*Store)(nil)
	_ storage.RecordWriter = (*Store)(nil)
)

// Store keeps expense records in memory. ReadErr, when set, is returned
// by ReadRecords instead of the records.
type Store struct {
	mu      sync.Mutex
	items   []core.ExpenseRecord
	ReadErr error
}

func New(records ...core.ExpenseRecord) *Store {
	return &Store{items: append([]core.ExpenseRecord(nil), records...)}
}

// Append stores the record.
func (s *Store) Append(_ context.Context, r core.ExpenseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
	return nil
}

// ReadRecords returns a copy of the stored records.
func (s *Store) ReadRecords(_ context.Context) ([]core.ExpenseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return append([]core.ExpenseRecord(nil), s.items...), nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
