package storage

import (
	"context"

	"tracker/internal/core"
)

// Ports for the expense log.
type (
	// RecordReader loads every usable record of the log.
	RecordReader interface {
		ReadRecords(ctx context.Context) ([]core.ExpenseRecord, error)
	}

	// RecordWriter appends one record to the log.
	RecordWriter interface {
		Append(ctx context.Context, r core.ExpenseRecord) error
	}
)
