package services

import (
	"context"
	"errors"
	"fmt"

	"tracker/internal/core"
	applog "tracker/internal/log"
	"tracker/internal/storage"
)

// ChartRenderer draws ordered buckets for a mode and returns the file path.
type ChartRenderer interface {
	Render(ctx context.Context, mode core.Mode, buckets []core.Bucket) (string, error)
}

// Report is the outcome of one chart run.
type Report struct {
	Mode    core.Mode
	Buckets []core.Bucket
	Path    string
}

// ReportService reads the expense log, aggregates it for a mode and
// renders the chart.
type ReportService struct {
	records  storage.RecordReader
	renderer ChartRenderer
	logger   *applog.Logger
}

func NewReportService(records storage.RecordReader, renderer ChartRenderer, logger *applog.Logger) *ReportService {
	if logger == nil {
		logger = applog.Discard()
	}
	return &ReportService{
		records:  records,
		renderer: renderer,
		logger:   logger.WithComponent(applog.ComponentReport),
	}
}

// Run executes read, aggregate, order and render for mode. When no
// record survives reading, the returned error matches core.ErrNoData and
// nothing is rendered.
func (s *ReportService) Run(ctx context.Context, mode core.Mode) (Report, error) {
	report := Report{Mode: mode}
	logger := s.logger.With(applog.FieldMode, mode.String())

	records, err := s.records.ReadRecords(ctx)
	if err != nil {
		return report, fmt.Errorf("read records: %w", err)
	}

	buckets, err := core.Aggregate(records, mode)
	if err != nil {
		return report, fmt.Errorf("aggregate records: %w", err)
	}

	logger.DebugContext(ctx, "Records aggregated",
		applog.FieldOperation, applog.OpAggregate,
		applog.FieldRecords, len(records),
		applog.FieldBuckets, len(buckets))

	ordered, err := core.Order(buckets, mode)
	if err != nil {
		return report, fmt.Errorf("order buckets: %w", err)
	}
	report.Buckets = ordered
	logger.DebugContext(ctx, "Buckets ordered", applog.FieldOperation, applog.OpOrder)

	if len(ordered) == 0 {
		return report, core.ErrNoData
	}

	path, err := s.renderer.Render(ctx, mode, ordered)
	if err != nil {
		if errors.Is(err, core.ErrNoData) {
			return report, err
		}
		return report, fmt.Errorf("render chart: %w", err)
	}
	report.Path = path

	return report, nil
}
