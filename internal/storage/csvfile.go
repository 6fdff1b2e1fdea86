package storage

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tracker/internal/core"
	applog "tracker/internal/log"
)

const (
	ColDate        = "date"
	ColCategory    = "category"
	ColDescription = "description"
	ColAmount      = "amount"
)

// Header is the column row written at the top of a new log.
var Header = []string{ColDate, ColCategory, ColDescription, ColAmount}

const utf8BOM = "\ufeff"

// CSVFile is the expense log kept as a comma separated file.
type CSVFile struct {
	path       string
	headerless bool
	logger     *applog.Logger
}

// Ensure interface conformance
var (
	_ RecordReader = (*CSVFile)(nil)
	_ RecordWriter = (*CSVFile)(nil)
)

func NewCSVFile(path string, logger *applog.Logger) *CSVFile {
	if logger == nil {
		logger = applog.Discard()
	}
	return &CSVFile{path: path, logger: logger.WithComponent(applog.ComponentStorage)}
}

// WithHeaderlessRows makes ReadRecords accept a log whose first row names
// none of the Header columns. Such a log is read positionally in Header
// order and its first row counts as data.
func (s *CSVFile) WithHeaderlessRows() *CSVFile {
	s.headerless = true
	return s
}

// ReadRecords implements RecordReader. Rows whose amount does not parse
// are dropped. A missing or unreadable file is an error.
func (s *CSVFile) ReadRecords(ctx context.Context) ([]core.ExpenseRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read expense log: %w", err)
	}

	records, skipped, err := parseRecords(bytes.NewReader(data), s.headerless)
	if err != nil {
		return nil, fmt.Errorf("parse expense log %s: %w", s.path, err)
	}

	s.logger.DebugContext(ctx, "Expense log read",
		applog.FieldOperation, applog.OpRead,
		applog.FieldPath, s.path,
		applog.FieldRecords, len(records),
		applog.FieldSkipped, skipped)

	return records, nil
}

// ParseRecords reads a header row followed by data rows. Columns are
// matched by header name in any order and extra columns are ignored.
// skipped counts the rows dropped for lacking a numeric amount.
func ParseRecords(r io.Reader) (records []core.ExpenseRecord, skipped int, err error) {
	return parseRecords(r, false)
}

func parseRecords(r io.Reader, headerless bool) (records []core.ExpenseRecord, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	cols := columnIndex(header)

	var pending [][]string
	if headerless && !namesAnyColumn(cols) {
		cols = columnIndex(Header)
		pending = append(pending, header)
	}

	for {
		var row []string
		if len(pending) > 0 {
			row, pending = pending[0], pending[1:]
		} else {
			row, err = cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, 0, fmt.Errorf("read row: %w", err)
			}
		}

		rec, ok := recordFromRow(cols, row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func namesAnyColumn(cols map[string]int) bool {
	for _, name := range Header {
		if _, ok := cols[name]; ok {
			return true
		}
	}
	return false
}

// recordFromRow builds a record from row. It reports false when the row
// has no numeric amount.
func recordFromRow(cols map[string]int, row []string) (core.ExpenseRecord, bool) {
	cell := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	raw, ok := cell(ColAmount)
	if !ok {
		return core.ExpenseRecord{}, false
	}
	amount, ok := core.ParseAmount(raw)
	if !ok {
		return core.ExpenseRecord{}, false
	}
	date, _ := cell(ColDate)
	category, _ := cell(ColCategory)
	description, _ := cell(ColDescription)
	return core.ExpenseRecord{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}, true
}

// Append implements RecordWriter. The header is ensured first and the
// amount is written with two decimals.
func (s *CSVFile) Append(ctx context.Context, r core.ExpenseRecord) error {
	if err := s.EnsureHeader(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open expense log for append: %w", err)
	}
	defer f.Close()

	if err := terminateLastLine(f); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{r.Date, r.Category, r.Description, core.FormatAmount(r.RecordAmount())}); err != nil {
		return fmt.Errorf("write expense row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush expense row: %w", err)
	}

	s.logger.DebugContext(ctx, "Expense appended",
		append([]any{applog.FieldOperation, applog.OpAppend, applog.FieldPath, s.path},
			applog.NewFields().WithRecord(r.Date, r.Category, r.Amount).ToSlice()...)...)
	return nil
}

// EnsureHeader creates the log with a header row if it does not exist,
// and prepends the header when the first line is something else.
func (s *CSVFile) EnsureHeader() error {
	headerLine := strings.Join(Header, ",")

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(s.path, []byte(headerLine+"\n"), 0o644); err != nil {
			return fmt.Errorf("create expense log: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("open expense log: %w", err)
	}
	first, err := bufio.NewReader(f).ReadString('\n')
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read expense log header: %w", err)
	}
	if strings.TrimRight(strings.TrimPrefix(first, utf8BOM), "\r\n") == headerLine {
		return nil
	}

	return s.prependHeader(headerLine)
}

func (s *CSVFile) prependHeader(headerLine string) error {
	body, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read expense log: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "tracker.tmp*.csv")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(headerLine + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("copy expense log: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace expense log: %w", err)
	}

	s.logger.Info("Header added to expense log", applog.FieldPath, s.path)
	return nil
}

// terminateLastLine writes a newline when the file does not end in one,
// so the next row starts on its own line.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat expense log: %w", err)
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return fmt.Errorf("read expense log tail: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("terminate expense log: %w", err)
	}
	return nil
}
