package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"customer-service/internal/domain"
)

// DefaultBatchSize is the number of rows inserted per SaveAll call.
const DefaultBatchSize = 100

type CustomerWriter interface {
	SaveAll(ctx context.Context, cs []domain.Customer) ([]domain.Customer, error)
}

// CSVImporter reads customer rows from CSV and inserts them in batches.
type CSVImporter struct {
	reader    *csv.Reader
	repo      CustomerWriter
	batchSize int
}

func NewCSVImporter(r io.Reader, repo CustomerWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:    csvr,
		repo:      repo,
		batchSize: DefaultBatchSize,
	}
}

// WithBatchSize overrides DefaultBatchSize. Values below 1 are ignored.
func (i *CSVImporter) WithBatchSize(n int) *CSVImporter {
	if n > 0 {
		i.batchSize = n
	}
	return i
}

// Run parses every row after the header and inserts them as new customers.
// Every inserted record gets a fresh identifier; an id column is ignored.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required column \"name\"")
	}

	var (
		batch    = make([]domain.Customer, 0, i.batchSize)
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		row, ok := parseRow(record, index)
		if !ok {
			continue
		}
		batch = append(batch, row)

		if len(batch) >= i.batchSize {
			if err := i.flush(ctx, batch); err != nil {
				return imported, err
			}
			imported += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := i.flush(ctx, batch); err != nil {
			return imported, err
		}
		imported += len(batch)
	}

	return imported, nil
}

func (i *CSVImporter) flush(ctx context.Context, batch []domain.Customer) error {
	out := make([]domain.Customer, len(batch))
	copy(out, batch)
	if _, err := i.repo.SaveAll(ctx, out); err != nil {
		return fmt.Errorf("save %d customers: %w", len(out), err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Customer, bool) {
	c := domain.Customer{
		Name:    pick(record, index, "name"),
		Email:   pick(record, index, "email"),
		Phone:   pick(record, index, "phone"),
		Address: pick(record, index, "address"),
	}
	if c.Name == "" && c.Email == "" && c.Phone == "" && c.Address == "" {
		return domain.Customer{}, false
	}
	return c, true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
