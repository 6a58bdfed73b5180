package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"customer-service/internal/domain"
)

type stubCustomerRepo struct {
	batches [][]domain.Customer
	err     error
}

func (s *stubCustomerRepo) SaveAll(_ context.Context, cs []domain.Customer) ([]domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.batches = append(s.batches, cs)
	return cs, nil
}

func (s *stubCustomerRepo) all() []domain.Customer {
	var out []domain.Customer
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `Address,name,email,phone,id
"123 Main St, Anytown, USA",John Doe,john.doe@example.com,555-123-4567,000000000000000000000001
,,,,
"456 Oak Ave, Somewhere, USA",Jane Smith,jane.smith@example.com,555-234-5678,`

	repo := &stubCustomerRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 customers imported, got %d", count)
	}

	items := repo.all()
	if len(items) != 2 {
		t.Fatalf("expected 2 customers saved, got %d", len(items))
	}
	first := items[0]
	if first.Name != "John Doe" || first.Email != "john.doe@example.com" || first.Phone != "555-123-4567" || first.Address != "123 Main St, Anytown, USA" {
		t.Fatalf("unexpected customer data: %+v", first)
	}
	if first.HasID() {
		t.Fatalf("expected id column to be ignored, got %s", first.StringID())
	}
}

func TestCSVImporter_Batches(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,email\n")
	for i := 0; i < 7; i++ {
		b.WriteString("Customer,c@example.com\n")
	}

	repo := &stubCustomerRepo{}
	count, err := NewCSVImporter(strings.NewReader(b.String()), repo).WithBatchSize(3).Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7 imported, got %d", count)
	}
	if len(repo.batches) != 3 || len(repo.batches[0]) != 3 || len(repo.batches[2]) != 1 {
		t.Fatalf("unexpected batching: %d batches", len(repo.batches))
	}
}

func TestCSVImporter_MissingNameColumn(t *testing.T) {
	_, err := NewCSVImporter(strings.NewReader("email,phone\na@b.c,1\n"), &stubCustomerRepo{}).Run(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing name column")
	}
}

func TestCSVImporter_SaveError(t *testing.T) {
	repo := &stubCustomerRepo{err: errors.New("boom")}
	count, err := NewCSVImporter(strings.NewReader("name\nA\n"), repo).Run(context.Background())
	if err == nil {
		t.Fatalf("expected save error")
	}
	if count != 0 {
		t.Fatalf("expected 0 imported on failure, got %d", count)
	}
}
