package seed

import (
	"context"
	"fmt"

	"customer-service/internal/domain"
	custrepo "customer-service/internal/repository/customer"
	"go.uber.org/zap"
)

// Customers returns the sample records inserted into an empty store.
func Customers() []domain.Customer {
	return []domain.Customer{
		{Name: "John Doe", Email: "john.doe@example.com", Phone: "555-123-4567", Address: "123 Main St, Anytown, USA"},
		{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "555-234-5678", Address: "456 Oak Ave, Somewhere, USA"},
		{Name: "Robert Johnson", Email: "robert.johnson@example.com", Phone: "555-345-6789", Address: "789 Pine Rd, Nowhere, USA"},
		{Name: "Emily Davis", Email: "emily.davis@example.com", Phone: "555-456-7890", Address: "101 Maple Dr, Everywhere, USA"},
		{Name: "Michael Wilson", Email: "michael.wilson@example.com", Phone: "555-567-8901", Address: "202 Cedar Ln, Anywhere, USA"},
	}
}

// Apply inserts the sample customers when the store is empty and returns how
// many were inserted. A non-empty store is left untouched.
//
// The count check and the insert are not atomic; two processes seeding the
// same empty store at once will both insert.
func Apply(ctx context.Context, repo custrepo.Repository, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("checking if customer seed is needed")

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	if n > 0 {
		logger.Info("store already contains customers, skipping seed", zap.Int64("count", n))
		return 0, nil
	}

	saved, err := repo.SaveAll(ctx, Customers())
	if err != nil {
		return 0, fmt.Errorf("insert sample customers: %w", err)
	}
	logger.Info("seeded sample customers", zap.Int("count", len(saved)))
	return len(saved), nil
}
