package customer

import (
	"context"

	"customer-service/internal/domain"
)

// Repository persists and fetches customers.
//
// Lookups by identifier take the external hex form and return
// domain.ErrInvalidID when it does not parse. Single-record lookups return
// domain.ErrNotFound when nothing matches.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByNameContainingIgnoreCase(ctx context.Context, name string) ([]domain.Customer, error)
	// Save inserts c when it has no identifier and replaces the stored record otherwise.
	Save(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	// SaveAll inserts every record in one batch; identifiers on input are discarded.
	SaveAll(ctx context.Context, cs []domain.Customer) ([]domain.Customer, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
