package customer

import (
	"context"

	"customer-service/internal/domain"
	custrepo "customer-service/internal/repository/customer"
	"go.uber.org/zap"
)

// Service holds the rules the HTTP handlers apply on top of the repository.
type Service struct {
	repo   custrepo.Repository
	logger *zap.Logger
}

// New creates a Service over repo.
func New(repo custrepo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns every customer in store order.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the customer with the given hex id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts c under a freshly assigned id. Any id on c is discarded.
func (s *Service) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	c.ClearID()
	created, err := s.repo.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer created", zap.String("id", created.StringID()))
	return created, nil
}

// Update copies the mutable fields of in onto the stored customer id. The id
// argument always wins over any id carried by in.
func (s *Service) Update(ctx context.Context, id string, in domain.Customer) (*domain.Customer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.CopyFields(in)

	updated, err := s.repo.Save(ctx, *existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer updated", zap.String("id", updated.StringID()))
	return updated, nil
}

// Delete removes the customer id, failing with domain.ErrNotFound when absent.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.String("id", id))
	return nil
}

// DeleteAll removes every customer.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.logger.Info("all customers deleted")
	return nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// SearchByName matches name anywhere in the customer name, ignoring case.
func (s *Service) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	return s.repo.FindByNameContainingIgnoreCase(ctx, name)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

// ExistsByEmail is informational; Create does not consult it.
func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}
