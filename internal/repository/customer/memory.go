package customer

import (
	"context"
	"strings"
	"sync"

	"customer-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]domain.Customer
}

// NewMemory returns an in-process Repository. Records are kept in insertion
// order and are lost when the process exits.
func NewMemory() Repository {
	return &memoryRepo{byID: make(map[primitive.ObjectID]domain.Customer)}
}

func (r *memoryRepo) FindAll(_ context.Context) ([]domain.Customer, error) {
	return r.filter(func(domain.Customer) bool { return true }), nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[oid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	matches := r.filter(func(c domain.Customer) bool { return c.Email == email })
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	return &matches[0], nil
}

func (r *memoryRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *memoryRepo) FindByNameContainingIgnoreCase(_ context.Context, name string) ([]domain.Customer, error) {
	needle := strings.ToLower(name)
	return r.filter(func(c domain.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	}), nil
}

func (r *memoryRepo) Save(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(&c)
	return &c, nil
}

func (r *memoryRepo) SaveAll(_ context.Context, cs []domain.Customer) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Customer, len(cs))
	for i, c := range cs {
		c.ClearID()
		r.put(&c)
		out[i] = c
	}
	return out, nil
}

func (r *memoryRepo) DeleteByID(_ context.Context, id string) error {
	oid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[oid]; !ok {
		return nil
	}
	delete(r.byID, oid)
	for i, existing := range r.order {
		if existing == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.byID = make(map[primitive.ObjectID]domain.Customer)
	return nil
}

func (r *memoryRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

// put assigns an identifier when missing and stores c. Callers hold mu.
func (r *memoryRepo) put(c *domain.Customer) {
	if !c.HasID() {
		c.ID = primitive.NewObjectID()
	}
	if _, exists := r.byID[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = *c
}

func (r *memoryRepo) filter(keep func(domain.Customer) bool) []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Customer{}
	for _, id := range r.order {
		if c := r.byID[id]; keep(c) {
			result = append(result, c)
		}
	}
	return result
}
