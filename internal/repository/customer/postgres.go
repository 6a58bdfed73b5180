package customer

import (
	"context"
	"errors"
	"fmt"

	"customer-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Repository backed by Postgres. Identifiers are
// generated by the column default as 24 hex characters so they parse the same
// way as mongo ObjectIDs.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const selectColumns = `id, name, email, phone, address`

func (r *postgresRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return r.query(ctx, `SELECT `+selectColumns+` FROM customers`)
}

func (r *postgresRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	const q = `SELECT ` + selectColumns + ` FROM customers WHERE id = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, oid.Hex()))
}

func (r *postgresRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `SELECT ` + selectColumns + ` FROM customers WHERE email = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) FindByNameContainingIgnoreCase(ctx context.Context, name string) ([]domain.Customer, error) {
	return r.query(ctx, `SELECT `+selectColumns+` FROM customers WHERE strpos(lower(name), lower($1)) > 0`, name)
}

func (r *postgresRepo) Save(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if !c.HasID() {
		const q = `
INSERT INTO customers (name, email, phone, address)
VALUES ($1, $2, $3, $4)
RETURNING ` + selectColumns
		return r.scanCustomer(r.pool.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Address))
	}

	const q = `
INSERT INTO customers (id, name, email, phone, address)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    address = EXCLUDED.address,
    updated_at = now()
RETURNING ` + selectColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.ID.Hex(), c.Name, c.Email, c.Phone, c.Address))
}

func (r *postgresRepo) SaveAll(ctx context.Context, cs []domain.Customer) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(cs))
	if len(cs) == 0 {
		return out, nil
	}

	const q = `
INSERT INTO customers (name, email, phone, address)
VALUES ($1, $2, $3, $4)
RETURNING ` + selectColumns

	batch := &pgx.Batch{}
	for _, c := range cs {
		batch.Queue(q, c.Name, c.Email, c.Phone, c.Address)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range cs {
		saved, err := r.scanCustomer(results.QueryRow())
		if err != nil {
			return nil, err
		}
		out = append(out, *saved)
	}
	return out, nil
}

func (r *postgresRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, oid.Hex())
	return err
}

func (r *postgresRepo) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customers`)
	return err
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...any) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Customer{}
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		c  domain.Customer
		id string
	)
	err := row.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("customer repo: scan error", zap.Error(err))
		return nil, err
	}
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("stored id: %w", err)
	}
	c.ID = oid
	return &c, nil
}
