package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const createCustomersTable = `
	CREATE TABLE IF NOT EXISTS customers (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`

const insertCustomer = `
	INSERT INTO customers (id, name, email, image_url)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO NOTHING`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// EnsureTable crea la tabla customers si no existe.
func (r *CustomerRepo) EnsureTable(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createCustomersTable); err != nil {
		return fmt.Errorf("create table customers: %w", err)
	}
	return nil
}

// InsertIgnore inserta los clientes omitiendo ids ya existentes.
func (r *CustomerRepo) InsertIgnore(ctx context.Context, customers []entity.Customer) (int64, error) {
	b := &pgx.Batch{}
	for _, c := range customers {
		b.Queue(insertCustomer, c.ID, c.Name, c.Email, c.ImageURL)
	}
	n, err := execBatch(ctx, r.q, b)
	if err != nil {
		return 0, fmt.Errorf("insert customers: %w", err)
	}
	return n, nil
}
