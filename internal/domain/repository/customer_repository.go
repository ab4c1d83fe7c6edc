package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	EnsureTable(ctx context.Context) error
	InsertIgnore(ctx context.Context, customers []entity.Customer) (int64, error)
}
