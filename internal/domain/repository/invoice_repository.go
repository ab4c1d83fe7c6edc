package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	EnsureTable(ctx context.Context) error
	InsertIgnore(ctx context.Context, invoices []entity.Invoice) (int64, error)
}
