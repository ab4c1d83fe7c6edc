package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// customer_id sin FK: la consistencia con customers la da el orden del seed.
const createInvoicesTable = `
	CREATE TABLE IF NOT EXISTS invoices (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		customer_id UUID NOT NULL,
		amount INT NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL
	)`

const insertInvoice = `
	INSERT INTO invoices (id, customer_id, amount, status, date)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING`

// InvoiceRepo implementación de InvoiceRepository.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// EnsureTable crea la tabla invoices si no existe.
func (r *InvoiceRepo) EnsureTable(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createInvoicesTable); err != nil {
		return fmt.Errorf("create table invoices: %w", err)
	}
	return nil
}

// InsertIgnore inserta las facturas con su ID derivado, de modo que repetir el seed no las duplica.
func (r *InvoiceRepo) InsertIgnore(ctx context.Context, invoices []entity.Invoice) (int64, error) {
	b := &pgx.Batch{}
	for _, inv := range invoices {
		b.Queue(insertInvoice, inv.DerivedID(), inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	}
	n, err := execBatch(ctx, r.q, b)
	if err != nil {
		return 0, fmt.Errorf("insert invoices: %w", err)
	}
	return n, nil
}
