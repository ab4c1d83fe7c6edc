package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

const createRevenueTable = `
	CREATE TABLE IF NOT EXISTS revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`

const insertRevenue = `
	INSERT INTO revenue (month, revenue)
	VALUES ($1, $2)
	ON CONFLICT (month) DO NOTHING`

// RevenueRepo implementación de RevenueRepository.
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// EnsureTable crea la tabla revenue si no existe.
func (r *RevenueRepo) EnsureTable(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createRevenueTable); err != nil {
		return fmt.Errorf("create table revenue: %w", err)
	}
	return nil
}

// InsertIgnore inserta los meses; un mes repetido (en la tabla o en el propio dataset) se omite.
func (r *RevenueRepo) InsertIgnore(ctx context.Context, revenue []entity.Revenue) (int64, error) {
	b := &pgx.Batch{}
	for _, rev := range revenue {
		b.Queue(insertRevenue, rev.Month, rev.Revenue)
	}
	n, err := execBatch(ctx, r.q, b)
	if err != nil {
		return 0, fmt.Errorf("insert revenue: %w", err)
	}
	return n, nil
}
