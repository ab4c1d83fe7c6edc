package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// RevenueRepository puerto de persistencia para Revenue. La clave única es el mes.
type RevenueRepository interface {
	EnsureTable(ctx context.Context) error
	InsertIgnore(ctx context.Context, revenue []entity.Revenue) (int64, error)
}
