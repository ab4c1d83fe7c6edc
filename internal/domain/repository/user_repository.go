package repository

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// InsertIgnore devuelve cuántas filas se insertaron; las que chocan por id o email se omiten.
type UserRepository interface {
	EnsureTable(ctx context.Context) error
	InsertIgnore(ctx context.Context, users []entity.User) (int64, error)
}
