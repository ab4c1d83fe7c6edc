package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`

// Sin target en ON CONFLICT: se omite tanto el choque por id como por email.
const insertUser = `
	INSERT INTO users (id, name, email, password)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT DO NOTHING`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// EnsureTable crea la tabla users si no existe; nunca altera una existente.
func (r *UserRepo) EnsureTable(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create table users: %w", err)
	}
	return nil
}

// InsertIgnore inserta los usuarios (password ya hasheado) y devuelve cuántos se insertaron.
func (r *UserRepo) InsertIgnore(ctx context.Context, users []entity.User) (int64, error) {
	b := &pgx.Batch{}
	for _, u := range users {
		b.Queue(insertUser, u.ID, u.Name, u.Email, u.PasswordHash)
	}
	n, err := execBatch(ctx, r.q, b)
	if err != nil {
		return 0, fmt.Errorf("insert users: %w", err)
	}
	return n, nil
}
