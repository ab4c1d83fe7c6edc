package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

var _ repository.SchemaRepository = (*SchemaRepo)(nil)

// SchemaRepo prepara extensiones requeridas por las tablas.
type SchemaRepo struct {
	q Querier
}

// NewSchemaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSchemaRepository(q Querier) *SchemaRepo {
	return &SchemaRepo{q: q}
}

// EnsureUUIDExtension habilita uuid-ossp (uuid_generate_v4) si no existe.
func (r *SchemaRepo) EnsureUUIDExtension(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return fmt.Errorf("create extension uuid-ossp: %w", err)
	}
	return nil
}
