package repository

import "context"

// SchemaRepository prepara extensiones a nivel de base de datos.
type SchemaRepository interface {
	EnsureUUIDExtension(ctx context.Context) error
}
