package seed

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

// SeedTxRunner ejecuta fn dentro de una única transacción con los repositorios atados a ella.
// Si fn retorna error se hace rollback de todo, DDL incluido.
type SeedTxRunner interface {
	RunSeed(ctx context.Context, fn func(
		schemaRepo repository.SchemaRepository,
		userRepo repository.UserRepository,
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
		revenueRepo repository.RevenueRepository,
	) error) error
}

// Session conexión adquirida para una ejecución del seed. Close la libera.
type Session interface {
	SeedTxRunner
	Close()
}

// Connector adquiere la conexión a la base de datos. Debe fallar con
// domain.ErrDatabaseURLMissing sin tocar la red cuando no hay connection string.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// PasswordHasher transformación de un solo sentido para contraseñas.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}
