package postgres

import (
	"context"

	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/pkg/config"
)

var _ seed.Connector = (*Connector)(nil)

// Connector abre un pool por ejecución del seed; la sesión devuelta lo cierra.
type Connector struct {
	cfg config.DBConfig
}

// NewConnector construye el conector.
func NewConnector(cfg config.DBConfig) *Connector {
	return &Connector{cfg: cfg}
}

// Connect falla con domain.ErrDatabaseURLMissing antes de cualquier llamada de red si falta POSTGRES_URL.
func (c *Connector) Connect(ctx context.Context) (seed.Session, error) {
	if !c.cfg.Configured() {
		return nil, domain.ErrDatabaseURLMissing
	}
	pool, err := NewPool(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	return NewTxRunner(pool), nil
}
