package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/internal/fixtures"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// Nombres de tabla, también usados como etiqueta de fase.
const (
	TableUsers     = "users"
	TableCustomers = "customers"
	TableInvoices  = "invoices"
	TableRevenue   = "revenue"
)

// Config parámetros del caso de uso.
type Config struct {
	HashWorkers int // máximo de hashes bcrypt simultáneos
}

// SeedUseCase puebla las tablas del dashboard con el dataset de fixtures.
type SeedUseCase struct {
	connector   Connector
	hasher      PasswordHasher
	dataset     *fixtures.Dataset
	log         *logger.Logger
	hashWorkers int
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(connector Connector, hasher PasswordHasher, dataset *fixtures.Dataset, log *logger.Logger, cfg Config) *SeedUseCase {
	workers := cfg.HashWorkers
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SeedUseCase{
		connector:   connector,
		hasher:      hasher,
		dataset:     dataset,
		log:         log,
		hashWorkers: workers,
	}
}

// Seed crea las tablas que falten e inserta el dataset en una sola transacción:
// users, customers, invoices y revenue, en ese orden. Las filas cuya clave ya existe se omiten.
// Cualquier error revierte la transacción completa.
func (uc *SeedUseCase) Seed(ctx context.Context) (*dto.SeedResult, error) {
	session, err := uc.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	var result dto.SeedResult
	err = session.RunSeed(ctx, func(
		schemaRepo repository.SchemaRepository,
		userRepo repository.UserRepository,
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
		revenueRepo repository.RevenueRepository,
	) error {
		result.Phases = result.Phases[:0]

		if err := schemaRepo.EnsureUUIDExtension(ctx); err != nil {
			return err
		}

		phases := []func(context.Context) (dto.PhaseResult, error){
			func(ctx context.Context) (dto.PhaseResult, error) { return uc.seedUsers(ctx, userRepo) },
			func(ctx context.Context) (dto.PhaseResult, error) { return uc.seedCustomers(ctx, customerRepo) },
			func(ctx context.Context) (dto.PhaseResult, error) { return uc.seedInvoices(ctx, invoiceRepo) },
			func(ctx context.Context) (dto.PhaseResult, error) { return uc.seedRevenue(ctx, revenueRepo) },
		}
		for _, run := range phases {
			phase, err := run(ctx)
			if err != nil {
				return err
			}
			uc.logPhase(phase)
			result.Phases = append(result.Phases, phase)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *SeedUseCase) seedUsers(ctx context.Context, repo repository.UserRepository) (dto.PhaseResult, error) {
	phase := dto.PhaseResult{Table: TableUsers, Attempted: len(uc.dataset.Users)}
	if err := repo.EnsureTable(ctx); err != nil {
		return phase, err
	}

	users, err := uc.hashUsers(ctx, uc.dataset.Users)
	if err != nil {
		return phase, err
	}

	phase.Inserted, err = repo.InsertIgnore(ctx, users)
	return phase, err
}

// hashUsers calcula los hashes en paralelo; el primer error cancela el resto.
func (uc *SeedUseCase) hashUsers(ctx context.Context, seeds []entity.UserSeed) ([]entity.User, error) {
	users := make([]entity.User, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.hashWorkers)
	for i, s := range seeds {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := uc.hasher.Hash(s.Password)
			if err != nil {
				return fmt.Errorf("hash password for user %s: %w", s.ID, err)
			}
			users[i] = entity.User{
				ID:           s.ID,
				Name:         s.Name,
				Email:        s.Email,
				PasswordHash: hash,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	uc.log.Debug().Int("count", len(users)).Int("workers", uc.hashWorkers).Msg("contraseñas hasheadas")
	return users, nil
}

func (uc *SeedUseCase) seedCustomers(ctx context.Context, repo repository.CustomerRepository) (dto.PhaseResult, error) {
	phase := dto.PhaseResult{Table: TableCustomers, Attempted: len(uc.dataset.Customers)}
	if err := repo.EnsureTable(ctx); err != nil {
		return phase, err
	}
	var err error
	phase.Inserted, err = repo.InsertIgnore(ctx, uc.dataset.Customers)
	return phase, err
}

func (uc *SeedUseCase) seedInvoices(ctx context.Context, repo repository.InvoiceRepository) (dto.PhaseResult, error) {
	phase := dto.PhaseResult{Table: TableInvoices, Attempted: len(uc.dataset.Invoices)}
	if err := repo.EnsureTable(ctx); err != nil {
		return phase, err
	}
	var err error
	phase.Inserted, err = repo.InsertIgnore(ctx, uc.dataset.Invoices)
	return phase, err
}

func (uc *SeedUseCase) seedRevenue(ctx context.Context, repo repository.RevenueRepository) (dto.PhaseResult, error) {
	phase := dto.PhaseResult{Table: TableRevenue, Attempted: len(uc.dataset.Revenue)}
	if err := repo.EnsureTable(ctx); err != nil {
		return phase, err
	}
	var err error
	phase.Inserted, err = repo.InsertIgnore(ctx, uc.dataset.Revenue)
	return phase, err
}

func (uc *SeedUseCase) logPhase(p dto.PhaseResult) {
	var ev *zerolog.Event
	if p.Skipped() > 0 {
		// filas ya existentes o claves repetidas en el dataset
		ev = uc.log.Warn()
	} else {
		ev = uc.log.Info()
	}
	ev.Str("table", p.Table).
		Int("attempted", p.Attempted).
		Int64("inserted", p.Inserted).
		Int64("skipped", p.Skipped()).
		Msg("fase de seed completada")
}
