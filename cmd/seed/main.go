// seed puebla la base de datos una vez y termina, sin levantar el servidor HTTP.
//
// Uso: POSTGRES_URL=postgres://... go run ./cmd/seed
// SEED_FIXTURE_PATH permite usar un YAML distinto al dataset embebido.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/internal/fixtures"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dashboard-api/pkg/config"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dataset, err := fixtures.Load(cfg.Seed.FixturePath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar fixtures")
	}

	uc := seed.NewSeedUseCase(
		postgres.NewConnector(cfg.DB),
		seed.NewBcryptHasher(cfg.Seed.BcryptCost),
		dataset,
		log,
		seed.Config{HashWorkers: cfg.Seed.HashWorkers},
	)

	result, err := uc.Seed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}

	for _, p := range result.Phases {
		log.Info().
			Str("table", p.Table).
			Int64("inserted", p.Inserted).
			Int64("skipped", p.Skipped()).
			Msg("tabla poblada")
	}
	log.Info().Msg("Database seeded successfully")
}
