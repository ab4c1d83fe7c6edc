package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/internal/fixtures"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dashboard-api/internal/interfaces/http"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("postgres_configured", cfg.DB.Configured()).
		Msg("iniciando aplicación")

	dataset, err := fixtures.Load(cfg.Seed.FixturePath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar fixtures")
	}

	// POSTGRES_URL ausente no detiene el arranque: /seed responde 500 en cada llamada.
	seedUC := seed.NewSeedUseCase(
		postgres.NewConnector(cfg.DB),
		seed.NewBcryptHasher(cfg.Seed.BcryptCost),
		dataset,
		log,
		seed.Config{HashWorkers: cfg.Seed.HashWorkers},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	httpRouter.Middlewares(app, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SeedUC: seedUC,
		Log:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
