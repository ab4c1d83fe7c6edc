package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SeedUC *seed.SeedUseCase
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	seedHandler := NewSeedHandler(deps.SeedUC, deps.Log)
	app.Get("/seed", seedHandler.Seed)
}
