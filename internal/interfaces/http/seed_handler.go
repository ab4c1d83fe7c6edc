package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// SeedSuccessMessage cuerpo de la respuesta 200.
const SeedSuccessMessage = "Database seeded successfully"

// SeedHandler expone el poblado de la base de datos.
type SeedHandler struct {
	uc  *seed.SeedUseCase
	log *logger.Logger
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *seed.SeedUseCase, log *logger.Logger) *SeedHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SeedHandler{uc: uc, log: log}
}

// Seed GET /seed
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	result, err := h.uc.Seed(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrDatabaseURLMissing) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: domain.ErrDatabaseURLMissing.Error()})
		}
		h.log.Error().Err(err).Msg("Seeding failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: errorMessage(err)})
	}

	ev := h.log.Info()
	for _, p := range result.Phases {
		ev = ev.Int64(p.Table, p.Inserted)
	}
	ev.Msg("base de datos poblada")

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: SeedSuccessMessage})
}

// errorMessage devuelve el mensaje del servidor PostgreSQL sin el contexto de wrapping.
func errorMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}
