package http

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// Middlewares instala recover y el log de acceso. Cada línea de acceso se emite
// como mensaje del logger de la aplicación, así respeta el formato del entorno.
func Middlewares(app *fiber.App, log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${status} ${method} ${path} ${latency} ${error}\n",
		Output: log.Zerolog(),
	}))
}
