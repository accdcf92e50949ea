package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"laraigo_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base stack: recover first, then CORS, global
// rate limit, request logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
