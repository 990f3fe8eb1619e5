package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"perpustakaanku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu CORS, logger, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
