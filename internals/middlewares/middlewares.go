package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the global middleware chain, order matters:
// recovery first so everything below is covered.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
