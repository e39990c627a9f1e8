package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "pabrikku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global (urutan penting:
// recovery paling luar, baru logging & CORS, terakhir limiter).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
