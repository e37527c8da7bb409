// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
	experimentRoutes "github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/route"
)

func SetupRoutes(app *fiber.App, repo repository.Repository) {
	// Health check at the root, outside /api
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	log.Println("[INFO] Setting up experiment routes...")
	api := app.Group("/api")
	experimentRoutes.ExperimentRoutes(api, repo)
}
