package manualRoutes

import (
	manualControllers "setu/controllers/manual"

	"github.com/gofiber/fiber/v2"
)

// SetupManualRoutes sets up manual upload and indexing routes
func SetupManualRoutes(app *fiber.App) {
	manualGroup := app.Group("/api/manuals")

	manualGroup.Post("/:cluster_id", manualControllers.UploadManual)
	manualGroup.Get("/", manualControllers.ListManuals)
	manualGroup.Patch("/:id/index", manualControllers.MarkManualIndexed)
}
