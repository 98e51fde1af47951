package moduleRoutes

import (
	moduleControllers "setu/controllers/module"
	moduleValidators "setu/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes sets up the module lifecycle routes
func SetupModuleRoutes(app *fiber.App, mc *moduleControllers.ModuleController) {
	moduleGroup := app.Group("/api/modules")

	moduleGroup.Post("/generate", moduleValidators.GenerateModule(), mc.GenerateModule)
	moduleGroup.Get("/", mc.ListModules)
	moduleGroup.Get("/:id", mc.GetModule)

	moduleGroup.Patch("/:id/approve", mc.ApproveModule)
	// Browser-friendly alias for approving a module
	moduleGroup.Get("/:id/approve", mc.ApproveModule)

	moduleGroup.Post("/:id/send-whatsapp", mc.SendModuleWhatsApp)

	moduleGroup.Delete("/:id", mc.DeleteModule)
	moduleGroup.Post("/:id/feedback", moduleValidators.SubmitFeedback(), mc.SubmitFeedback)
}
