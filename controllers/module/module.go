package controllers

import (
	"errors"

	"setu/database"
	"setu/middleware"
	"setu/models"
	"setu/pipeline"

	"github.com/gofiber/fiber/v2"
)

// ModuleController exposes the module lifecycle pipeline over HTTP. The
// pipeline handles are injected so tests can run them against fakes.
type ModuleController struct {
	Generator  *pipeline.Generator
	Approver   *pipeline.Approver
	Dispatcher *pipeline.Dispatcher
}

func NewModuleController(generator *pipeline.Generator, approver *pipeline.Approver, dispatcher *pipeline.Dispatcher) *ModuleController {
	return &ModuleController{
		Generator:  generator,
		Approver:   approver,
		Dispatcher: dispatcher,
	}
}

// GenerateModule generates an adapted training module for a specific cluster
func (mc *ModuleController) GenerateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerate").(*struct {
		Topic     string `json:"topic"`
		ManualID  uint   `json:"manual_id"`
		ClusterID uint   `json:"cluster_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := mc.Generator.Generate(c.Context(), reqData.Topic, reqData.ManualID, reqData.ClusterID)
	if err != nil {
		return pipelineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module generated successfully!", module)
}

// ListModules lists all generated modules with optional filters
func (mc *ModuleController) ListModules(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Module{})

	if clusterID := c.QueryInt("cluster_id"); clusterID > 0 {
		query = query.Where("cluster_id = ?", clusterID)
	}
	if manualID := c.QueryInt("manual_id"); manualID > 0 {
		query = query.Where("manual_id = ?", manualID)
	}

	var modules []models.Module
	if err := query.Order("id desc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// GetModule returns a specific module by ID
func (mc *ModuleController) GetModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	var module models.Module
	if err := database.Database.Db.First(&module, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// ApproveModule approves a module and exports its PDF (language preserved).
// Re-approving is allowed; every call appends a fresh artifact record.
func (mc *ModuleController) ApproveModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	module, pdf, err := mc.Approver.Approve(c.Context(), uint(id))
	if err != nil {
		return pipelineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module approved and PDF generated successfully!", fiber.Map{
		"module_id": module.ID,
		"language":  module.Language,
		"pdf_id":    pdf.ID,
		"filename":  pdf.Filename,
	})
}

// SendModuleWhatsApp sends the module's PDF to all registered teacher
// contacts. Per-teacher delivery status is returned in the response; a
// failing recipient never fails the call.
func (mc *ModuleController) SendModuleWhatsApp(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	result, err := mc.Dispatcher.Dispatch(c.Context(), uint(id))
	if err != nil {
		return pipelineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "WhatsApp delivery attempted for all registered teacher contacts!", fiber.Map{
		"module_id": result.ModuleID,
		"pdf_id":    result.PDFID,
		"whatsapp": fiber.Map{
			"enabled": result.Enabled,
			"results": result.Results,
		},
	})
}

// DeleteModule deletes a module
func (mc *ModuleController) DeleteModule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	var module models.Module
	if err := database.Database.Db.First(&module, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := database.Database.Db.Delete(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// SubmitFeedback submits feedback for a module
func (mc *ModuleController) SubmitFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	var module models.Module
	if err := database.Database.Db.First(&module, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Rating   int    `json:"rating"`
		Comments string `json:"comments"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feedback := models.Feedback{
		ModuleID: module.ID,
		Rating:   reqData.Rating,
		Comments: reqData.Comments,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully!", feedback)
}

// pipelineErrorResponse maps the pipeline error taxonomy onto HTTP statuses.
func pipelineErrorResponse(c *fiber.Ctx, err error) error {
	var notFound *pipeline.NotFoundError
	var noContent *pipeline.NoContentError
	var adaptation *pipeline.AdaptationError
	var export *pipeline.ExportError

	switch {
	case errors.As(err, &notFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFound.Error(), nil)
	case errors.As(err, &noContent):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, noContent.Error(), nil)
	case errors.Is(err, pipeline.ErrManualNotIndexed):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.As(err, &adaptation), errors.As(err, &export):
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, err.Error(), nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
}
