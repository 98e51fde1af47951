package controllers

import (
	"time"

	"setu/config"
	"setu/database"
	"setu/middleware"
	"setu/models"
	"setu/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadManual stores a source training manual against a cluster. The manual
// stays unusable for generation until the retrieval service has indexed it
// and MarkManualIndexed is called.
func UploadManual(c *fiber.Ctx) error {
	clusterID, err := c.ParamsInt("cluster_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, clusterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	title := c.FormValue("title")
	if title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Manual file is required!", nil)
	}

	filename, filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save manual file!", nil)
	}

	manual := models.Manual{
		Title:     title,
		Filename:  filename,
		FilePath:  filePath,
		FileSize:  file.Size,
		ClusterID: uint(clusterID),
	}

	if err := database.Database.Db.Create(&manual).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create manual!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Manual uploaded successfully!", manual)
}

// ListManuals lists manuals, optionally filtered by cluster
func ListManuals(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Manual{})
	if clusterID := c.QueryInt("cluster_id"); clusterID > 0 {
		query = query.Where("cluster_id = ?", clusterID)
	}

	var manuals []models.Manual
	if err := query.Order("id asc").Find(&manuals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch manuals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Manuals fetched successfully!", manuals)
}

// MarkManualIndexed flags a manual as indexed by the retrieval service,
// making it eligible for module generation.
func MarkManualIndexed(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid manual ID!", nil)
	}

	var manual models.Manual
	if err := database.Database.Db.First(&manual, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Manual not found!", nil)
	}

	now := time.Now()
	manual.IsIndexed = true
	manual.IndexedAt = &now

	if err := database.Database.Db.Save(&manual).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update manual!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Manual marked as indexed!", manual)
}
