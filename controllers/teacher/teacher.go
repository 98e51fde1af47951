package controllers

import (
	"setu/config"
	"setu/database"
	"setu/middleware"
	"setu/models"
	"setu/pipeline"

	"github.com/gofiber/fiber/v2"
)

// AddTeacherContact registers a teacher's WhatsApp number against a cluster.
// The number is normalized before storage so the gateway can dial it.
func AddTeacherContact(c *fiber.Ctx) error {
	clusterID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, clusterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	reqData, ok := c.Locals("validatedTeacherContact").(*struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact := models.TeacherContact{
		ClusterID:   uint(clusterID),
		Name:        reqData.Name,
		PhoneNumber: pipeline.NormalizePhone(reqData.PhoneNumber, config.AppConfig.DefaultCountryCode),
	}

	if err := database.Database.Db.Create(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register teacher contact!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher contact created successfully!", contact)
}

// ListTeacherContacts lists all teacher contacts registered for a cluster
func ListTeacherContacts(c *fiber.Ctx) error {
	clusterID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, clusterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	var contacts []models.TeacherContact
	if err := database.Database.Db.
		Where("cluster_id = ?", clusterID).
		Order("id asc").
		Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teacher contacts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher contacts fetched successfully!", contacts)
}
