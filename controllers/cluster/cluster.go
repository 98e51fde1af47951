package controllers

import (
	"setu/database"
	"setu/middleware"
	"setu/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCluster creates a new cluster profile
func CreateCluster(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCluster").(*models.Cluster)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Cluster names are unique
	var existing models.Cluster
	if err := database.Database.Db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cluster with name '"+reqData.Name+"' already exists!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create cluster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Cluster created successfully!", reqData)
}

// ListClusters lists all cluster profiles with pinned items first
func ListClusters(c *fiber.Ctx) error {
	var clusters []models.Cluster
	if err := database.Database.Db.
		Order("pinned desc").
		Order("created_at desc").
		Find(&clusters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch clusters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Clusters fetched successfully!", clusters)
}

// GetCluster returns a specific cluster by ID
func GetCluster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cluster fetched successfully!", cluster)
}

// UpdateCluster updates a cluster profile's descriptive attributes
func UpdateCluster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	reqData, ok := c.Locals("validatedClusterUpdate").(*models.Cluster)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields; cluster identity (name) stays immutable
	if reqData.RegionType != "" {
		cluster.RegionType = reqData.RegionType
	}
	if reqData.Language != "" {
		cluster.Language = reqData.Language
	}
	if reqData.InfrastructureConstraints != "" {
		cluster.InfrastructureConstraints = reqData.InfrastructureConstraints
	}
	if reqData.KeyIssues != "" {
		cluster.KeyIssues = reqData.KeyIssues
	}
	if reqData.GradeRange != "" {
		cluster.GradeRange = reqData.GradeRange
	}

	if err := database.Database.Db.Save(&cluster).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cluster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cluster updated successfully!", cluster)
}

// DeleteCluster deletes a cluster profile
func DeleteCluster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	if err := database.Database.Db.Delete(&cluster).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete cluster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cluster deleted successfully!", nil)
}

// ToggleClusterPin toggles pin status for a cluster
func ToggleClusterPin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cluster ID!", nil)
	}

	var cluster models.Cluster
	if err := database.Database.Db.First(&cluster, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cluster not found!", nil)
	}

	cluster.Pinned = !cluster.Pinned
	if err := database.Database.Db.Save(&cluster).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cluster!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cluster pin toggled successfully!", cluster)
}
