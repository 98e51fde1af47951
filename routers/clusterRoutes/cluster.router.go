package clusterRoutes

import (
	clusterControllers "setu/controllers/cluster"
	teacherControllers "setu/controllers/teacher"
	clusterValidators "setu/validators/cluster"
	teacherValidators "setu/validators/teacher"

	"github.com/gofiber/fiber/v2"
)

// SetupClusterRoutes sets up cluster CRUD and nested teacher contact routes
func SetupClusterRoutes(app *fiber.App) {
	clusterGroup := app.Group("/api/clusters")

	clusterGroup.Post("/", clusterValidators.CreateCluster(), clusterControllers.CreateCluster)
	clusterGroup.Get("/", clusterControllers.ListClusters)
	clusterGroup.Get("/:id", clusterControllers.GetCluster)
	clusterGroup.Put("/:id", clusterValidators.UpdateCluster(), clusterControllers.UpdateCluster)
	clusterGroup.Delete("/:id", clusterControllers.DeleteCluster)
	clusterGroup.Patch("/:id/pin", clusterControllers.ToggleClusterPin)

	// Teacher contacts are registered per cluster
	clusterGroup.Post("/:id/teachers", teacherValidators.AddTeacherContact(), teacherControllers.AddTeacherContact)
	clusterGroup.Get("/:id/teachers", teacherControllers.ListTeacherContacts)
}
