package clusterValidator

import (
	"strings"

	"setu/middleware"
	"setu/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCluster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Cluster)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.RegionType) == "" {
			errors["region_type"] = "Region type is required!"
		}

		if strings.TrimSpace(reqData.Language) == "" {
			errors["language"] = "Language is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCluster", reqData)
		return c.Next()
	}
}

func UpdateCluster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Cluster)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedClusterUpdate", reqData)
		return c.Next()
	}
}
