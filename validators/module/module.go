package moduleValidator

import (
	"strings"

	"setu/middleware"

	"github.com/gofiber/fiber/v2"
)

func GenerateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Topic     string `json:"topic"`
			ManualID  uint   `json:"manual_id"`
			ClusterID uint   `json:"cluster_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if reqData.ManualID == 0 {
			errors["manual_id"] = "Manual ID is required!"
		}
		if reqData.ClusterID == 0 {
			errors["cluster_id"] = "Cluster ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

func SubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating   int    `json:"rating"`
			Comments string `json:"comments"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
