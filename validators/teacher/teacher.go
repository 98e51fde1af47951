package teacherValidator

import (
	"strings"

	"setu/middleware"

	"github.com/gofiber/fiber/v2"
)

func AddTeacherContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			PhoneNumber string `json:"phone_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Name is optional; the message body falls back to "Teacher"
		if strings.TrimSpace(reqData.PhoneNumber) == "" {
			errors["phone_number"] = "Phone number is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacherContact", reqData)
		return c.Next()
	}
}
