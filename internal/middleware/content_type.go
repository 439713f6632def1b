package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/types"
)

// RequireJSON rejects write requests whose body is not declared as JSON.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return &types.CustomError{
				Code:    fiber.StatusUnsupportedMediaType,
				Message: "Content-Type must be application/json",
				Type:    "validation.contentType",
			}
		}
		return c.Next()
	}
}
