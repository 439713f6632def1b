package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is the version reported in the X-Api-Version response header.
const APIVersion = "1.0.0"

// VersionMiddleware echoes the API version on every response and stores the
// version the client asked for (X-Api-Version, default current) in context.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := c.Get("X-Api-Version", APIVersion)

		// Support version aliases
		if requested == "1" || requested == "1.0" {
			requested = APIVersion
		}

		c.Locals("apiVersion", requested)
		c.Set("X-Api-Version", APIVersion)

		return c.Next()
	}
}
