package middleware

import "github.com/gofiber/fiber/v2"

// CORS marks every response as readable from any origin and answers
// preflight requests directly.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

		if c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET, HEAD, OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, "+RequestIDHeader)
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
