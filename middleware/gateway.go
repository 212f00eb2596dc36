package middleware

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ServiceAuthMiddleware validates the shared Bearer token set by the deployment
// gateway. When LEARNING_SERVICE_TOKEN is unset the check is skipped entirely;
// local development talks to the service directly.
func ServiceAuthMiddleware() fiber.Handler {
	expectedToken := os.Getenv("LEARNING_SERVICE_TOKEN")
	if expectedToken == "" {
		log.Println("⚠️  LEARNING_SERVICE_TOKEN not set — service auth disabled")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "service authentication token missing",
				"kind":  "validation",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != expectedToken {
			log.Printf("🚫 [SERVICE_AUTH] Invalid token for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid service authentication token",
				"kind":  "validation",
			})
		}
		return c.Next()
	}
}
