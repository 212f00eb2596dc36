package handlers

import (
	"log"

	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

// Stable machine-readable error kinds surfaced to clients.
const (
	kindValidation = "validation"
	kindNotFound   = "not_found"
	kindStorage    = "storage"
)

// respondError maps a service error to the JSON error envelope. Validation and
// not-found errors carry their own message; anything else is a storage failure
// logged with context and surfaced without internal detail.
func respondError(c *fiber.Ctx, err error, context string) error {
	switch {
	case services.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kindValidation,
		})
	case services.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kindNotFound,
		})
	default:
		log.Printf("❌ [%s] %s: %v", c.Path(), context, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": context,
			"kind":  kindStorage,
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
		"kind":  kindValidation,
	})
}
