package helper

import (
	"github.com/gofiber/fiber/v2"
)

// The dashboard pattern-matches on a bare {message} body (no envelope), so the
// helpers keep exactly that shape for errors and confirmations.

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"message": message})
}

func JsonMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}
