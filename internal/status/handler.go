// Package status exposes the probe endpoints hit by the deploy check.
package status

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GET /api/status
func StatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// GET /api/auth/check — static probe answer; it does not inspect the request
// and always reports an anonymous session.
func AuthCheckHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"authenticated": false,
			"message":       "No active session",
		})
	}
}

// GET /api/test
func TestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Sakura Backend is running!"})
	}
}
