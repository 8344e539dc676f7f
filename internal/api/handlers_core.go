package api

import "github.com/gofiber/fiber/v2"

// Health reports which backend is live right now; the label flips between
// requests when durable reachability changes.
func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "OK",
		"message":  "Server is running",
		"database": handler.stores.Active().Kind(),
	})
}
