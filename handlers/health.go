package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unicompare/unicompare-api/catalog"
)

// HandleCheckHealth reports liveness and the size of the loaded catalog
func HandleCheckHealth(cat *catalog.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"universities": cat.Len(),
		})
	}
}
