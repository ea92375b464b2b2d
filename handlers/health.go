package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports whether the configured source can be served.
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
		"source": source,
	}

	ds, err := currentDataset()
	if err != nil {
		health["status"] = "unhealthy"
		health["dataset"] = "down"
		health["error"] = err.Error()
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["dataset"] = "up"
		health["rows"] = ds.Len()
		health["load_id"] = ds.LoadID
	}

	return c.JSON(health)
}
