package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/parts-pile/car-sales/ui"
)

func datasetCacheSection() g.Node {
	ds, _ := store.Current()
	return ui.AdminDatasetCacheSection(store.Stats(), ds)
}

func HandleAdminDatasetCache(c *fiber.Ctx) error {
	if c.Get("HX-Request") != "" {
		return render(c, ui.AdminSectionPage("dataset-cache", datasetCacheSection()))
	}
	return render(c, ui.Page(
		"Admin Dashboard",
		c.Path(),
		[]g.Node{ui.AdminSectionPage("dataset-cache", datasetCacheSection())},
	))
}

func HandleClearDatasetCache(c *fiber.Ctx) error {
	store.Invalidate()
	log.Printf("[admin] dataset cache cleared from %s", c.IP())

	return render(c, datasetCacheSection())
}

func HandleRefreshDatasetCache(c *fiber.Ctx) error {
	return render(c, datasetCacheSection())
}
