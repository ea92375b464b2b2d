package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/ui"
)

var (
	store  *dataset.Store
	source string
)

// Init points the handlers at the dataset store and the source they serve.
func Init(s *dataset.Store, src string) {
	store = s
	source = src
}

// currentDataset returns the dataset of the configured source, reading it
// again if the cache was cleared.
func currentDataset() (*dataset.Dataset, error) {
	return store.Get(source)
}

// dashboardData runs the pipeline for the request's selection and toggles.
func dashboardData(c *fiber.Ctx, ds *dataset.Dataset, sel analytics.Selection) ui.DashboardData {
	return ui.DashboardData{
		Dataset: ds,
		Brands:  analytics.Brands(ds),
		Types:   analytics.TypeOptions(ds),
		Result:  analytics.Run(ds, sel),
		Toggles: parseToggles(c),
	}
}
