package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/ui"
)

// errNoBrands is returned when the dataset offers nothing to select.
var errNoBrands = fiber.NewError(fiber.StatusNotFound, "The dataset has no listings with a model to derive a brand from.")

// parseSelection reads brand and type from the query. A missing brand falls
// back to the initial selection; anything not offered by ds is rejected.
func parseSelection(c *fiber.Ctx, ds *dataset.Dataset) (analytics.Selection, error) {
	sel := analytics.Selection{
		Brand:       c.Query(ui.ParamBrand),
		VehicleType: c.Query(ui.ParamType),
	}.Normalize()

	if sel.Brand == "" {
		initial, ok := analytics.InitialSelection(ds)
		if !ok {
			return sel, errNoBrands
		}
		sel.Brand = initial.Brand
	}

	if err := sel.Validate(ds); err != nil {
		return sel, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return sel, nil
}

// parseToggles reads the display switches. Outside a form submission the
// defaults apply, since unchecked boxes are not sent.
func parseToggles(c *fiber.Ctx) ui.Toggles {
	if c.Query(ui.ParamSubmitted) == "" {
		return ui.DefaultToggles
	}
	return ui.Toggles{
		ShowDataset:   c.Query(ui.ParamDataset) == "on",
		ShowHistogram: c.Query(ui.ParamHistogram) == "on",
		ShowScatter:   c.Query(ui.ParamScatter) == "on",
	}
}
