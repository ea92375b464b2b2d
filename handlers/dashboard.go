package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/car-sales/ui"
)

func HandleDashboardPage(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}

	sel, err := parseSelection(c, ds)
	if errors.Is(err, errNoBrands) {
		return render(c, ui.NoBrandsPage(ds))
	}
	if err != nil {
		return err
	}

	return render(c, ui.DashboardPage(dashboardData(c, ds, sel)))
}

// HandleDashboardPartial re-renders the result area for htmx form changes. A
// rejected selection, or a dataset with nothing to select, is shown in place
// of the results, since htmx does not swap error responses.
func HandleDashboardPartial(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}

	sel, err := parseSelection(c, ds)
	if err != nil {
		var e *fiber.Error
		if errors.As(err, &e) && (e.Code == fiber.StatusBadRequest || e.Code == fiber.StatusNotFound) {
			return render(c, ui.DashboardError(e.Message))
		}
		return err
	}

	return render(c, ui.Dashboard(dashboardData(c, ds, sel)))
}
