package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/car-sales/analytics"
)

func HandleBrands(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}
	sel, ok := analytics.InitialSelection(ds)
	if !ok {
		return errNoBrands
	}
	return c.JSON(fiber.Map{
		"brands":  analytics.Brands(ds),
		"default": sel.Brand,
	})
}

func HandleTypes(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"types": analytics.TypeOptions(ds)})
}

func HandleSummary(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}
	sel, err := parseSelection(c, ds)
	if err != nil {
		return err
	}

	res := analytics.Run(ds, sel)
	notices := make([]*analytics.EmptyResultNotice, 0, 2)
	for _, n := range []*analytics.EmptyResultNotice{res.HistogramNotice, res.ScatterNotice} {
		if n != nil {
			notices = append(notices, n)
		}
	}

	return c.JSON(fiber.Map{
		"selection": res.Selection,
		"summary":   res.Summary,
		"notices":   notices,
	})
}

func HandleScatter(c *fiber.Ctx) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}
	sel, err := parseSelection(c, ds)
	if err != nil {
		return err
	}

	res := analytics.Run(ds, sel)
	return c.JSON(fiber.Map{
		"selection":     res.Selection,
		"hover_columns": analytics.AvailableHoverColumns(ds),
		"points":        analytics.ScatterPoints(ds, res.Views.PricedOdometer),
	})
}
