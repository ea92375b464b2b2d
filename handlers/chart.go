package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/chart"
	"github.com/parts-pile/car-sales/config"
	"github.com/parts-pile/car-sales/dataset"
)

const mimeSVG = "image/svg+xml"

// chartETag identifies one rendering of view: the same dataset load and
// selection always produce the same chart.
func chartETag(ds *dataset.Dataset, view string, sel analytics.Selection) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(ds.LoadID+"|"+view+"|"+sel.Key()))
	return `"` + id.String() + `"`
}

func HandleHistogramSVG(c *fiber.Ctx) error {
	return serveChart(c, analytics.ViewHistogram, func(ds *dataset.Dataset, sel analytics.Selection, res analytics.Result, buf *bytes.Buffer) error {
		if res.HistogramNotice != nil {
			return fiber.NewError(fiber.StatusNotFound, res.HistogramNotice.Message)
		}
		hist := analytics.NewHistogram(analytics.Prices(res.Views.Priced), config.HistogramBins)
		return chart.RenderHistogram(buf, chart.HistogramTitle(sel.Brand), hist)
	})
}

func HandleScatterSVG(c *fiber.Ctx) error {
	return serveChart(c, analytics.ViewScatter, func(ds *dataset.Dataset, sel analytics.Selection, res analytics.Result, buf *bytes.Buffer) error {
		if res.ScatterNotice != nil {
			return fiber.NewError(fiber.StatusNotFound, res.ScatterNotice.Message)
		}
		points := analytics.ScatterPoints(ds, res.Views.PricedOdometer)
		return chart.RenderScatter(buf, chart.ScatterTitle(sel.Brand), points)
	})
}

type chartRenderer func(ds *dataset.Dataset, sel analytics.Selection, res analytics.Result, buf *bytes.Buffer) error

func serveChart(c *fiber.Ctx, view string, draw chartRenderer) error {
	ds, err := currentDataset()
	if err != nil {
		return err
	}
	sel, err := parseSelection(c, ds)
	if err != nil {
		return err
	}

	etag := chartETag(ds, view, sel)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	var buf bytes.Buffer
	if err := draw(ds, sel, analytics.Run(ds, sel), &buf); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, mimeSVG)
	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}
