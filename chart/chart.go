// Package chart renders the dashboard's price histogram and price/odometer
// scatter plot as SVG.
package chart

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/config"
)

// labelEvery controls how many histogram bars share one axis label.
const labelEvery = 5

var (
	barColor = drawing.ColorFromHex("3b82f6")
	dotColor = drawing.ColorFromHex("2563eb")
)

// BrandTitle formats a derived brand for display, e.g. "land" -> "Land".
func BrandTitle(brand string) string {
	return cases.Title(language.English).String(brand)
}

// HistogramTitle is the heading of the price distribution chart.
func HistogramTitle(brand string) string {
	return "Distribution of Vehicle Prices — " + BrandTitle(brand)
}

// ScatterTitle is the heading of the price/odometer chart.
func ScatterTitle(brand string) string {
	return "Price vs Odometer — " + BrandTitle(brand)
}

// RenderHistogram writes h as an SVG bar chart. The title is escaped, as the
// SVG renderer writes text verbatim.
func RenderHistogram(w io.Writer, title string, h analytics.Histogram) error {
	if len(h.Bins) == 0 {
		return fmt.Errorf("histogram has no bins")
	}

	bars := make([]gochart.Value, len(h.Bins))
	for i, b := range h.Bins {
		label := ""
		if i%labelEvery == 0 || len(h.Bins) < labelEvery {
			label = formatNumber(b.Low)
		}
		bars[i] = gochart.Value{
			Value: float64(b.Count),
			Label: label,
			Style: gochart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1},
		}
	}

	maxCount := math.Max(1, float64(h.MaxCount()))
	bc := gochart.BarChart{
		Title:      html.EscapeString(title),
		Width:      config.ChartWidth,
		Height:     config.ChartHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarWidth:   barWidth(len(h.Bins)),
		BarSpacing: 2,
		YAxis: gochart.YAxis{
			Name:           "count",
			Range:          &gochart.ContinuousRange{Min: 0, Max: maxCount},
			ValueFormatter: countFormatter,
		},
		Bars: bars,
	}
	if err := bc.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render histogram: %w", err)
	}
	return nil
}

// RenderScatter writes points as an SVG scatter plot of odometer (x) against
// price (y). Hover fields are not drawn; they are served with the points by
// /api/scatter.
func RenderScatter(w io.Writer, title string, points []analytics.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("scatter plot has no points")
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Odometer
		ys[i] = p.Price
	}

	ch := gochart.Chart{
		Title:      html.EscapeString(title),
		Width:      config.ChartWidth,
		Height:     config.ChartHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           "odometer",
			Range:          paddedRange(xs),
			ValueFormatter: numberFormatter,
		},
		YAxis: gochart.YAxis{
			Name:           "price",
			Range:          paddedRange(ys),
			ValueFormatter: priceFormatter,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "listings",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    3,
					DotColor:    dotColor.WithAlpha(160),
				},
			},
		},
	}
	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render scatter plot: %w", err)
	}
	return nil
}

// paddedRange spans vals with a 5% margin. A zero-width span is widened so
// single points and equal values still render.
func paddedRange(vals []float64) *gochart.ContinuousRange {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(1, math.Abs(lo)*0.05)
	}
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// barWidth fits n bars and their spacing into the plot area.
func barWidth(n int) int {
	w := (config.ChartWidth-120)/n - 2
	if w < 1 {
		return 1
	}
	return w
}

func formatNumber(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func numberFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return ""
}

func priceFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return "$" + formatNumber(f)
	}
	return ""
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return humanize.Comma(int64(f))
	}
	return ""
}
