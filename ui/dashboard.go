package ui

import (
	"fmt"
	"math"
	"net/url"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/config"
	"github.com/parts-pile/car-sales/dataset"
)

// Query parameters of the dashboard form.
const (
	ParamBrand     = "brand"
	ParamType      = "type"
	ParamDataset   = "dataset"
	ParamHistogram = "histogram"
	ParamScatter   = "scatter"

	// ParamSubmitted marks a request coming from the form, where an absent
	// toggle means unchecked rather than default.
	ParamSubmitted = "submitted"
)

// Toggles are the dashboard's display switches.
type Toggles struct {
	ShowDataset   bool
	ShowHistogram bool
	ShowScatter   bool
}

// DefaultToggles hides the dataset and shows both charts.
var DefaultToggles = Toggles{ShowDataset: false, ShowHistogram: true, ShowScatter: true}

// DashboardData is everything needed to render the dashboard for one selection.
type DashboardData struct {
	Dataset *dataset.Dataset
	Brands  []string
	Types   []string
	Result  analytics.Result
	Toggles Toggles
}

func DashboardPage(data DashboardData) g.Node {
	return Page(
		AppTitle,
		"/",
		[]g.Node{
			Div(
				Class("flex flex-col md:flex-row gap-8"),
				sidebar(data),
				Dashboard(data),
			),
		},
	)
}

func sidebar(data DashboardData) g.Node {
	sel := data.Result.Selection
	return Aside(
		Class("md:w-64 shrink-0"),
		Form(
			ID("filters"),
			Class("space-y-6 bg-gray-50 border border-gray-200 rounded-lg p-4"),
			hx.Get("/dashboard"),
			hx.Trigger("change"),
			hx.Target("#dashboard"),
			hx.Swap("outerHTML"),
			hx.Indicator("#indicator"),
			H2(Class("text-xl font-semibold"), g.Text("Filters")),
			Input(Type("hidden"), Name(ParamSubmitted), Value("1")),
			SelectFormGroup("Brand", ParamBrand, data.Brands, sel.Brand),
			SelectFormGroup("Vehicle Type", ParamType, data.Types, sel.VehicleType),
			Div(
				Class("space-y-2"),
				Checkbox(ParamDataset, "Show Dataset", data.Toggles.ShowDataset),
				Checkbox(ParamHistogram, "Create Histogram", data.Toggles.ShowHistogram),
				Checkbox(ParamScatter, "Create Scatter", data.Toggles.ShowScatter),
			),
		),
	)
}

// Dashboard is the htmx-swappable result area: KPIs, dataset viewer and charts.
func Dashboard(data DashboardData) g.Node {
	res := data.Result
	return Div(
		ID("dashboard"),
		Class("flex-1 space-y-8"),
		pageHeader(AppTitle),
		datasetWarnings(data.Dataset),
		kpiRow(res.Summary),
		Section(
			sectionHeader("Dataset Viewer", ""),
			g.If(data.Toggles.ShowDataset, datasetTable(data.Dataset, analytics.Preview(res.Views.Filtered, config.PreviewRows))),
		),
		Section(
			sectionHeader("Histogram", ""),
			g.If(data.Toggles.ShowHistogram, chartOrNotice(analytics.ViewHistogram, data, res.HistogramNotice)),
		),
		Section(
			sectionHeader("Scatter Plot", ""),
			g.If(data.Toggles.ShowScatter, chartOrNotice(analytics.ViewScatter, data, res.ScatterNotice)),
		),
	)
}

func datasetWarnings(ds *dataset.Dataset) g.Node {
	var nodes []g.Node
	for _, w := range ds.Warnings {
		nodes = append(nodes, WarningNotice(w.Error()))
	}
	if ds.SkippedCells > 0 {
		nodes = append(nodes, WarningNotice(fmt.Sprintf("%d numeric values could not be read and are treated as missing.", ds.SkippedCells)))
	}
	if len(nodes) == 0 {
		return nil
	}
	return Div(Class("space-y-2"), g.Group(nodes))
}

func kpiRow(s analytics.Summary) g.Node {
	return Div(
		Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
		kpiCard("Listings", FormatCount(s.ListingCount)),
		kpiCard("Median price", FormatPrice(s.MedianPrice)),
		kpiCard("Median odometer", FormatOdometer(s.MedianOdometer)),
	)
}

func kpiCard(label, value string) g.Node {
	return Div(
		Class("bg-white p-4 rounded border"),
		Div(Class("text-sm text-gray-600"), g.Text(label)),
		Div(Class("text-3xl font-semibold"), g.Text(value)),
	)
}

func datasetTable(ds *dataset.Dataset, rows []dataset.Listing) g.Node {
	cols := ds.DisplayColumns()

	headers := make([]g.Node, len(cols))
	for i, c := range cols {
		headers[i] = Th(Class("px-3 py-2 text-left font-medium text-gray-700"), g.Text(c))
	}

	body := make([]g.Node, len(rows))
	for i, l := range rows {
		cells := make([]g.Node, len(cols))
		for j, c := range cols {
			v, _ := l.Field(c)
			cells[j] = Td(Class("px-3 py-1 whitespace-nowrap"), g.Text(v))
		}
		body[i] = Tr(Class("border-t"), g.Group(cells))
	}

	return Div(
		Class("overflow-x-auto border rounded"),
		Table(
			Class("min-w-full text-sm"),
			THead(Class("bg-gray-50"), Tr(g.Group(headers))),
			TBody(g.Group(body)),
		),
	)
}

func chartOrNotice(view string, data DashboardData, notice *analytics.EmptyResultNotice) g.Node {
	if notice != nil {
		return InfoNotice(notice.Message)
	}
	img := Img(
		Src(ChartURL(view, data.Result.Selection, data.Dataset.LoadID)),
		Alt(view),
		Class("w-full border rounded"),
		g.Attr("loading", "lazy"),
	)
	if view != analytics.ViewScatter {
		return img
	}
	return Div(
		img,
		A(
			Href(ScatterDataURL(data.Result.Selection)),
			Class("text-sm text-blue-600 hover:underline"),
			g.Text("Point details (JSON)"),
		),
	)
}

// ScatterDataURL addresses the scatter points of sel with their hover fields.
func ScatterDataURL(sel analytics.Selection) string {
	q := url.Values{}
	q.Set(ParamBrand, sel.Brand)
	q.Set(ParamType, sel.VehicleType)
	return "/api/scatter?" + q.Encode()
}

// ChartURL addresses the SVG of view for sel. The load id busts browser
// caches when the dataset is reloaded.
func ChartURL(view string, sel analytics.Selection, loadID string) string {
	q := url.Values{}
	q.Set(ParamBrand, sel.Brand)
	q.Set(ParamType, sel.VehicleType)
	q.Set("v", loadID)
	return "/chart/" + view + ".svg?" + q.Encode()
}

// FormatCount formats a listing count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatPrice formats a median price as whole dollars, e.g. "$17,500".
func FormatPrice(s analytics.Stat) string {
	if !s.Defined {
		return analytics.Undefined
	}
	return "$" + humanize.Comma(int64(math.Round(s.Value)))
}

// FormatOdometer formats a median odometer reading, e.g. "30,000".
func FormatOdometer(s analytics.Stat) string {
	if !s.Defined {
		return analytics.Undefined
	}
	return humanize.Comma(int64(math.Round(s.Value)))
}

// NoBrandsPage replaces the dashboard when there is nothing to select.
func NoBrandsPage(ds *dataset.Dataset) g.Node {
	return Page(
		AppTitle,
		"/",
		[]g.Node{
			pageHeader(AppTitle),
			datasetWarnings(ds),
			InfoNotice(fmt.Sprintf("No brands found in %s (%s listings).", ds.Source, FormatCount(ds.Len()))),
		},
	)
}

// DashboardError takes the place of the result area when a selection is rejected.
func DashboardError(message string) g.Node {
	return Div(
		ID("dashboard"),
		Class("flex-1 space-y-8"),
		pageHeader(AppTitle),
		ValidationError(message),
	)
}
