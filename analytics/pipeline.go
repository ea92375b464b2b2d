package analytics

import (
	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/metrics"
)

// Chart views that can be empty for a selection.
const (
	ViewHistogram = "histogram"
	ViewScatter   = "scatter"
)

// EmptyResultNotice replaces a chart whose view has no rows.
type EmptyResultNotice struct {
	View    string `json:"view"`
	Message string `json:"message"`
}

var (
	noPriceNotice = &EmptyResultNotice{
		View:    ViewHistogram,
		Message: "No rows with price available for this selection, so the histogram can't be displayed.",
	}
	noOdometerNotice = &EmptyResultNotice{
		View:    ViewScatter,
		Message: "No rows with odometer available for this selection, so the scatter plot can't be displayed.",
	}
)

// Result is everything the dashboard renders for one selection.
type Result struct {
	Selection Selection
	Views     Views
	Summary   Summary

	// HistogramNotice and ScatterNotice are set when the chart's view is empty.
	HistogramNotice *EmptyResultNotice
	ScatterNotice   *EmptyResultNotice
}

// Run filters ds by sel, prepares the views and summarises them. It keeps no
// state between calls and never modifies ds.
func Run(ds *dataset.Dataset, sel Selection) Result {
	sel = sel.Normalize()
	views := PrepareViews(Filter(ds, sel))

	res := Result{
		Selection: sel,
		Views:     views,
		Summary:   Summarize(views),
	}

	var empty []string
	if len(views.Priced) == 0 {
		res.HistogramNotice = noPriceNotice
		empty = append(empty, ViewHistogram)
	}
	if len(views.PricedOdometer) == 0 {
		res.ScatterNotice = noOdometerNotice
		empty = append(empty, ViewScatter)
	}
	metrics.ObserveRun(empty...)

	return res
}

// Preview returns at most n listings from the start of view.
func Preview(view []dataset.Listing, n int) []dataset.Listing {
	if n < len(view) {
		return view[:n]
	}
	return view
}
