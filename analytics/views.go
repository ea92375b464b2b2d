package analytics

import "github.com/parts-pile/car-sales/dataset"

// Views are the three derived subsets consumed by the dashboard: the table
// shows Filtered, the histogram Priced, the scatter PricedOdometer.
type Views struct {
	Filtered       []dataset.Listing
	Priced         []dataset.Listing
	PricedOdometer []dataset.Listing
}

// PrepareViews derives Priced (non-null price) from filtered and
// PricedOdometer (non-null odometer) from Priced.
func PrepareViews(filtered []dataset.Listing) Views {
	priced := keep(filtered, func(l dataset.Listing) bool { return l.Price.Valid })
	return Views{
		Filtered:       filtered,
		Priced:         priced,
		PricedOdometer: keep(priced, func(l dataset.Listing) bool { return l.Odometer.Valid }),
	}
}

func keep(listings []dataset.Listing, pred func(dataset.Listing) bool) []dataset.Listing {
	out := make([]dataset.Listing, 0, len(listings))
	for _, l := range listings {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

// Prices returns the prices of a view whose rows all have a price.
func Prices(view []dataset.Listing) []float64 {
	vals := make([]float64, len(view))
	for i, l := range view {
		vals[i] = l.Price.Float64
	}
	return vals
}

// Odometers returns the odometer readings of a view whose rows all have one.
func Odometers(view []dataset.Listing) []float64 {
	vals := make([]float64, len(view))
	for i, l := range view {
		vals[i] = l.Odometer.Float64
	}
	return vals
}
