package analytics

import "github.com/parts-pile/car-sales/dataset"

// HoverColumns are shown alongside each scatter point when the source has them.
var HoverColumns = []string{
	dataset.ColModelYear,
	dataset.ColCondition,
	dataset.ColType,
	dataset.ColFuel,
	dataset.ColTransmission,
}

// Point is one odometer/price pair of the scatter plot.
type Point struct {
	Odometer float64           `json:"odometer"`
	Price    float64           `json:"price"`
	Hover    map[string]string `json:"hover,omitempty"`
}

// AvailableHoverColumns returns the hover columns present in ds.
func AvailableHoverColumns(ds *dataset.Dataset) []string {
	var cols []string
	for _, c := range HoverColumns {
		if ds.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// ScatterPoints converts a PricedOdometer view into plot points carrying the
// non-null hover fields available in ds.
func ScatterPoints(ds *dataset.Dataset, view []dataset.Listing) []Point {
	cols := AvailableHoverColumns(ds)
	points := make([]Point, len(view))
	for i, l := range view {
		p := Point{Odometer: l.Odometer.Float64, Price: l.Price.Float64}
		for _, c := range cols {
			if v, ok := l.Field(c); ok {
				if p.Hover == nil {
					p.Hover = make(map[string]string, len(cols))
				}
				p.Hover[c] = v
			}
		}
		points[i] = p
	}
	return points
}
