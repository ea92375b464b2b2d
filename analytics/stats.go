package analytics

import (
	"sort"
	"strconv"
)

// Undefined is how an undefined statistic is displayed.
const Undefined = "—"

// Stat is a statistic that may be undefined, e.g. the median of no values.
type Stat struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

func (s Stat) String() string {
	if !s.Defined {
		return Undefined
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Summary holds the dashboard's headline numbers.
type Summary struct {
	ListingCount   int  `json:"listing_count"`
	MedianPrice    Stat `json:"median_price"`
	MedianOdometer Stat `json:"median_odometer"`
}

// Summarize counts Filtered, takes the median price over Priced and the
// median odometer over PricedOdometer.
func Summarize(v Views) Summary {
	return Summary{
		ListingCount:   len(v.Filtered),
		MedianPrice:    Median(Prices(v.Priced)),
		MedianOdometer: Median(Odometers(v.PricedOdometer)),
	}
}

// Median returns the middle value of vals, the mean of the two middle values
// for an even count, and an undefined Stat for no values. vals is not modified.
func Median(vals []float64) Stat {
	n := len(vals)
	if n == 0 {
		return Stat{}
	}
	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return Stat{Value: sorted[n/2], Defined: true}
	}
	return Stat{Value: (sorted[n/2-1] + sorted[n/2]) / 2, Defined: true}
}
