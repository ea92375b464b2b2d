package analytics

// Bin is one histogram bucket covering [Low, High); the last bin also
// includes High.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram is a binned distribution of values.
type Histogram struct {
	Bins  []Bin `json:"bins"`
	Total int   `json:"total"`
}

// NewHistogram splits [min, max] of vals into n equal-width bins. All-equal
// values produce a single bin; no values produce no bins.
func NewHistogram(vals []float64, n int) Histogram {
	h := Histogram{Total: len(vals)}
	if len(vals) == 0 || n <= 0 {
		return h
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		h.Bins = []Bin{{Low: lo, High: hi, Count: len(vals)}}
		return h
	}

	width := (hi - lo) / float64(n)
	h.Bins = make([]Bin, n)
	for i := range h.Bins {
		h.Bins[i].Low = lo + float64(i)*width
		h.Bins[i].High = lo + float64(i+1)*width
	}
	h.Bins[n-1].High = hi

	for _, v := range vals {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		h.Bins[idx].Count++
	}
	return h
}

// MaxCount returns the largest bin count.
func (h Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}
