package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		expected Stat
	}{
		{name: "empty", vals: nil, expected: Stat{}},
		{name: "single", vals: []float64{30000}, expected: Stat{Value: 30000, Defined: true}},
		{name: "even count averages middle pair", vals: []float64{20000, 15000}, expected: Stat{Value: 17500, Defined: true}},
		{name: "odd count unsorted", vals: []float64{9, 1, 5}, expected: Stat{Value: 5, Defined: true}},
		{name: "even count unsorted", vals: []float64{4, 1, 3, 2}, expected: Stat{Value: 2.5, Defined: true}},
		{name: "duplicates", vals: []float64{7, 7, 7, 1}, expected: Stat{Value: 7, Defined: true}},
		{name: "negative and zero", vals: []float64{-2, 0, 2}, expected: Stat{Value: 0, Defined: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Median(tt.vals))
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	Median(vals)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestStatString(t *testing.T) {
	assert.Equal(t, "—", Stat{}.String())
	assert.Equal(t, "17500", Stat{Value: 17500, Defined: true}.String())
	assert.Equal(t, "2.5", Stat{Value: 2.5, Defined: true}.String())
}

func TestSummarize(t *testing.T) {
	views := PrepareViews(Filter(mixedDataset(), Selection{Brand: "ford"}))
	s := Summarize(views)

	assert.Equal(t, 5, s.ListingCount)
	// prices 31000, 22000, 7000, 26000
	assert.Equal(t, Stat{Value: 24000, Defined: true}, s.MedianPrice)
	// odometers of priced rows with odometer: 52000, 110000, 12000
	assert.Equal(t, Stat{Value: 52000, Defined: true}, s.MedianOdometer)
}

func BenchmarkMedian(b *testing.B) {
	vals := make([]float64, 10000)
	for i := range vals {
		vals[i] = float64((i * 7919) % 10007)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Median(vals)
	}
}
