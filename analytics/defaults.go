package analytics

import (
	"sort"

	"github.com/parts-pile/car-sales/dataset"
)

// DefaultBrand returns the most frequent brand in ds. Ties go to the brand
// that appears first in dataset order. It reports false when ds has no
// listing with a brand.
func DefaultBrand(ds *dataset.Dataset) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, l := range ds.Listings {
		if !l.Brand.Valid {
			continue
		}
		if counts[l.Brand.String] == 0 {
			order = append(order, l.Brand.String)
		}
		counts[l.Brand.String]++
	}

	best, bestCount := "", 0
	for _, b := range order {
		if counts[b] > bestCount {
			best, bestCount = b, counts[b]
		}
	}
	return best, bestCount > 0
}

// Brands returns the sorted distinct brands of ds.
func Brands(ds *dataset.Dataset) []string {
	return distinct(ds, func(l dataset.Listing) (string, bool) {
		return l.Brand.String, l.Brand.Valid
	})
}

// TypeOptions returns AllTypes followed by the sorted distinct vehicle types,
// or only AllTypes when ds has no type column.
func TypeOptions(ds *dataset.Dataset) []string {
	options := []string{AllTypes}
	if !ds.HasColumn(dataset.ColType) {
		return options
	}
	return append(options, distinct(ds, func(l dataset.Listing) (string, bool) {
		return l.Type.String, l.Type.Valid
	})...)
}

// InitialSelection is the selection a fresh dashboard starts with: the
// default brand, or the first brand alphabetically, and all types. It
// reports false when ds has no brands to choose from.
func InitialSelection(ds *dataset.Dataset) (Selection, bool) {
	if brand, ok := DefaultBrand(ds); ok {
		return Selection{Brand: brand, VehicleType: AllTypes}, true
	}
	if brands := Brands(ds); len(brands) > 0 {
		return Selection{Brand: brands[0], VehicleType: AllTypes}, true
	}
	return Selection{VehicleType: AllTypes}, false
}

func distinct(ds *dataset.Dataset, value func(dataset.Listing) (string, bool)) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, l := range ds.Listings {
		v, ok := value(l)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
