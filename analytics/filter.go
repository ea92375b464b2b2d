package analytics

import "github.com/parts-pile/car-sales/dataset"

// Filter returns the listings matching sel in dataset order. The type
// restriction applies only when sel names a type other than AllTypes and the
// dataset has a type column. No match yields an empty, non-nil slice.
func Filter(ds *dataset.Dataset, sel Selection) []dataset.Listing {
	sel = sel.Normalize()
	byType := sel.VehicleType != AllTypes && ds.HasColumn(dataset.ColType)

	out := make([]dataset.Listing, 0)
	for _, l := range ds.Listings {
		if !l.Brand.Valid || l.Brand.String != sel.Brand {
			continue
		}
		if byType && (!l.Type.Valid || l.Type.String != sel.VehicleType) {
			continue
		}
		out = append(out, l)
	}
	return out
}
