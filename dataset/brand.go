package dataset

import (
	"database/sql"
	"strings"
)

// DeriveBrand returns the lowercased first whitespace-delimited token of the
// trimmed model. A null or blank model has no brand.
func DeriveBrand(model sql.NullString) sql.NullString {
	if !model.Valid {
		return sql.NullString{}
	}
	fields := strings.Fields(model.String)
	if len(fields) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.ToLower(fields[0]), Valid: true}
}

// DeriveBrands sets Brand on every listing from its Model.
func DeriveBrands(listings []Listing) {
	for i := range listings {
		listings[i].Brand = DeriveBrand(listings[i].Model)
	}
}
