package dataset

import (
	"database/sql"
	"time"
)

// Column names recognised in a source header (matched case-insensitively).
const (
	ColModel        = "model"
	ColPrice        = "price"
	ColOdometer     = "odometer"
	ColModelYear    = "model_year"
	ColCondition    = "condition"
	ColType         = "type"
	ColFuel         = "fuel"
	ColTransmission = "transmission"
)

// RequiredColumns must be present in every source.
var RequiredColumns = []string{ColModel, ColPrice, ColOdometer}

// OptionalColumns enable extra features when present.
var OptionalColumns = []string{ColModelYear, ColCondition, ColType, ColFuel, ColTransmission}

// Listing is one vehicle listing. Brand is derived from Model at load time.
type Listing struct {
	// ID is the listing's position in its dataset.
	ID int

	Model        sql.NullString
	Price        sql.NullFloat64
	Odometer     sql.NullFloat64
	ModelYear    sql.NullString
	Condition    sql.NullString
	Type         sql.NullString
	Fuel         sql.NullString
	Transmission sql.NullString

	Brand sql.NullString
}

// Field returns the textual value of a named column and whether it is non-null.
func (l Listing) Field(column string) (string, bool) {
	switch column {
	case ColModel:
		return l.Model.String, l.Model.Valid
	case ColPrice:
		return formatFloat(l.Price), l.Price.Valid
	case ColOdometer:
		return formatFloat(l.Odometer), l.Odometer.Valid
	case ColModelYear:
		return l.ModelYear.String, l.ModelYear.Valid
	case ColCondition:
		return l.Condition.String, l.Condition.Valid
	case ColType:
		return l.Type.String, l.Type.Valid
	case ColFuel:
		return l.Fuel.String, l.Fuel.Valid
	case ColTransmission:
		return l.Transmission.String, l.Transmission.Valid
	case "brand":
		return l.Brand.String, l.Brand.Valid
	}
	return "", false
}

// Dataset is the immutable, in-memory collection of listings read from one
// source. Nothing mutates it after Load returns.
type Dataset struct {
	Source   string
	LoadID   string
	LoadedAt time.Time

	// Columns lists the recognised columns present in the source, in header order.
	Columns  []string
	Listings []Listing
	Warnings []MissingColumnWarning

	// SkippedCells counts numeric cells that could not be parsed and were read as null.
	SkippedCells int
}

// Len returns the number of listings.
func (d *Dataset) Len() int {
	return len(d.Listings)
}

// HasColumn reports whether the source provided the named column.
func (d *Dataset) HasColumn(column string) bool {
	for _, c := range d.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// DisplayColumns is the table layout of the dataset viewer: source columns
// followed by the derived brand.
func (d *Dataset) DisplayColumns() []string {
	cols := make([]string, 0, len(d.Columns)+1)
	cols = append(cols, d.Columns...)
	return append(cols, "brand")
}
