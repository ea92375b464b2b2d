package analytics

import (
	"database/sql"

	"github.com/parts-pile/car-sales/dataset"
)

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func num(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

var null = sql.NullFloat64{}

// newDataset numbers the listings, derives brands and declares the columns.
func newDataset(columns []string, listings ...dataset.Listing) *dataset.Dataset {
	for i := range listings {
		listings[i].ID = i
	}
	dataset.DeriveBrands(listings)
	return &dataset.Dataset{Source: "test.csv", LoadID: "test", Columns: columns, Listings: listings}
}

var exampleColumns = []string{dataset.ColModel, dataset.ColPrice, dataset.ColOdometer, dataset.ColType}

// exampleDataset is the three-row toyota/honda dataset.
func exampleDataset() *dataset.Dataset {
	return newDataset(exampleColumns,
		dataset.Listing{Model: str("Toyota Camry"), Price: num(20000), Odometer: num(30000), Type: str("sedan")},
		dataset.Listing{Model: str("toyota corolla"), Price: num(15000), Odometer: null, Type: str("sedan")},
		dataset.Listing{Model: str("Honda Civic"), Price: num(18000), Odometer: num(40000), Type: str("sedan")},
	)
}

// mixedDataset has nulls in every nullable column and several types.
func mixedDataset() *dataset.Dataset {
	return newDataset(exampleColumns,
		dataset.Listing{Model: str("Ford F-150"), Price: num(31000), Odometer: num(52000), Type: str("truck")},
		dataset.Listing{Model: str("ford escape"), Price: null, Odometer: num(80000), Type: str("SUV")},
		dataset.Listing{Model: str("Ford Explorer"), Price: num(22000), Odometer: null, Type: str("SUV")},
		dataset.Listing{Model: sql.NullString{}, Price: num(9000), Odometer: num(150000), Type: str("sedan")},
		dataset.Listing{Model: str("Ford Focus"), Price: num(7000), Odometer: num(110000)},
		dataset.Listing{Model: str("chevrolet silverado"), Price: num(35000), Odometer: num(40000), Type: str("truck")},
		dataset.Listing{Model: str("FORD Mustang"), Price: num(26000), Odometer: num(12000), Type: str("coupe")},
		dataset.Listing{Model: str("  "), Price: num(1000), Odometer: num(1000), Type: str("truck")},
	)
}

func ids(listings []dataset.Listing) []int {
	out := make([]int, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
