// Command import_vehicles copies a listings file into a sqlite table that the
// dashboard can read as sqlite://<db>?table=<table>.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/db"
)

func main() {
	if err := newImportCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newImportCmd() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:           "import_vehicles <source> <database>",
		Short:         "Import car listings into a sqlite database",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			conn, err := db.Open(args[1])
			if err != nil {
				return err
			}
			defer conn.Close()

			n, err := db.ReplaceTable(conn, table, ds.Columns, tableRows(ds))
			if err != nil {
				return err
			}
			log.Printf("[import] wrote %d rows to %s table %s", n, args[1], table)
			fmt.Fprintf(cmd.OutOrStdout(), "Import complete. Source: %s%s?table=%s\n", db.Scheme, args[1], table)
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", db.DefaultTable, "destination table")
	return cmd
}

// tableRows lays out the listings in column order. Numbers stay numeric and
// missing values become NULL.
func tableRows(ds *dataset.Dataset) [][]interface{} {
	rows := make([][]interface{}, len(ds.Listings))
	for i, l := range ds.Listings {
		row := make([]interface{}, len(ds.Columns))
		for j, col := range ds.Columns {
			switch col {
			case dataset.ColPrice:
				if l.Price.Valid {
					row[j] = l.Price.Float64
				}
			case dataset.ColOdometer:
				if l.Odometer.Valid {
					row[j] = l.Odometer.Float64
				}
			default:
				if v, ok := l.Field(col); ok {
					row[j] = v
				}
			}
		}
		rows[i] = row
	}
	return rows
}
