package dataset

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/parts-pile/car-sales/db"
)

// nullValues are the cell contents read as missing.
var nullValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None"}

// Load reads the source into a Dataset and derives brands. The source is a
// .csv or .tsv file, an .xlsx workbook, or a sqlite://path?table=name
// identifier.
func Load(source string) (*Dataset, error) {
	start := time.Now()

	records, err := readRecords(source)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Source: source, Err: err}
	}

	ds, err := fromRecords(source, records)
	if err != nil {
		return nil, err
	}

	for _, w := range ds.Warnings {
		log.Printf("[dataset] %s: %v", source, w)
	}
	if ds.SkippedCells > 0 {
		log.Printf("[dataset] %s: %d numeric cells could not be parsed and were read as missing", source, ds.SkippedCells)
	}
	log.Printf("[dataset] loaded %d rows from %s in %s", ds.Len(), source, time.Since(start).Round(time.Millisecond))
	return ds, nil
}

func readRecords(source string) ([][]string, error) {
	if db.IsSource(source) {
		return readSQLite(source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".csv":
		return readDelimited(source, ',')
	case ".tsv":
		return readDelimited(source, '\t')
	case ".xlsx":
		return readXLSX(source)
	}
	return nil, loadErrorf(source, "unsupported source type %q", filepath.Ext(source))
}

func readDelimited(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return parseDelimited(f, delim)
}

// parseDelimited reads header and records; every record must have as many
// fields as the header.
func parseDelimited(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// GetRows trims trailing empty cells; square the rows against the header.
	width := len(rows[0])
	for i, row := range rows {
		switch {
		case len(row) < width:
			rows[i] = append(row, make([]string, width-len(row))...)
		case len(row) > width:
			rows[i] = row[:width]
		}
	}
	return rows, nil
}

func readSQLite(source string) ([][]string, error) {
	src, err := db.ParseSource(source)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(src.Path); err != nil {
		return nil, fmt.Errorf("database file: %w", err)
	}

	conn, err := db.Open(src.Path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return readTable(conn, src.Table)
}

// readTable converts a table into header plus records, NULL cells as "".
func readTable(conn *sql.DB, table string) ([][]string, error) {
	columns, rows, err := db.SelectAll(conn, table)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, columns)
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			if cell.Valid {
				record[i] = cell.String
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// fromRecords builds a Dataset from a header row followed by data rows.
func fromRecords(source string, records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, loadErrorf(source, "no header row")
	}

	position := make(map[string]int)
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := position[name]; !dup {
			position[name] = i
		}
	}

	for _, col := range RequiredColumns {
		if _, ok := position[col]; !ok {
			return nil, loadErrorf(source, "missing required column %q", col)
		}
	}

	ds := &Dataset{
		Source:   source,
		LoadID:   uuid.New().String(),
		LoadedAt: time.Now(),
	}

	// Project onto the recognised columns, keeping header order.
	var cols []string
	for _, col := range append(append([]string{}, RequiredColumns...), OptionalColumns...) {
		if _, ok := position[col]; ok {
			cols = append(cols, col)
		} else {
			ds.Warnings = append(ds.Warnings, MissingColumnWarning{Column: col})
		}
	}
	sort.SliceStable(cols, func(a, b int) bool {
		return position[cols[a]] < position[cols[b]]
	})
	ds.Columns = cols

	if len(records) == 1 {
		return ds, nil
	}

	projected := make([][]string, len(records))
	projected[0] = cols
	for i, rec := range records[1:] {
		row := make([]string, len(cols))
		for j, col := range cols {
			if p := position[col]; p < len(rec) {
				row[j] = strings.TrimSpace(rec[p])
			}
		}
		projected[i+1] = row
	}

	df := dataframe.LoadRecords(projected,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nullValues),
	)
	if df.Err != nil {
		return nil, &LoadError{Source: source, Err: df.Err}
	}

	ds.Listings = make([]Listing, df.Nrow())
	text := func(col string) func(int) sql.NullString {
		if !ds.HasColumn(col) {
			return func(int) sql.NullString { return sql.NullString{} }
		}
		s := df.Col(col)
		return func(i int) sql.NullString {
			e := s.Elem(i)
			if e.IsNA() {
				return sql.NullString{}
			}
			return sql.NullString{String: e.String(), Valid: true}
		}
	}
	number := func(col string) func(int) sql.NullFloat64 {
		get := text(col)
		return func(i int) sql.NullFloat64 {
			v := get(i)
			if !v.Valid {
				return sql.NullFloat64{}
			}
			f, err := strconv.ParseFloat(v.String, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				ds.SkippedCells++
				return sql.NullFloat64{}
			}
			return sql.NullFloat64{Float64: f, Valid: true}
		}
	}

	model, price, odometer := text(ColModel), number(ColPrice), number(ColOdometer)
	year, condition, vtype := text(ColModelYear), text(ColCondition), text(ColType)
	fuel, transmission := text(ColFuel), text(ColTransmission)

	for i := range ds.Listings {
		ds.Listings[i] = Listing{
			ID:           i,
			Model:        model(i),
			Price:        price(i),
			Odometer:     odometer(i),
			ModelYear:    year(i),
			Condition:    condition(i),
			Type:         vtype(i),
			Fuel:         fuel(i),
			Transmission: transmission(i),
		}
	}
	DeriveBrands(ds.Listings)

	return ds, nil
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
