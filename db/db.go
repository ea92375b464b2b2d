package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Scheme prefixes a sqlite data source identifier.
const Scheme = "sqlite://"

// DefaultTable is read when a sqlite source names no table.
const DefaultTable = "vehicles"

// Source is a parsed sqlite data source identifier such as
// "sqlite://data/cars.db?table=listings".
type Source struct {
	Path  string
	Table string
}

// IsSource reports whether identifier names a sqlite source.
func IsSource(identifier string) bool {
	return strings.HasPrefix(identifier, Scheme)
}

// ParseSource splits a sqlite source identifier into its file path and table.
func ParseSource(identifier string) (Source, error) {
	if !IsSource(identifier) {
		return Source{}, fmt.Errorf("not a sqlite source: %q", identifier)
	}
	rest := strings.TrimPrefix(identifier, Scheme)
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return Source{}, fmt.Errorf("sqlite source %q has no database path", identifier)
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Source{}, fmt.Errorf("sqlite source %q: %w", identifier, err)
	}
	table := query.Get("table")
	if table == "" {
		table = DefaultTable
	}
	if !validTableName(table) {
		return Source{}, fmt.Errorf("sqlite source %q: invalid table name %q", identifier, table)
	}
	return Source{Path: path, Table: table}, nil
}

// Open opens and pings the sqlite database at path.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Printf("[db] opened %s", path)
	return conn, nil
}

// SelectAll returns the column names and every row of table, with NULL cells
// reported as invalid NullStrings.
func SelectAll(conn *sql.DB, table string) ([]string, [][]sql.NullString, error) {
	if !validTableName(table) {
		return nil, nil, fmt.Errorf("invalid table name %q", table)
	}

	rows, err := conn.Query(fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var records [][]sql.NullString
	for rows.Next() {
		record := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range record {
			dest[i] = &record[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", table, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return columns, records, nil
}

// ReplaceTable drops table, recreates it with the given untyped columns and
// inserts rows in one transaction. It returns the number of rows written.
func ReplaceTable(conn *sql.DB, table string, columns []string, rows [][]interface{}) (int, error) {
	if !validTableName(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}
	for _, c := range columns {
		if !validTableName(c) {
			return 0, fmt.Errorf("invalid column name %q", c)
		}
	}

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return 0, fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(columns, ", "))); err != nil {
		return 0, fmt.Errorf("create %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders))
	if err != nil {
		return 0, fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			return 0, fmt.Errorf("insert row %d into %s: %w", i+1, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(rows), nil
}

// validTableName allows identifiers made of letters, digits and underscores,
// since table names cannot be bound as query parameters.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
