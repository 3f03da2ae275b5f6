// Package sqlexport copies decoded tables into SQLite using the pure-Go
// modernc.org/sqlite driver.
package sqlexport

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/joshuapare/dbckit/dbc"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens a SQLite database at dsn (a path, or ":memory:").
func Open(dsn string) (*sql.DB, error) {
	return sql.Open(DriverName, dsn)
}

// Column is one SQL column derived from a schema field.
type Column struct {
	Name string
	Type string // INTEGER, REAL or TEXT
}

// Columns flattens s into SQL columns. Localized fields expand to one TEXT
// column per locale (name_0, name_1, ...) plus an INTEGER name_mask.
func Columns(s *dbc.Schema) []Column {
	var cols []Column
	for _, f := range s.Fields() {
		switch f.Kind {
		case dbc.KindUint32, dbc.KindInt32:
			cols = append(cols, Column{Name: f.Name, Type: "INTEGER"})
		case dbc.KindFloat32:
			cols = append(cols, Column{Name: f.Name, Type: "REAL"})
		case dbc.KindString:
			cols = append(cols, Column{Name: f.Name, Type: "TEXT"})
		case dbc.KindLocalizedString:
			for i := 0; i < s.Locales(); i++ {
				cols = append(cols, Column{Name: fmt.Sprintf("%s_%d", f.Name, i), Type: "TEXT"})
			}
			cols = append(cols, Column{Name: f.Name + "_mask", Type: "INTEGER"})
		}
	}
	return cols
}

// CreateTableSQL returns the DDL for a table holding s's records.
func CreateTableSQL(table string, s *dbc.Schema) string {
	cols := Columns(s)
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c.Name) + " " + c.Type
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(table), strings.Join(defs, ", "))
}

// Export writes every record of t into the SQL table named table, creating
// it if needed, inside one transaction. It returns the number of rows written.
func Export(ctx context.Context, db *sql.DB, table string, t *dbc.Table) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlexport: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, CreateTableSQL(table, t.Schema)); err != nil {
		return 0, fmt.Errorf("sqlexport: create %s: %w", table, err)
	}

	cols := Columns(t.Schema)
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c.Name)
		marks[i] = "?"
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(table), strings.Join(names, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return 0, fmt.Errorf("sqlexport: prepare: %w", err)
	}
	defer stmt.Close()

	args := make([]any, 0, len(cols))
	for i, r := range t.Records {
		args = appendArgs(args[:0], r)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("sqlexport: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlexport: commit: %w", err)
	}
	return len(t.Records), nil
}

func appendArgs(args []any, r dbc.Record) []any {
	for i := 0; i < r.Len(); i++ {
		_, v := r.At(i)
		switch v.Kind() {
		case dbc.KindUint32:
			args = append(args, int64(v.Uint32()))
		case dbc.KindInt32:
			args = append(args, int64(v.Int32()))
		case dbc.KindFloat32:
			args = append(args, float64(v.Float32()))
		case dbc.KindString:
			args = append(args, v.Text())
		case dbc.KindLocalizedString:
			loc := v.Localized()
			for _, s := range loc.Strings {
				args = append(args, s)
			}
			args = append(args, int64(loc.Mask))
		}
	}
	return args
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
