package sqlexport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dbckit/dbc"
	"github.com/joshuapare/dbckit/internal/testutil"
)

func TestColumns(t *testing.T) {
	s := dbc.MustSchema("cols", 2, dbc.U32("id"), dbc.I32("d"), dbc.F32("f"), dbc.StrRef("s"), dbc.LocStrRef("name"))
	assert.Equal(t, []Column{
		{"id", "INTEGER"},
		{"d", "INTEGER"},
		{"f", "REAL"},
		{"s", "TEXT"},
		{"name_0", "TEXT"},
		{"name_1", "TEXT"},
		{"name_mask", "INTEGER"},
	}, Columns(s))

	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "t" ("id" INTEGER, "d" INTEGER, "f" REAL, "s" TEXT, "name_0" TEXT, "name_1" TEXT, "name_mask" INTEGER)`,
		CreateTableSQL("t", s))
}

func TestExport(t *testing.T) {
	s := dbc.MustSchema("dance", 2, dbc.U32("id"), dbc.I32("delta"), dbc.StrRef("internalName"), dbc.LocStrRef("name"))
	b := testutil.NewTable(s.RecordSize())
	b.Row(1, testutil.I32(-5), b.String("DANCE_A"), b.String("Dance A"), 0, 1)
	b.Row(2, 7, 0, 0, b.String("Tanz B"), 2)

	tbl, err := dbc.DecodeTable(s, b.Bytes())
	require.NoError(t, err)

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	n, err := Export(ctx, db, "dance_moves", tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "dance_moves"`).Scan(&count))
	assert.Equal(t, 2, count)

	var (
		delta    int64
		internal string
		name0    string
		mask     int64
	)
	row := db.QueryRowContext(ctx,
		`SELECT "delta", "internalName", "name_0", "name_mask" FROM "dance_moves" WHERE "id" = 1`)
	require.NoError(t, row.Scan(&delta, &internal, &name0, &mask))
	assert.Equal(t, int64(-5), delta)
	assert.Equal(t, "DANCE_A", internal)
	assert.Equal(t, "Dance A", name0)
	assert.Equal(t, int64(1), mask)

	var name1 string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT "name_1" FROM "dance_moves" WHERE "id" = 2`).Scan(&name1))
	assert.Equal(t, "Tanz B", name1)
}
