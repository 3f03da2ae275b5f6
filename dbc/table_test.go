package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dbckit/internal/testutil"
)

func TestTableByID(t *testing.T) {
	s := MustSchema("cfg-configs", 1, U32("id"), U32("realmType"), U32("pvp"), U32("roleplay"))
	data := testutil.NewTable(16).
		Row(1, 0, 0, 0).
		Row(5, 1, 1, 0).
		Row(5, 6, 0, 1).
		Row(8, 4, 0, 1).
		Bytes()

	tbl, err := DecodeTable(s, data)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, uint32(4), tbl.Header.FieldCount)

	r, ok := tbl.ByID(5)
	require.True(t, ok)
	assert.Equal(t, uint32(1), r.Uint32("realmType"), "first duplicate wins")

	r, ok = tbl.ByID(8)
	require.True(t, ok)
	assert.Equal(t, uint32(1), r.Uint32("roleplay"))

	_, ok = tbl.ByID(2)
	assert.False(t, ok)
}

func TestTableByIDWithoutIDField(t *testing.T) {
	s := MustSchema("noid", 1, I32("id"))
	tbl, err := DecodeTable(s, testutil.NewTable(4).Row(1).Bytes())
	require.NoError(t, err)

	_, ok := tbl.ByID(1)
	assert.False(t, ok, "id must be uint32")
}
