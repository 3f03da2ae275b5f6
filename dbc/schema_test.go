package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema("dance-moves", DefaultLocaleCount,
		U32("id"), StrRef("internalName"), LocStrRef("name"), U32("lockID"))
	require.NoError(t, err)

	assert.Equal(t, "dance-moves", s.Name())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4+4+17*4+4, s.RecordSize())
	assert.Equal(t, 20, s.CellCount())

	i, ok := s.Index("name")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = s.Index("missing")
	assert.False(t, ok)
}

func TestNewSchemaRejects(t *testing.T) {
	tests := []struct {
		name    string
		locales int
		fields  []Field
	}{
		{name: "no fields", locales: 1},
		{name: "empty name", locales: 1, fields: []Field{U32("")}},
		{name: "duplicate", locales: 1, fields: []Field{U32("id"), I32("id")}},
		{name: "unknown kind", locales: 1, fields: []Field{{Name: "x", Kind: 99}}},
		{name: "zero kind", locales: 1, fields: []Field{{Name: "x"}}},
		{name: "localized without locales", locales: 0, fields: []Field{LocStrRef("name")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.name, tt.locales, tt.fields...)
			require.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestNewSchemaLocalesOnlyMatterForLocalizedFields(t *testing.T) {
	s, err := NewSchema("plain", 0, U32("id"), F32("x"))
	require.NoError(t, err)
	assert.Equal(t, 8, s.RecordSize())
}

func TestSchemaFieldsIsACopy(t *testing.T) {
	s := MustSchema("copy", 1, U32("id"))
	fields := s.Fields()
	fields[0].Name = "changed"
	assert.Equal(t, "id", s.Field(0).Name)
}

func TestMustSchemaPanics(t *testing.T) {
	assert.Panics(t, func() { MustSchema("bad", 1) })
}

func TestKindNames(t *testing.T) {
	for k := KindUint32; k <= KindLocalizedString; k++ {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("uint64")
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
