package dbc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dbckit/internal/testutil"
)

func decodeOne(t *testing.T, s *Schema, cells func(b *testutil.TableBuilder) []uint32) Record {
	t.Helper()
	b := testutil.NewTable(s.RecordSize())
	b.Row(cells(b)...)
	records, err := Decode(s, b.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestRecordJSONKeepsFieldOrder(t *testing.T) {
	s := MustSchema("json", 2, U32("id"), I32("delta"), F32("scale"), StrRef("label"), LocStrRef("name"))
	r := decodeOne(t, s, func(b *testutil.TableBuilder) []uint32 {
		return []uint32{5, testutil.I32(-1), testutil.F32(0.5), b.String("lbl"), b.String("en"), 0, 1}
	})

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":5,"delta":-1,"scale":0.5,"label":"lbl","name":{"strings":["en",""],"mask":1}}`,
		string(out))
}

func TestValueJSONNonFiniteFloat(t *testing.T) {
	v := float32Value(math.Float32bits(float32(math.Inf(1))))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"0x7f800000"`, string(out))
}

func TestRecordAccessors(t *testing.T) {
	s := MustSchema("acc", 1, U32("id"), StrRef("label"))
	r := decodeOne(t, s, func(b *testutil.TableBuilder) []uint32 {
		return []uint32{3, b.String("three")}
	})

	v, ok := r.Get("label")
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, `"three"`, v.String())

	_, ok = r.Get("nope")
	assert.False(t, ok)

	// Wrong-kind accessors return zero values.
	assert.Zero(t, r.Uint32("label"))
	assert.Zero(t, r.Text("id"))
	assert.Zero(t, r.Int32("id"))
	assert.Empty(t, r.Localized("id").Strings)

	assert.Equal(t, map[string]any{"id": uint32(3), "label": "three"}, r.Map())
	assert.Same(t, s, r.Schema())
}

func TestLocalizedStringHelpers(t *testing.T) {
	l := LocalizedString{Strings: []string{"", "deDE", "frFR"}, Mask: 0b110}

	s, i := l.First()
	assert.Equal(t, "deDE", s)
	assert.Equal(t, 1, i)
	assert.Equal(t, "", l.Get(-1))
	assert.Equal(t, "", l.Get(3))
	assert.True(t, l.HasLocale(2))
	assert.False(t, l.HasLocale(40))

	s, i = LocalizedString{Strings: []string{"", ""}}.First()
	assert.Equal(t, "", s)
	assert.Equal(t, -1, i)
}
