package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dbckit/dbc"
	"github.com/joshuapare/dbckit/internal/testutil"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"cfg-configs", "dance-moves", "spell-rune-cost"}, r.Names())
	assert.Equal(t, 3, r.Len())

	tests := []struct {
		name       string
		recordSize int
		cells      int
	}{
		{"dance-moves", 7*4 + 17*4, 24},
		{"cfg-configs", 16, 4},
		{"spell-rune-cost", 20, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.recordSize, s.RecordSize())
			assert.Equal(t, tt.cells, s.CellCount())
		})
	}

	_, err := r.Lookup("spell")
	require.ErrorIs(t, err, ErrUnknownSchema)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(CfgConfigs, CfgConfigs)
	require.Error(t, err)
}

func TestTableName(t *testing.T) {
	tests := map[string]string{
		"DanceMoves.dbc":                      "dance-moves",
		"/data/DBFilesClient/Cfg_Configs.dbc": "cfg-configs",
		"SpellRuneCost.dbc":                   "spell-rune-cost",
		"spell-rune-cost":                     "spell-rune-cost",
		"UISoundLookups.dbc":                  "ui-sound-lookups",
	}
	for in, want := range tests {
		assert.Equal(t, want, TableName(in), in)
	}

	s, err := Default().ForFile("SpellRuneCost.dbc")
	require.NoError(t, err)
	assert.Same(t, SpellRuneCost, s)
}

func TestDecodeSpellRuneCost(t *testing.T) {
	data := testutil.NewTable(SpellRuneCost.RecordSize()).
		Row(45477, 0, 0, 1, 10).
		Row(49020, 0, 1, 1, 20).
		Bytes()

	tbl, err := dbc.DecodeTable(SpellRuneCost, data)
	require.NoError(t, err)

	r, ok := tbl.ByID(49020)
	require.True(t, ok)
	assert.Equal(t, uint32(1), r.Uint32("unholyRuneCost"))
	assert.Equal(t, uint32(1), r.Uint32("frostRuneCost"))
	assert.Equal(t, uint32(20), r.Uint32("runePowerGain"))
}

func TestDecodeDanceMoves(t *testing.T) {
	b := testutil.NewTable(DanceMoves.RecordSize())
	cells := []uint32{1, 0, 0, 0, 0xFFFF, b.String("DANCE_BASIC")}
	name := make([]uint32, dbc.DefaultLocaleCount+1)
	name[0] = b.String("Basic Dance")
	name[2] = b.String("Grundtanz")
	name[dbc.DefaultLocaleCount] = 0b101
	cells = append(cells, name...)
	cells = append(cells, 77)
	b.Row(cells...)

	records, err := dbc.Decode(DanceMoves, b.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "DANCE_BASIC", r.Text("internalName"))
	loc := r.Localized("name")
	assert.Len(t, loc.Strings, dbc.DefaultLocaleCount)
	assert.Equal(t, "Basic Dance", loc.Get(0))
	assert.Equal(t, "Grundtanz", loc.Get(2))
	assert.Equal(t, uint32(0b101), loc.Mask)
	assert.Equal(t, uint32(77), r.Uint32("lockID"))
	assert.Equal(t, uint32(0xFFFF), r.Uint32("raceMask"))
}
