package schemas

import "github.com/joshuapare/dbckit/dbc"

// Built-in table layouts.
var (
	DanceMoves = dbc.MustSchema("dance-moves", dbc.DefaultLocaleCount,
		dbc.U32("id"),
		dbc.U32("type"),
		dbc.U32("value"),
		dbc.U32("fallbackID"),
		dbc.U32("raceMask"),
		dbc.StrRef("internalName"),
		dbc.LocStrRef("name"),
		dbc.U32("lockID"),
	)

	CfgConfigs = dbc.MustSchema("cfg-configs", dbc.DefaultLocaleCount,
		dbc.U32("id"),
		dbc.U32("realmType"),
		dbc.U32("pvp"),
		dbc.U32("roleplay"),
	)

	SpellRuneCost = dbc.MustSchema("spell-rune-cost", dbc.DefaultLocaleCount,
		dbc.U32("id"),
		dbc.U32("bloodRuneCost"),
		dbc.U32("unholyRuneCost"),
		dbc.U32("frostRuneCost"),
		dbc.U32("runePowerGain"),
	)
)

var defaultRegistry = mustRegistry(DanceMoves, CfgConfigs, SpellRuneCost)

// Default returns the registry of built-in schemas.
func Default() *Registry { return defaultRegistry }

func mustRegistry(schemas ...*dbc.Schema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}
