// Package schemas is the static registry of known table layouts. Each entry
// is configuration data for the generic decoder in package dbc.
package schemas

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/joshuapare/dbckit/dbc"
)

// ErrUnknownSchema indicates no schema is registered under a name.
var ErrUnknownSchema = errors.New("schemas: unknown schema")

// Registry maps table names such as "spell-rune-cost" to schemas. It is
// built once and read-only afterwards.
type Registry struct {
	byName map[string]*dbc.Schema
}

// NewRegistry indexes the given schemas by name. Duplicate names are an error.
func NewRegistry(schemas ...*dbc.Schema) (*Registry, error) {
	r := &Registry{byName: make(map[string]*dbc.Schema, len(schemas))}
	for _, s := range schemas {
		if _, dup := r.byName[s.Name()]; dup {
			return nil, fmt.Errorf("schemas: %q registered twice", s.Name())
		}
		r.byName[s.Name()] = s
	}
	return r, nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*dbc.Schema, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return s, nil
}

// ForFile returns the schema for a file name like "DanceMoves.dbc".
func (r *Registry) ForFile(path string) (*dbc.Schema, error) {
	return r.Lookup(TableName(path))
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return len(r.byName) }

// TableName converts a file name to a registry name: the extension is
// dropped and CamelCase becomes kebab-case, so "SpellRuneCost.dbc" maps to
// "spell-rune-cost" and "Cfg_Configs.dbc" to "cfg-configs".
func TableName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	runes := []rune(base)
	for i, c := range runes {
		switch {
		case c == '_' || c == ' ' || c == '-':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
		case unicode.IsUpper(c):
			if i > 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), "-") &&
				(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(c))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
