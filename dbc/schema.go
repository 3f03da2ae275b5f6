package dbc

import (
	"fmt"
	"slices"

	"github.com/joshuapare/dbckit/internal/format"
)

// DefaultLocaleCount is the number of locale slots in a localized string
// reference for 3.x-era clients. Older and newer clients differ, so schemas
// take the count explicitly.
const DefaultLocaleCount = 16

// Field is one named column of a Schema.
type Field struct {
	Name string
	Kind Kind
}

// U32 declares an unsigned 32-bit field.
func U32(name string) Field { return Field{Name: name, Kind: KindUint32} }

// I32 declares a signed 32-bit field.
func I32(name string) Field { return Field{Name: name, Kind: KindInt32} }

// F32 declares a float32 field.
func F32(name string) Field { return Field{Name: name, Kind: KindFloat32} }

// StrRef declares a string-reference field.
func StrRef(name string) Field { return Field{Name: name, Kind: KindString} }

// LocStrRef declares a localized string-reference field.
func LocStrRef(name string) Field { return Field{Name: name, Kind: KindLocalizedString} }

// Schema is the ordered field layout of one table. It is immutable after
// NewSchema returns and may be shared between goroutines.
type Schema struct {
	name    string
	fields  []Field
	locales int
	width   int
	index   map[string]int
}

// NewSchema validates fields and builds a Schema. locales is the number of
// per-locale offsets in every localized string reference; it is only
// required to be positive when such a field is present.
func NewSchema(name string, locales int, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: schema %q has no fields", ErrInvalidSchema, name)
	}
	s := &Schema{
		name:    name,
		fields:  slices.Clone(fields),
		locales: locales,
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: schema %q field %d has no name", ErrInvalidSchema, name, i)
		}
		if !f.Kind.valid() {
			return nil, fmt.Errorf("%w: schema %q field %q has %v", ErrInvalidSchema, name, f.Name, f.Kind)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: schema %q declares %q twice", ErrInvalidSchema, name, f.Name)
		}
		if f.Kind == KindLocalizedString && locales < 1 {
			return nil, fmt.Errorf("%w: schema %q field %q needs a positive locale count, got %d",
				ErrInvalidSchema, name, f.Name, locales)
		}
		s.index[f.Name] = i
		s.width += s.FieldWidth(f)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. Intended for static
// schema declarations.
func MustSchema(name string, locales int, fields ...Field) *Schema {
	s, err := NewSchema(name, locales, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Locales returns the locale count used for localized string references.
func (s *Schema) Locales() int { return s.locales }

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []Field { return slices.Clone(s.fields) }

// Field returns the i'th field.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Index returns the position of the named field.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// RecordSize returns the sum of all field widths in bytes. A well-formed
// table declares at least this record size.
func (s *Schema) RecordSize() int { return s.width }

// CellCount returns the number of 4-byte cells a row occupies, which is what
// client files store in the header's field count.
func (s *Schema) CellCount() int { return s.width / format.CellSize }

// FieldWidth returns the on-disk width of f under this schema's locale count.
func (s *Schema) FieldWidth(f Field) int {
	if f.Kind == KindLocalizedString {
		return (s.locales + 1) * format.CellSize
	}
	return format.CellSize
}
