package dbc

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Record is one decoded row: the schema's fields paired with their values,
// in declaration order. A Record owns all of its data and stays valid after
// the source buffer is released.
type Record struct {
	schema *Schema
	values []Value
}

// Schema returns the schema the record was decoded with.
func (r Record) Schema() *Schema { return r.schema }

// Len returns the number of fields.
func (r Record) Len() int { return len(r.values) }

// At returns the i'th field and its value.
func (r Record) At(i int) (Field, Value) { return r.schema.fields[i], r.values[i] }

// Values returns a copy of the values in field order.
func (r Record) Values() []Value { return slices.Clone(r.values) }

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	i, ok := r.schema.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Uint32 returns the named uint32 field, or 0.
func (r Record) Uint32(name string) uint32 {
	v, _ := r.Get(name)
	return v.Uint32()
}

// Int32 returns the named int32 field, or 0.
func (r Record) Int32(name string) int32 {
	v, _ := r.Get(name)
	return v.Int32()
}

// Float32 returns the named float32 field, or 0.
func (r Record) Float32(name string) float32 {
	v, _ := r.Get(name)
	return v.Float32()
}

// Text returns the named string-reference field, or "".
func (r Record) Text(name string) string {
	v, _ := r.Get(name)
	return v.Text()
}

// Localized returns the named localized string field.
func (r Record) Localized(name string) LocalizedString {
	v, _ := r.Get(name)
	return v.Localized()
}

// Map returns the record as a name -> Go value map (see Value.Interface).
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, v := range r.values {
		m[r.schema.fields[i].Name] = v.Interface()
	}
	return m
}

// MarshalJSON encodes the record as a JSON object whose keys follow field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, v := range r.values {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(r.schema.fields[i].Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
