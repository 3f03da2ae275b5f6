package dbc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// LocalizedString is a decoded localized string reference: one string per
// locale slot plus the raw locale mask. Picking a locale is up to the caller.
type LocalizedString struct {
	Strings []string `json:"strings"`
	Mask    uint32   `json:"mask"`
}

// Get returns the string for locale, or "" when locale is out of range.
func (l LocalizedString) Get(locale int) string {
	if locale < 0 || locale >= len(l.Strings) {
		return ""
	}
	return l.Strings[locale]
}

// First returns the first non-empty locale string and its index, or ("", -1).
func (l LocalizedString) First() (string, int) {
	for i, s := range l.Strings {
		if s != "" {
			return s, i
		}
	}
	return "", -1
}

// HasLocale reports whether bit locale is set in the mask.
func (l LocalizedString) HasLocale(locale int) bool {
	if locale < 0 || locale >= 32 {
		return false
	}
	return l.Mask&(1<<uint(locale)) != 0
}

// Value holds one decoded field. Exactly one representation is populated,
// selected by Kind; the typed accessors return the zero value for any other
// kind.
type Value struct {
	kind Kind
	bits uint32
	str  string
	loc  LocalizedString
}

func uint32Value(v uint32) Value             { return Value{kind: KindUint32, bits: v} }
func int32Value(v int32) Value               { return Value{kind: KindInt32, bits: uint32(v)} }
func float32Value(bits uint32) Value         { return Value{kind: KindFloat32, bits: bits} }
func stringValue(s string) Value             { return Value{kind: KindString, str: s} }
func localizedValue(l LocalizedString) Value { return Value{kind: KindLocalizedString, loc: l} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Uint32() uint32 {
	if v.kind != KindUint32 {
		return 0
	}
	return v.bits
}

func (v Value) Int32() int32 {
	if v.kind != KindInt32 {
		return 0
	}
	return int32(v.bits)
}

func (v Value) Float32() float32 {
	if v.kind != KindFloat32 {
		return 0
	}
	return math.Float32frombits(v.bits)
}

// Text returns the resolved string of a string-reference field.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Localized returns the resolved localized string. The Strings slice is shared;
// callers must not modify it.
func (v Value) Localized() LocalizedString {
	if v.kind != KindLocalizedString {
		return LocalizedString{}
	}
	return v.loc
}

// Interface returns the value as uint32, int32, float32, string or LocalizedString.
func (v Value) Interface() any {
	switch v.kind {
	case KindUint32:
		return v.Uint32()
	case KindInt32:
		return v.Int32()
	case KindFloat32:
		return v.Float32()
	case KindString:
		return v.str
	case KindLocalizedString:
		return v.loc
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindUint32:
		return strconv.FormatUint(uint64(v.bits), 10)
	case KindInt32:
		return strconv.FormatInt(int64(int32(v.bits)), 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	case KindString:
		return strconv.Quote(v.str)
	case KindLocalizedString:
		s, i := v.loc.First()
		return fmt.Sprintf("%q[%d] mask=0x%x", s, i, v.loc.Mask)
	default:
		return "<invalid>"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat32 {
		f := float64(v.Float32())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// JSON has no NaN/Inf; emit the raw bits instead.
			return json.Marshal(fmt.Sprintf("0x%08x", v.bits))
		}
		return []byte(strconv.FormatFloat(f, 'g', -1, 32)), nil
	}
	return json.Marshal(v.Interface())
}
