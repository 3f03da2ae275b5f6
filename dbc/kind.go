package dbc

import "fmt"

// Kind tags the on-disk representation of a field. The set is closed: the
// decoder switches over exactly these values.
type Kind uint8

const (
	// KindUint32 is a little-endian unsigned 32-bit integer.
	KindUint32 Kind = iota + 1
	// KindInt32 is a little-endian two's-complement 32-bit integer.
	KindInt32
	// KindFloat32 is a little-endian IEEE-754 single-precision float.
	KindFloat32
	// KindString is a uint32 byte offset into the string block.
	KindString
	// KindLocalizedString is N per-locale string offsets followed by a uint32 locale mask.
	KindLocalizedString
)

func (k Kind) String() string {
	switch k {
	case KindUint32:
		return "uint32"
	case KindInt32:
		return "int32"
	case KindFloat32:
		return "float32"
	case KindString:
		return "string"
	case KindLocalizedString:
		return "locstring"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool {
	return k >= KindUint32 && k <= KindLocalizedString
}

// ParseKind maps the names returned by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindUint32; k <= KindLocalizedString; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field kind %q", ErrInvalidSchema, s)
}
