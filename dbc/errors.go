package dbc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedTable matches every *MalformedTableError via errors.Is.
	ErrMalformedTable = errors.New("dbc: malformed table")

	// ErrInvalidSchema indicates a schema declaration was rejected by NewSchema.
	ErrInvalidSchema = errors.New("dbc: invalid schema")
)

// Reasons carried by MalformedTableError.
const (
	ReasonTruncatedHeader = "truncated header"
	ReasonSizeMismatch    = "size mismatch"
	ReasonOutOfBounds     = "out of bounds"
	ReasonBadSignature    = "bad signature"
	ReasonInvalidString   = "invalid string"
)

// MalformedTableError reports a buffer that is structurally invalid for the
// schema it was decoded with. It is terminal: retrying the same buffer
// cannot succeed.
type MalformedTableError struct {
	// Reason is one of the Reason* constants.
	Reason string

	// Row and Field locate the failing read; Row is -1 for table-level failures.
	Row   int
	Field string

	// Offset is the absolute byte offset of the failing read, or -1.
	Offset int

	// Err is the underlying low-level error, if any.
	Err error
}

func (e *MalformedTableError) Error() string {
	var b strings.Builder
	b.WriteString("dbc: malformed table: ")
	b.WriteString(e.Reason)

	var loc []string
	if e.Row >= 0 {
		loc = append(loc, fmt.Sprintf("row %d", e.Row))
	}
	if e.Field != "" {
		loc = append(loc, fmt.Sprintf("field %q", e.Field))
	}
	if e.Offset >= 0 {
		loc = append(loc, fmt.Sprintf("offset %d", e.Offset))
	}
	if len(loc) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(loc, ", "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedTableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedTable}
	}
	return []error{ErrMalformedTable, e.Err}
}

// tableError builds a table-level MalformedTableError.
func tableError(reason string, err error) *MalformedTableError {
	return &MalformedTableError{Reason: reason, Row: -1, Offset: -1, Err: err}
}

// IsMalformed reports whether err is a MalformedTableError and returns its reason.
func IsMalformed(err error) (string, bool) {
	var mte *MalformedTableError
	if errors.As(err, &mte) {
		return mte.Reason, true
	}
	return "", false
}
