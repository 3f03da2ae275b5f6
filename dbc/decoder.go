package dbc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/dbckit/internal/buf"
	"github.com/joshuapare/dbckit/internal/format"
)

// Header is the table header: record count, field count, record size and
// string block size.
type Header = format.Header

// Options configures a Decoder. The zero value decodes the plain 16-byte
// header layout with UTF-8 strings.
type Options struct {
	// Signature requires the table to start with the "WDBC" magic, which
	// precedes the header in client-shipped files.
	// Default: false
	Signature bool

	// Charset decodes string block bytes. Nil takes bytes as UTF-8.
	// Pre-2.x clients used legacy code pages, e.g. charmap.Windows1252.
	// Default: nil
	Charset encoding.Encoding

	// StrictStrings fails the decode with ReasonOutOfBounds when a string
	// runs to the end of the string block without a NUL terminator. When
	// false the block end terminates the string.
	// Default: false
	StrictStrings bool

	// MaxRecords rejects tables whose header declares more records, before
	// any allocation. 0 means no limit.
	// Default: 0
	MaxRecords uint32
}

// Decoder decodes tables with a fixed set of Options. It holds no mutable
// state and is safe for concurrent use.
type Decoder struct {
	opts Options
}

// NewDecoder returns a Decoder bound to opts.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

var defaultDecoder = NewDecoder(Options{})

// Decode decodes every row of buffer with the default options.
func Decode(s *Schema, buffer []byte) ([]Record, error) {
	return defaultDecoder.Decode(s, buffer)
}

// DecodeTable decodes buffer with the default options and keeps the header.
func DecodeTable(s *Schema, buffer []byte) (*Table, error) {
	return defaultDecoder.DecodeTable(s, buffer)
}

// ParseHeader reads the table header with the default options.
func ParseHeader(buffer []byte) (Header, error) {
	return defaultDecoder.ParseHeader(buffer)
}

// Options returns the decoder's options.
func (d *Decoder) Options() Options { return d.opts }

// ParseHeader reads and returns the table header without checking the
// rest of the buffer.
func (d *Decoder) ParseHeader(buffer []byte) (Header, error) {
	h, err := format.ParseHeader(buffer, d.opts.Signature)
	if err != nil {
		switch {
		case errors.Is(err, format.ErrSignatureMismatch):
			return Header{}, tableError(ReasonBadSignature, err)
		default:
			return Header{}, tableError(ReasonTruncatedHeader, err)
		}
	}
	return h, nil
}

// Decode decodes every row of buffer against s. On any structural problem it
// returns a *MalformedTableError and no records.
func (d *Decoder) Decode(s *Schema, buffer []byte) ([]Record, error) {
	_, records, err := d.decode(s, buffer)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DecodeTable is Decode but also returns the header and an id index.
func (d *Decoder) DecodeTable(s *Schema, buffer []byte) (*Table, error) {
	h, records, err := d.decode(s, buffer)
	if err != nil {
		return nil, err
	}
	return newTable(s, h, records), nil
}

func (d *Decoder) decode(s *Schema, buffer []byte) (Header, []Record, error) {
	if s == nil || s.Len() == 0 {
		return Header{}, nil, fmt.Errorf("%w: nil or empty schema", ErrInvalidSchema)
	}

	h, err := d.ParseHeader(buffer)
	if err != nil {
		return Header{}, nil, err
	}
	if d.opts.MaxRecords > 0 && h.RecordCount > d.opts.MaxRecords {
		return Header{}, nil, tableError(ReasonSizeMismatch,
			fmt.Errorf("record count %d exceeds limit %d", h.RecordCount, d.opts.MaxRecords))
	}

	layout, err := h.Layout(len(buffer), d.opts.Signature)
	if err != nil {
		return Header{}, nil, tableError(ReasonSizeMismatch, err)
	}

	// A row narrower than the schema cannot be read. Checking once up front
	// also keeps a zero record size from sizing a huge allocation.
	if h.RecordCount > 0 && int(h.RecordSize) < s.RecordSize() {
		return Header{}, nil, &MalformedTableError{
			Reason: ReasonOutOfBounds,
			Row:    0,
			Offset: layout.RowsStart,
			Err: fmt.Errorf("record size %d is smaller than schema %q width %d",
				h.RecordSize, s.Name(), s.RecordSize()),
		}
	}

	strs := newStringBlock(buffer[layout.StringsStart:layout.End], layout.StringsStart, d.opts)
	recSize := int(h.RecordSize)
	records := make([]Record, h.RecordCount)
	for i := range records {
		rowStart := layout.RowsStart + i*recSize
		rr := rowReader{
			row:   buffer[rowStart : rowStart+recSize],
			base:  rowStart,
			index: i,
		}
		values, err := rr.decode(s, strs)
		if err != nil {
			return Header{}, nil, err
		}
		records[i] = Record{schema: s, values: values}
	}
	return h, records, nil
}

// rowReader walks one row with a cursor, one 4-byte cell at a time.
type rowReader struct {
	row   []byte
	base  int
	index int
	off   int
	field string
}

func (rr *rowReader) decode(s *Schema, strs *stringBlock) ([]Value, error) {
	values := make([]Value, len(s.fields))
	for i, f := range s.fields {
		rr.field = f.Name
		v, err := rr.value(f.Kind, s.locales, strs)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (rr *rowReader) value(k Kind, locales int, strs *stringBlock) (Value, error) {
	switch k {
	case KindUint32:
		cell, err := rr.cell()
		if err != nil {
			return Value{}, err
		}
		return uint32Value(buf.U32LE(cell)), nil

	case KindInt32:
		cell, err := rr.cell()
		if err != nil {
			return Value{}, err
		}
		return int32Value(buf.I32LE(cell)), nil

	case KindFloat32:
		cell, err := rr.cell()
		if err != nil {
			return Value{}, err
		}
		return float32Value(buf.U32LE(cell)), nil

	case KindString:
		s, err := rr.str(strs)
		if err != nil {
			return Value{}, err
		}
		return stringValue(s), nil

	case KindLocalizedString:
		loc := LocalizedString{Strings: make([]string, locales)}
		for i := range loc.Strings {
			s, err := rr.str(strs)
			if err != nil {
				return Value{}, err
			}
			loc.Strings[i] = s
		}
		mask, err := rr.cell()
		if err != nil {
			return Value{}, err
		}
		loc.Mask = buf.U32LE(mask)
		return localizedValue(loc), nil

	default:
		return Value{}, fmt.Errorf("%w: field %q has %v", ErrInvalidSchema, rr.field, k)
	}
}

func (rr *rowReader) cell() ([]byte, error) {
	cell, ok := buf.Slice(rr.row, rr.off, format.CellSize)
	if !ok {
		return nil, &MalformedTableError{
			Reason: ReasonOutOfBounds,
			Row:    rr.index,
			Field:  rr.field,
			Offset: rr.base + rr.off,
			Err:    fmt.Errorf("%w: cell at row offset %d, record size %d", format.ErrTruncated, rr.off, len(rr.row)),
		}
	}
	rr.off += format.CellSize
	return cell, nil
}

func (rr *rowReader) str(strs *stringBlock) (string, error) {
	cell, err := rr.cell()
	if err != nil {
		return "", err
	}
	s, err := strs.resolve(buf.U32LE(cell))
	if err != nil {
		var mte *MalformedTableError
		if errors.As(err, &mte) {
			mte.Row = rr.index
			mte.Field = rr.field
		}
		return "", err
	}
	return s, nil
}
