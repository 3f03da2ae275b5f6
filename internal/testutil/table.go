// Package testutil builds synthetic DBC tables for tests.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/dbckit/internal/format"
)

// TableBuilder assembles a table buffer: header, rows and string block.
//
//	b := testutil.NewTable(12)
//	b.Row(1, 10, b.String("foo"))
//	data := b.Bytes()
type TableBuilder struct {
	recordSize int
	fieldCount uint32
	signature  bool
	rows       [][]uint32
	strings    []byte
	interned   map[string]uint32
}

// NewTable starts a table with the given record size in bytes. The string
// block begins with a single NUL so offset 0 is the empty string.
func NewTable(recordSize int) *TableBuilder {
	return &TableBuilder{
		recordSize: recordSize,
		fieldCount: uint32(recordSize / format.CellSize),
		strings:    []byte{0},
		interned:   map[string]uint32{"": 0},
	}
}

// WithSignature prefixes the header with the WDBC magic.
func (b *TableBuilder) WithSignature() *TableBuilder {
	b.signature = true
	return b
}

// WithFieldCount overrides the header's field count.
func (b *TableBuilder) WithFieldCount(n uint32) *TableBuilder {
	b.fieldCount = n
	return b
}

// WithStringBlock replaces the string block with raw bytes verbatim.
func (b *TableBuilder) WithStringBlock(raw []byte) *TableBuilder {
	b.strings = append([]byte(nil), raw...)
	b.interned = map[string]uint32{}
	return b
}

// String appends s (NUL-terminated) to the string block and returns its offset.
func (b *TableBuilder) String(s string) uint32 {
	if off, ok := b.interned[s]; ok {
		return off
	}
	off := uint32(len(b.strings))
	b.strings = append(b.strings, s...)
	b.strings = append(b.strings, 0)
	b.interned[s] = off
	return off
}

// Row appends a row of 4-byte cells. Missing trailing cells are zero.
func (b *TableBuilder) Row(cells ...uint32) *TableBuilder {
	b.rows = append(b.rows, cells)
	return b
}

// Bytes renders the table.
func (b *TableBuilder) Bytes() []byte {
	prefix := format.PrefixSize(b.signature)
	out := make([]byte, prefix+len(b.rows)*b.recordSize+len(b.strings))
	format.PutHeader(out, format.Header{
		RecordCount:     uint32(len(b.rows)),
		FieldCount:      b.fieldCount,
		RecordSize:      uint32(b.recordSize),
		StringBlockSize: uint32(len(b.strings)),
	}, b.signature)

	for i, row := range b.rows {
		base := prefix + i*b.recordSize
		for j, c := range row {
			if (j+1)*format.CellSize > b.recordSize {
				break
			}
			format.PutU32(out, base+j*format.CellSize, c)
		}
	}
	copy(out[prefix+len(b.rows)*b.recordSize:], b.strings)
	return out
}

// WriteFile renders the table into dir/name and returns the path.
func (b *TableBuilder) WriteFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// I32 returns the cell encoding of a signed value.
func I32(v int32) uint32 { return uint32(v) }

// F32 returns the cell encoding of a float.
func F32(v float32) uint32 { return math.Float32bits(v) }
