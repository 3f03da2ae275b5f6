package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/dbckit/internal/buf"
)

// Header is the fixed table header that precedes the row block.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------------
//	 0x000   4    Record count
//	 0x004   4    Field count
//	 0x008   4    Record size in bytes
//	 0x00C   4    String block size in bytes
//
// When the table carries a Signature, these offsets are relative to the
// byte after it.
type Header struct {
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32
}

// Layout locates the row and string blocks inside a table buffer.
type Layout struct {
	RowsStart    int
	StringsStart int
	End          int
}

// PrefixSize returns the number of bytes before the row block.
func PrefixSize(signature bool) int {
	if signature {
		return SignatureSize + HeaderSize
	}
	return HeaderSize
}

// ParseHeader decodes the table header. When signature is true the buffer
// must begin with Signature, which is skipped.
func ParseHeader(b []byte, signature bool) (Header, error) {
	if len(b) < PrefixSize(signature) {
		return Header{}, fmt.Errorf("dbc header: %w (have %d, need %d)",
			ErrTruncated, len(b), PrefixSize(signature))
	}
	if signature {
		if !bytes.Equal(b[:SignatureSize], Signature) {
			return Header{}, fmt.Errorf("dbc header: %w", ErrSignatureMismatch)
		}
		b = b[SignatureSize:]
	}
	return Header{
		RecordCount:     buf.U32LE(b[RecordCountOffset:]),
		FieldCount:      buf.U32LE(b[FieldCountOffset:]),
		RecordSize:      buf.U32LE(b[RecordSizeOffset:]),
		StringBlockSize: buf.U32LE(b[StringBlockSizeOffset:]),
	}, nil
}

// Layout checks that prefix + RecordCount*RecordSize + StringBlockSize is
// exactly bufLen and returns where each block starts.
func (h Header) Layout(bufLen int, signature bool) (Layout, error) {
	rowsStart := PrefixSize(signature)
	stringsStart, err := buf.CheckListBounds(bufLen, rowsStart, int(h.RecordCount), int(h.RecordSize))
	if err != nil {
		return Layout{}, fmt.Errorf("dbc rows: %w: %w", ErrSizeMismatch, err)
	}
	end, ok := buf.AddOverflowSafe(stringsStart, int(h.StringBlockSize))
	if !ok || end != bufLen {
		return Layout{}, fmt.Errorf("dbc strings: %w (header implies %d bytes, have %d)",
			ErrSizeMismatch, h.ExpectedSize(signature), bufLen)
	}
	return Layout{RowsStart: rowsStart, StringsStart: stringsStart, End: end}, nil
}

// ExpectedSize returns the total buffer length the header implies.
func (h Header) ExpectedSize(signature bool) uint64 {
	return uint64(PrefixSize(signature)) +
		uint64(h.RecordCount)*uint64(h.RecordSize) +
		uint64(h.StringBlockSize)
}
