// Package format houses the low-level layout of DBC table files: header
// offsets, sizes, and the header decoder. Higher-level packages turn the
// header plus row and string blocks into records.
package format

// Signature is the optional four-byte magic that precedes the header in
// client-shipped files.
//
//	0x00  'W' 'D' 'B' 'C'
var Signature = []byte{'W', 'D', 'B', 'C'}

const (
	// SignatureSize is the length of Signature in bytes.
	SignatureSize = 4

	// HeaderSize is the size of the table header: four little-endian uint32s.
	HeaderSize = 16

	// Header field offsets, relative to the start of the header.
	RecordCountOffset     = 0x00
	FieldCountOffset      = 0x04
	RecordSizeOffset      = 0x08
	StringBlockSizeOffset = 0x0C

	// CellSize is the width of every scalar cell (uint32, int32, float32,
	// string reference) in a row.
	CellSize = 4
)
