package format

import "encoding/binary"

// Little-endian cell writers. The decoder never writes; these exist for
// building synthetic tables in tests and fixtures.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutHeader writes h at the start of b, preceded by Signature when signature is true.
func PutHeader(b []byte, h Header, signature bool) {
	off := 0
	if signature {
		copy(b, Signature)
		off = SignatureSize
	}
	PutU32(b, off+RecordCountOffset, h.RecordCount)
	PutU32(b, off+FieldCountOffset, h.FieldCount)
	PutU32(b, off+RecordSizeOffset, h.RecordSize)
	PutU32(b, off+StringBlockSizeOffset, h.StringBlockSize)
}
