package dbc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/dbckit/internal/buf"
)

var errUnterminated = errors.New("string runs past end of string block")

// stringBlock resolves string references for a single decode call. The
// cache is per call; nothing outlives Decode.
type stringBlock struct {
	data    []byte
	base    int // absolute offset of data in the table buffer
	charset encoding.Encoding
	strict  bool
	cache   map[uint32]string
}

func newStringBlock(data []byte, base int, opts Options) *stringBlock {
	return &stringBlock{
		data:    data,
		base:    base,
		charset: opts.Charset,
		strict:  opts.StrictStrings,
		cache:   make(map[uint32]string),
	}
}

// resolve returns the string at off. Offset 0 and offsets at or past the end
// of the block are absent references and resolve to "".
func (sb *stringBlock) resolve(off uint32) (string, error) {
	if off == 0 || uint64(off) >= uint64(len(sb.data)) {
		return "", nil
	}
	if s, ok := sb.cache[off]; ok {
		return s, nil
	}
	raw, terminated, ok := buf.CString(sb.data, int(off))
	if !ok || (!terminated && sb.strict) {
		return "", &MalformedTableError{
			Reason: ReasonOutOfBounds,
			Row:    -1,
			Offset: sb.base + int(off),
			Err:    errUnterminated,
		}
	}
	s, err := sb.decode(raw)
	if err != nil {
		return "", &MalformedTableError{
			Reason: ReasonInvalidString,
			Row:    -1,
			Offset: sb.base + int(off),
			Err:    err,
		}
	}
	sb.cache[off] = s
	return s, nil
}

// decode converts raw bytes to a Go string. Without a charset the bytes are
// taken as UTF-8, which is what 2.x and later clients store.
func (sb *stringBlock) decode(raw []byte) (string, error) {
	if sb.charset == nil || isASCII(raw) {
		return string(raw), nil
	}
	decoded, err := sb.charset.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("charset decode: %w", err)
	}
	return string(decoded), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
