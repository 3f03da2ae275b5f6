package buf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	assert.Equal(t, uint32(0x67452301), U32LE(data))
	assert.Equal(t, int32(0x67452301), I32LE(data))

	neg := make([]byte, 4)
	binary.LittleEndian.PutUint32(neg, uint32(0xFFFFFFFE))
	assert.Equal(t, int32(-2), I32LE(neg))

	f := make([]byte, 4)
	binary.LittleEndian.PutUint32(f, math.Float32bits(1.5))
	assert.Equal(t, float32(1.5), F32LE(f))

	short := []byte{0xAA}
	assert.Zero(t, U32LE(short))
	assert.Zero(t, I32LE(short))
	assert.Zero(t, F32LE(short))
}
