package debugdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapVec3(t *testing.T) {
	hp := NewHeap(0)
	a := hp.PutVec3(v3(1, 2, 3))
	s := hp.PutString("hi")
	b := hp.PutVec3(v3(-4, 0.5, 9))

	assert.Equal(t, Handle(0), a)
	assert.Equal(t, Handle(12), s)
	assert.Equal(t, Handle(16), b, "strings are padded to 4 bytes")
	assert.Equal(t, v3(1, 2, 3), hp.Vec3(a))
	assert.Equal(t, v3(-4, 0.5, 9), hp.Vec3(b))

	// Unaligned handle: Y of the first vector is readable as X.
	assert.Equal(t, float32(2), hp.Vec3(4).X)
}

func TestHeapOutOfBounds(t *testing.T) {
	hp := NewHeap(16)
	hp.PutVec3(v3(1, 1, 1))

	assert.Equal(t, v3(1, 0, 0), hp.Vec3(8))
	assert.Equal(t, 2, hp.OutOfBounds())
	assert.Equal(t, v3(0, 0, 0), hp.Vec3(1000))
	assert.Equal(t, 5, hp.OutOfBounds())

	hp.Reset()
	assert.Equal(t, 0, hp.OutOfBounds())
	assert.Equal(t, v3(0, 0, 0), hp.Vec3(0))
}

func TestHeapDecodeString(t *testing.T) {
	hp := NewHeap(32)
	h := hp.PutString("contact lost")

	s, ok := hp.DecodeString(h)
	require.True(t, ok)
	assert.Equal(t, "contact lost", s)

	_, ok = hp.DecodeString(500)
	assert.False(t, ok)

	var _ StringDecoder = hp
}

func TestVectorsTable(t *testing.T) {
	vs := NewVectors(2)
	h0 := vs.PutVec3(v3(1, 0, 0))
	h1 := vs.PutVec3(v3(0, 1, 0))

	assert.Equal(t, v3(1, 0, 0), vs.Vec3(h0))
	assert.Equal(t, v3(0, 1, 0), vs.Vec3(h1))
	assert.Equal(t, v3(0, 0, 0), vs.Vec3(7))

	vs.Reset()
	assert.Equal(t, Handle(0), vs.PutVec3(v3(3, 3, 3)))

	var mem Memory = vs
	_, ok := mem.(StringDecoder)
	assert.False(t, ok)
}
