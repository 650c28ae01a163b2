package common

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Finite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.True(t, Vec3{X: 1, Y: -2, Z: 3}.Finite())
	assert.False(t, Vec3{X: nan}.Finite())
	assert.False(t, Vec3{Z: inf}.Finite())
}

func TestVec3Arithmetic(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, v.Add(v))
	assert.Equal(t, Vec3{X: 0.5, Y: 1, Z: 1.5}, v.Scale(0.5))
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), Clamp01(-1))
	assert.Equal(t, float32(0.25), Clamp01(0.25))
	assert.Equal(t, float32(1), Clamp01(7))
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, Vec3{X: 1, Y: 0, Z: 1}, FromColor(color.NRGBA{R: 255, B: 255, A: 255}))
	assert.Equal(t, Vec3{Y: 1}, FromColor(color.RGBA{G: 255, A: 255}))
	assert.Equal(t, Vec3{}, FromColor(color.Black))
}
