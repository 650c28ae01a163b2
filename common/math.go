package common

import (
	"fmt"
	"image/color"
	"math"
)

// Vec3 is a position or an RGB color, three float32 components.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Finite reports whether no component is NaN or Inf.
func (v Vec3) Finite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// FromColor converts c to an RGB Vec3 in [0, 1], dropping alpha.
func FromColor(c color.Color) Vec3 {
	r, g, b, _ := color.NRGBAModel.Convert(c).RGBA()
	return Vec3{X: float32(r) / 0xffff, Y: float32(g) / 0xffff, Z: float32(b) / 0xffff}
}
