package silk

import "math"

// Vec2 is a 2D vector used for fragment and texture coordinates.
type Vec2 struct {
	X, Y float64
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rotate multiplies v by the column-major matrix mat2(c, -s, s, c), which is
// what the fragment shader uses. For positive angles this turns v clockwise.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{
		X: c*v.X + s*v.Y,
		Y: -s*v.X + c*v.Y,
	}
}
