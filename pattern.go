package silk

import "math"

// Uniforms are the per-frame-constant inputs of the pattern function.
type Uniforms struct {
	Speed    float64
	Scale    float64
	Noise    float64
	Color    RGB
	Rotation float64
}

// UniformsFor combines a tuned profile with the untuned parts of params.
func UniformsFor(prof Profile, p Params) Uniforms {
	return Uniforms{
		Speed:    prof.Speed,
		Scale:    prof.Scale,
		Noise:    prof.Noise,
		Color:    p.Color,
		Rotation: p.Rotation,
	}
}

// Grain returns the per-pixel pseudo-random value in [0, 1) derived from the
// absolute fragment coordinate.
func Grain(frag Vec2) float64 {
	const g = math.E
	rx := g * math.Sin(g*frag.X)
	ry := g * math.Sin(g*frag.Y)
	return fract(rx * ry * (1 + frag.X))
}

// Pattern returns the scalar interference value at uv for animation time t.
func Pattern(uv Vec2, t float64, u Uniforms) float64 {
	tex := uv.Scale(u.Scale).Rotate(u.Rotation).Scale(u.Scale)

	off := u.Speed * t
	tex.Y += 0.03 * math.Sin(8*tex.X-off)

	return 0.6 + 0.4*math.Sin(
		5*(tex.X+tex.Y+math.Cos(3*tex.X+5*tex.Y)+0.02*off)+
			math.Sin(20*(tex.X+tex.Y-0.1*off)))
}

// Shade evaluates the backdrop colour for one pixel.
//
// frag is the fragment coordinate (pixel centre, origin bottom-left), uv the
// normalized surface coordinate and t the animation clock time. The result
// is baseColor*pattern minus the grain term, with alpha forced opaque.
// Shade is pure: equal inputs always give equal output.
func Shade(frag, uv Vec2, t float64, u Uniforms) RGBA {
	p := Pattern(uv, t, u)
	n := Grain(frag) / 15 * u.Noise
	return RGBA{
		R: u.Color.R*p - n,
		G: u.Color.G*p - n,
		B: u.Color.B*p - n,
		A: 1,
	}
}

// FragCoord returns the fragment and uv coordinates of pixel (x, y) in a
// w×h buffer whose rows run top to bottom.
func FragCoord(x, y, w, h int) (frag, uv Vec2) {
	frag = Vec2{X: float64(x) + 0.5, Y: float64(h-1-y) + 0.5}
	uv = Vec2{X: frag.X / float64(w), Y: frag.Y / float64(h)}
	return frag, uv
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
