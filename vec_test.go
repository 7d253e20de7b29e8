package silk

import (
	"math"
	"testing"
)

func TestVec2_Scale(t *testing.T) {
	got := Vec2{X: 1.5, Y: -2}.Scale(2)
	if want := (Vec2{X: 3, Y: -4}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"zero angle", Vec2{X: 1, Y: 2}, 0, Vec2{X: 1, Y: 2}},
		{"quarter turn is clockwise", Vec2{X: 1, Y: 0}, math.Pi / 2, Vec2{X: 0, Y: -1}},
		{"half turn", Vec2{X: 1, Y: 1}, math.Pi, Vec2{X: -1, Y: -1}},
		{"negative angle", Vec2{X: 0, Y: 1}, -math.Pi / 2, Vec2{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestVec2_RotateKeepsLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	for a := -6.0; a <= 6; a += 0.7 {
		r := v.Rotate(a)
		if l := math.Hypot(r.X, r.Y); math.Abs(l-5) > 1e-12 {
			t.Errorf("|Rotate(%v)| = %v, want 5", a, l)
		}
	}
}
