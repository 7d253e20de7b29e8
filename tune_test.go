package silk

import (
	"errors"
	"math"
	"testing"
	"time"
)

func desktop() Capability {
	return Capability{PageVisible: true, InViewport: true}
}

func TestTune_ReducedMotionWins(t *testing.T) {
	p := DefaultParams()
	for _, mobile := range []bool{false, true} {
		for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh} {
			p.Quality = q
			c := Capability{Mobile: mobile, ReducedMotion: true, PageVisible: true, InViewport: true}
			got := Tune(c, p)
			if got.TimeScale != 0 {
				t.Errorf("Tune(mobile=%v, %v).TimeScale = %v, want 0", mobile, q, got.TimeScale)
			}
			if got.FrameRateCap != 12 {
				t.Errorf("Tune(mobile=%v, %v).FrameRateCap = %d, want 12", mobile, q, got.FrameRateCap)
			}
			if got.PixelDensity != 1 || got.Speed != 0 {
				t.Errorf("Tune(mobile=%v, %v) = %+v, want density 1 and speed 0", mobile, q, got)
			}
		}
	}
}

func TestTune_ReducedMotionNoise(t *testing.T) {
	tests := []struct {
		base, want float64
	}{
		{1.5, 0.6},
		{1.0, 0.6},
		{0.5, 0.3},
		{0, 0},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.Noise = tt.base
		got := Tune(Capability{ReducedMotion: true}, p).Noise
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("reduced noise for base %v = %v, want %v", tt.base, got, tt.want)
		}
		if got > 0.6*tt.base+1e-12 {
			t.Errorf("reduced noise for base %v = %v exceeds 0.6x", tt.base, got)
		}
	}
}

func TestTune_Mobile(t *testing.T) {
	p := DefaultParams()
	p.Quality = QualityHigh
	got := Tune(Capability{Mobile: true, PageVisible: true, InViewport: true}, p)
	want := Profile{
		PixelDensity: 1,
		FrameRateCap: 24,
		TimeScale:    0.55,
		Speed:        5 * 0.7,
		Scale:        0.95,
		Noise:        1.0,
	}
	if got != want {
		t.Errorf("Tune(mobile) = %+v, want %+v", got, want)
	}
}

func TestTune_DesktopTiers(t *testing.T) {
	tests := []struct {
		q       Quality
		fps     int
		ts      float64
		speed   float64
		density float64
		noise   float64
	}{
		{QualityLow, 30, 0.28, 5 * 0.55, 1.5, 1.0},
		{QualityMedium, 45, 0.42, 5 * 0.70, 2, 1.5},
		{QualityHigh, 60, 0.65, 5 * 1.00, 2, 1.5},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.Quality = tt.q
		got := Tune(desktop(), p)
		if got.FrameRateCap != tt.fps || got.TimeScale != tt.ts || got.PixelDensity != tt.density {
			t.Errorf("Tune(%v) = %+v, want fps=%d ts=%v density=%v", tt.q, got, tt.fps, tt.ts, tt.density)
		}
		if math.Abs(got.Speed-tt.speed) > 1e-12 {
			t.Errorf("Tune(%v).Speed = %v, want %v", tt.q, got.Speed, tt.speed)
		}
		if got.Noise != tt.noise {
			t.Errorf("Tune(%v).Noise = %v, want %v", tt.q, got.Noise, tt.noise)
		}
		if got.Scale != p.Scale {
			t.Errorf("Tune(%v).Scale = %v, want %v", tt.q, got.Scale, p.Scale)
		}
	}
}

func TestTune_FrameRateMonotonicAcrossTiers(t *testing.T) {
	p := DefaultParams()
	prev := 0
	for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh} {
		p.Quality = q
		fps := Tune(desktop(), p).FrameRateCap
		if fps < prev {
			t.Errorf("FrameRateCap(%v) = %d, below previous tier %d", q, fps, prev)
		}
		prev = fps
	}
}

func TestTune_UnknownTierFallsBackToLow(t *testing.T) {
	p := DefaultParams()
	p.Quality = Quality(9)
	got := Tune(desktop(), p)
	p.Quality = QualityLow
	if want := Tune(desktop(), p); got != want {
		t.Errorf("Tune(Quality(9)) = %+v, want %+v", got, want)
	}
}

func TestTune_Deterministic(t *testing.T) {
	p := DefaultParams()
	c := Capability{Mobile: true, PageVisible: true}
	if a, b := Tune(c, p), Tune(c, p); a != b {
		t.Errorf("Tune not deterministic: %+v vs %+v", a, b)
	}
}

func TestProfile_FrameInterval(t *testing.T) {
	if got := (Profile{FrameRateCap: 30}).FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval() = %v, want %v", got, time.Second/30)
	}
	if got := (Profile{}).FrameInterval(); got != 0 {
		t.Errorf("FrameInterval() with no cap = %v, want 0", got)
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Params)
		want error
	}{
		{"defaults", func(*Params) {}, nil},
		{"zero speed", func(p *Params) { p.Speed = 0 }, ErrInvalidSpeed},
		{"NaN scale", func(p *Params) { p.Scale = math.NaN() }, ErrInvalidScale},
		{"negative noise", func(p *Params) { p.Noise = -1 }, ErrInvalidNoise},
		{"zero noise", func(p *Params) { p.Noise = 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mod(&p)
			if err := p.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh} {
		got, err := ParseQuality(q.String())
		if err != nil || got != q {
			t.Errorf("ParseQuality(%q) = %v, %v; want %v", q.String(), got, err, q)
		}
	}
	if got, err := ParseQuality(" HIGH "); err != nil || got != QualityHigh {
		t.Errorf("ParseQuality(\" HIGH \") = %v, %v", got, err)
	}
	if _, err := ParseQuality("ultra"); err == nil {
		t.Error("ParseQuality(\"ultra\") error = nil, want error")
	}
}

func TestCapability_Running(t *testing.T) {
	tests := []struct {
		c    Capability
		want bool
	}{
		{Capability{PageVisible: true, InViewport: true}, true},
		{Capability{PageVisible: true, InViewport: true, Mobile: true}, true},
		{Capability{PageVisible: false, InViewport: true}, false},
		{Capability{PageVisible: true, InViewport: false}, false},
		{Capability{PageVisible: true, InViewport: true, ReducedMotion: true}, false},
		{LeastAnimated(), false},
	}
	for _, tt := range tests {
		if got := tt.c.Running(); got != tt.want {
			t.Errorf("%+v.Running() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
