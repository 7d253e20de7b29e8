package silk

import (
	"errors"
	"math"
	"time"
)

// Params is the embedding contract of the backdrop: what the page asks for
// before the host's capabilities are taken into account.
type Params struct {
	// Quality is the desired desktop tier.
	Quality Quality

	// Speed is the base animation speed (positive).
	Speed float64

	// Scale is the base pattern scale (positive).
	Scale float64

	// Noise is the base grain intensity (non-negative).
	Noise float64

	// Color is the base colour of the pattern.
	Color RGB

	// Rotation is the pattern rotation in radians.
	Rotation float64
}

// DefaultParams returns the stock backdrop parameters.
func DefaultParams() Params {
	return Params{
		Quality: QualityLow,
		Speed:   5,
		Scale:   1,
		Noise:   1.5,
		Color:   MustHex("#7B7481"),
	}
}

// Param validation errors.
var (
	ErrInvalidSpeed = errors.New("silk: speed must be positive")
	ErrInvalidScale = errors.New("silk: scale must be positive")
	ErrInvalidNoise = errors.New("silk: noise must be non-negative")
)

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	switch {
	case !(p.Speed > 0) || math.IsInf(p.Speed, 0):
		return ErrInvalidSpeed
	case !(p.Scale > 0) || math.IsInf(p.Scale, 0):
		return ErrInvalidScale
	case !(p.Noise >= 0) || math.IsInf(p.Noise, 0):
		return ErrInvalidNoise
	}
	return nil
}

// Profile is the resolved set of animation parameters for one
// capability/params combination. It is a value; Tune builds a new one
// whenever an input changes.
type Profile struct {
	// PixelDensity multiplies the container size to get the pixel buffer size.
	PixelDensity float64

	// FrameRateCap is the most clock advances per second, in Hz.
	FrameRateCap int

	// TimeScale multiplies the wall-clock delta on each advance.
	TimeScale float64

	// Speed, Scale and Noise are the tuned shader inputs.
	Speed float64
	Scale float64
	Noise float64
}

// FrameInterval returns the minimum wall-clock time between clock advances.
func (p Profile) FrameInterval() time.Duration {
	if p.FrameRateCap <= 0 {
		return 0
	}
	return time.Second / time.Duration(p.FrameRateCap)
}

// desktopTier is one row of the desktop tuning table.
type desktopTier struct {
	fps       int
	timeScale float64
	speedMul  float64
	density   float64
	capNoise  bool
}

var desktopTiers = [...]desktopTier{
	QualityLow:    {fps: 30, timeScale: 0.28, speedMul: 0.55, density: 1.5, capNoise: true},
	QualityMedium: {fps: 45, timeScale: 0.42, speedMul: 0.70, density: 2},
	QualityHigh:   {fps: 60, timeScale: 0.65, speedMul: 1.00, density: 2},
}

// Tune maps host capabilities and requested params to a Profile.
// The first matching rule wins: reduced motion, then mobile, then the desktop
// tier. Unknown tiers tune as QualityLow. Tune is pure and cheap enough to
// call on every input change.
func Tune(c Capability, p Params) Profile {
	if c.ReducedMotion {
		return Profile{
			PixelDensity: 1,
			FrameRateCap: 12,
			TimeScale:    0,
			Speed:        0,
			Scale:        p.Scale,
			Noise:        math.Min(0.6, 0.6*p.Noise),
		}
	}

	if c.Mobile {
		return Profile{
			PixelDensity: 1,
			FrameRateCap: 24,
			TimeScale:    0.55,
			Speed:        p.Speed * 0.7,
			Scale:        p.Scale * 0.95,
			Noise:        math.Min(p.Noise, 1.0),
		}
	}

	q := p.Quality
	if int(q) >= len(desktopTiers) {
		q = QualityLow
	}
	tier := desktopTiers[q]

	noise := p.Noise
	if tier.capNoise {
		noise = math.Min(noise, 1.0)
	}

	return Profile{
		PixelDensity: tier.density,
		FrameRateCap: tier.fps,
		TimeScale:    tier.timeScale,
		Speed:        p.Speed * tier.speedMul,
		Scale:        p.Scale,
		Noise:        noise,
	}
}
