package silk

import "time"

// Clock is the animation clock. Its time only ever grows, and suspension
// freezes it without resetting it.
type Clock struct {
	elapsed float64
}

// Time returns the accumulated animation time in seconds.
func (c *Clock) Time() float64 {
	return c.elapsed
}

func (c *Clock) advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Animator advances a Clock under a frame-rate cap.
//
// The zero value is ready to use. An Animator is not safe for concurrent use;
// it belongs to the render loop.
type Animator struct {
	clock    Clock
	throttle float64
}

// Time returns the animation clock time in seconds.
func (a *Animator) Time() float64 {
	return a.clock.Time()
}

// Step feeds one frame's wall-clock delta into the animator and reports
// whether the clock advanced.
//
// When running is false nothing changes, including the throttle counter, so
// a hidden interval never produces a catch-up jump. Otherwise the delta is
// accumulated; once the total reaches 1/FrameRateCap the counter resets and
// the clock advances by TimeScale times this frame's delta.
func (a *Animator) Step(delta time.Duration, running bool, p Profile) bool {
	if !running || delta <= 0 {
		return false
	}

	d := delta.Seconds()
	a.throttle += d

	step := 0.0
	if p.FrameRateCap > 0 {
		step = 1 / float64(p.FrameRateCap)
	}
	if a.throttle < step {
		return false
	}
	a.throttle = 0

	a.clock.advance(p.TimeScale * d)
	return true
}
