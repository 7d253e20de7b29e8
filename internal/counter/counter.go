// Package counter implements the count-up animation of the facts section.
package counter

import (
	"math"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/silk/internal/locale"
)

// DefaultDuration is how long a counter takes to reach its target.
const DefaultDuration = 1200 * time.Millisecond

// EaseOutCubic maps progress p in [0,1] to 1-(1-p)³. p is clamped.
func EaseOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	q := 1 - p
	return 1 - q*q*q
}

// Value returns the displayed value elapsed into the animation.
// A non-positive duration shows the target immediately.
func Value(target float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return 0
	}
	return target * EaseOutCubic(float64(elapsed)/float64(duration))
}

// Format prints v with exactly decimals fraction digits in the number
// format of l, including grouping separators.
func Format(l locale.Locale, v float64, decimals int) string {
	decimals = max(decimals, 0)
	p := message.NewPrinter(l.Tag())
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

// Frames samples the animation at a fixed step and returns the formatted
// values, ending with the target. It is used to pre-render counters for
// clients without scripting.
func Frames(l locale.Locale, target float64, decimals int, duration, step time.Duration) []string {
	if step <= 0 {
		step = duration
	}
	var out []string
	for t := time.Duration(0); t < duration; t += step {
		out = append(out, Format(l, Value(target, t, duration), decimals))
	}
	return append(out, Format(l, target, decimals))
}
