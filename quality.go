package silk

import (
	"fmt"
	"strings"
)

// Quality selects a bundle of performance/fidelity trade-offs for desktop
// rendering. Mobile and reduced-motion hosts ignore it.
type Quality uint8

const (
	// QualityLow is the cheapest desktop tier and the default.
	QualityLow Quality = iota
	// QualityMedium balances motion and cost.
	QualityMedium
	// QualityHigh runs at the display's full rate.
	QualityHigh
)

// String returns the tier name.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return fmt.Sprintf("Quality(%d)", uint8(q))
	}
}

// ParseQuality parses "low", "medium" or "high" (case-insensitive).
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	}
	return QualityLow, fmt.Errorf("silk: unknown quality tier %q", s)
}
