// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

// Class is the viewport class.
type Class uint8

const (
	// Desktop is any viewport wider than MobileBreakpoint.
	Desktop Class = iota
	// Mobile is a viewport at most MobileBreakpoint pixels wide.
	Mobile
)

// MobileBreakpoint is the widest viewport, in CSS pixels, classified Mobile.
const MobileBreakpoint = 768

// DefaultThreshold is the visible fraction at which the backdrop counts as
// being in the viewport.
const DefaultThreshold = 0.05

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ClassifyViewport returns the class of a viewport width in CSS pixels.
func ClassifyViewport(width int) Class {
	if width <= MobileBreakpoint {
		return Mobile
	}
	return Desktop
}

// InViewport reports whether a visible fraction meets threshold.
// A non-positive threshold means any intersection at all.
func InViewport(ratio, threshold float64) bool {
	if threshold <= 0 {
		return ratio > 0
	}
	return ratio >= threshold
}
