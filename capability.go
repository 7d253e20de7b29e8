package silk

// Capability is a snapshot of what the host environment reports.
// It is recomputed by the probe whenever one of its signals changes.
type Capability struct {
	// Mobile is true when the viewport falls in the mobile class.
	Mobile bool

	// ReducedMotion mirrors the user's motion-reduction preference.
	ReducedMotion bool

	// PageVisible is true while the hosting document is the active tab.
	PageVisible bool

	// InViewport is true while enough of the backdrop is on screen.
	InViewport bool
}

// Running reports whether the animation clock may advance.
// The clock is frozen whenever this is false.
func (c Capability) Running() bool {
	return c.PageVisible && c.InViewport && !c.ReducedMotion
}

// LeastAnimated is the capability assumed when the host cannot answer a
// query: reduced motion on a visible, on-screen element.
func LeastAnimated() Capability {
	return Capability{
		ReducedMotion: true,
		PageVisible:   true,
		InViewport:    true,
	}
}
