// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/silk"
)

// ErrUnsupported is returned by a Source that cannot observe one of its
// signals on the current host.
var ErrUnsupported = errors.New("probe: signal not supported by host")

// Source is a host adapter that feeds signals into a Probe.
//
// Watch starts observing and returns a function that stops observing and
// releases everything Watch registered. A Source that cannot observe its
// signals returns an error; the probe then falls back to reduced motion.
type Source interface {
	Watch(p *Probe) (stop func(), err error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(p *Probe) (stop func(), err error)

// Watch calls f(p).
func (f SourceFunc) Watch(p *Probe) (func(), error) { return f(p) }

// Option configures a Probe.
type Option func(*Probe)

// WithThreshold sets the visible fraction used by SetIntersection.
func WithThreshold(threshold float64) Option {
	return func(p *Probe) {
		p.threshold = threshold
	}
}

// WithInitial sets the capability reported before any signal arrives.
func WithInitial(c silk.Capability) Option {
	return func(p *Probe) {
		p.cap = c
	}
}

// Probe tracks the current capability and notifies observers of changes.
// It is safe for concurrent use.
type Probe struct {
	mu        sync.Mutex
	cap       silk.Capability
	threshold float64
	observers map[uint64]func(silk.Capability)
	nextID    uint64
	stops     []func()
	closed    bool
}

// New creates a probe. Until told otherwise it assumes a visible,
// on-screen desktop page without a reduced-motion preference.
func New(opts ...Option) *Probe {
	p := &Probe{
		cap:       silk.Capability{PageVisible: true, InViewport: true},
		threshold: DefaultThreshold,
		observers: make(map[uint64]func(silk.Capability)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Capability returns the current capability.
func (p *Probe) Capability() silk.Capability {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cap
}

// Subscribe registers fn to be called with the new capability after every
// change. The returned cancel function deregisters fn; calling it more than
// once is harmless.
func (p *Probe) Subscribe(fn func(silk.Capability)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || fn == nil {
		return func() {}
	}

	id := p.nextID
	p.nextID++
	p.observers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.observers, id)
			p.mu.Unlock()
		})
	}
}

// Attach starts src and keeps its stop function until Close.
// A source that fails to start makes the probe fall back to reduced motion.
func (p *Probe) Attach(src Source) {
	stop, err := src.Watch(p)
	if err != nil {
		silk.Logger().Warn("probe: source unavailable, assuming reduced motion", "err", err)
		p.update(func(c *silk.Capability) { c.ReducedMotion = true })
		if stop != nil {
			stop()
		}
		return
	}
	if stop == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		stop()
		return
	}
	p.stops = append(p.stops, stop)
	p.mu.Unlock()
}

// Listeners returns the number of registered observers plus attached
// sources. It is zero after Close.
func (p *Probe) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.observers) + len(p.stops)
}

// Close stops every attached source and drops every observer.
func (p *Probe) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	stops := p.stops
	p.stops = nil
	p.observers = make(map[uint64]func(silk.Capability))
	p.mu.Unlock()

	// Reverse order, like deferred teardown.
	for i := len(stops) - 1; i >= 0; i-- {
		stops[i]()
	}
}

// SetViewportWidth reports a new viewport width in CSS pixels.
func (p *Probe) SetViewportWidth(width int) {
	p.update(func(c *silk.Capability) { c.Mobile = ClassifyViewport(width) == Mobile })
}

// SetReducedMotion reports the motion-reduction preference.
func (p *Probe) SetReducedMotion(reduced bool) {
	p.update(func(c *silk.Capability) { c.ReducedMotion = reduced })
}

// SetPageVisible reports whether the hosting page is the visible tab.
func (p *Probe) SetPageVisible(visible bool) {
	p.update(func(c *silk.Capability) { c.PageVisible = visible })
}

// SetIntersection reports the fraction of the backdrop that is on screen.
func (p *Probe) SetIntersection(ratio float64) {
	p.mu.Lock()
	threshold := p.threshold
	p.mu.Unlock()
	p.update(func(c *silk.Capability) { c.InViewport = InViewport(ratio, threshold) })
}

// Unsupported records that the host cannot answer some query. The probe
// falls back to reduced motion.
func (p *Probe) Unsupported(query string) {
	silk.Logger().Warn("probe: query unsupported, assuming reduced motion", "query", query)
	p.SetReducedMotion(true)
}

// update applies fn and notifies observers outside the lock if the
// capability changed.
func (p *Probe) update(fn func(*silk.Capability)) {
	p.mu.Lock()
	prev := p.cap
	fn(&p.cap)
	next := p.cap
	if next == prev || p.closed {
		p.mu.Unlock()
		return
	}

	ids := make([]uint64, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(silk.Capability), len(ids))
	for i, id := range ids {
		fns[i] = p.observers[id]
	}
	p.mu.Unlock()

	silk.Logger().Debug("probe: capability changed",
		"mobile", next.Mobile,
		"reducedMotion", next.ReducedMotion,
		"visible", next.PageVisible,
		"inViewport", next.InViewport)

	for _, f := range fns {
		f(next)
	}
}
