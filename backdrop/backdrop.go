// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backdrop

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/surface"
)

// uniformSink is implemented by surfaces that upload uniforms to a GPU.
type uniformSink interface {
	SetUniforms(u silk.Uniforms, t float64)
}

// Backdrop is the animated silk background of one container.
//
// Capability updates may arrive on any goroutine; they are published
// through an atomic pointer and read once per frame. Everything else
// (Resize, Frame, Render, Snapshot, Run) belongs to a single render
// goroutine.
type Backdrop struct {
	params   silk.Params
	registry *surface.Registry
	opts     surface.Options

	capability atomic.Pointer[silk.Capability]
	cancel     func()
	closeOnce  sync.Once

	surf     surface.Surface
	degraded bool

	width, height int
	profile       silk.Profile
	anim          silk.Animator
	dirty         bool
}

// New creates a backdrop and its surface.
//
// Invalid params are the only error. When no surface backend can be created
// the backdrop is degraded: it logs a warning, renders nothing and snapshots
// as a transparent image of the container size.
func New(opts ...Option) (*Backdrop, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.params.Validate(); err != nil {
		return nil, fmt.Errorf("backdrop: %w", err)
	}

	b := &Backdrop{
		params:   o.params,
		registry: o.registry,
		opts: surface.Options{
			Provider: o.provider,
			Workers:  o.workers,
		},
		width:  max(o.width, 0),
		height: max(o.height, 0),
		dirty:  true,
	}

	c := silk.LeastAnimated()
	if o.initial != nil {
		c = *o.initial
	}
	if o.probe != nil {
		c = o.probe.Capability()
		b.cancel = o.probe.Subscribe(b.SetCapability)
	}
	b.capability.Store(&c)
	b.profile = silk.Tune(c, b.params)

	b.openSurface()
	return b, nil
}

// openSurface creates the surface or enters degraded mode.
func (b *Backdrop) openSurface() {
	pw, ph := b.PixelSize()
	opts := b.opts
	opts.Width, opts.Height = pw, ph

	var (
		s   surface.Surface
		err error
	)
	if b.registry == nil {
		err = surface.ErrNoBackendAvailable
	} else {
		s, err = b.registry.NewSurface(opts)
	}
	if err != nil {
		silk.Logger().Warn("backdrop: surface unavailable, rendering disabled", "err", err)
		b.degraded = true
		return
	}
	silk.Logger().Info("backdrop: surface ready",
		"width", pw, "height", ph, "hardware", s.Capabilities().Hardware)
	b.surf = s
}

// SetCapability publishes a new host capability. It is safe to call from
// any goroutine; the render loop picks it up on the next Frame.
func (b *Backdrop) SetCapability(c silk.Capability) {
	b.capability.Store(&c)
}

// Capability returns the last published capability.
func (b *Backdrop) Capability() silk.Capability {
	return *b.capability.Load()
}

// Params returns the embedding parameters.
func (b *Backdrop) Params() silk.Params {
	return b.params
}

// SetParams replaces the embedding parameters and retunes the profile.
func (b *Backdrop) SetParams(p silk.Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("backdrop: %w", err)
	}
	b.params = p
	b.retune(b.Capability())
	b.dirty = true
	return nil
}

// Profile returns the current tuning profile.
func (b *Backdrop) Profile() silk.Profile {
	return b.profile
}

// Time returns the animation clock time in seconds.
func (b *Backdrop) Time() float64 {
	return b.anim.Time()
}

// Degraded reports whether the backdrop has no surface.
func (b *Backdrop) Degraded() bool {
	return b.degraded
}

// NeedsRender reports whether the surface content is stale: the clock,
// size or profile changed since the last Render.
func (b *Backdrop) NeedsRender() bool {
	return b.dirty
}

// Surface returns the underlying surface, or nil when degraded.
func (b *Backdrop) Surface() surface.Surface {
	return b.surf
}

// Size returns the container size in logical pixels.
func (b *Backdrop) Size() (width, height int) {
	return b.width, b.height
}

// PixelSize returns the pixel buffer size: the container size scaled by the
// profile's pixel density and rounded.
func (b *Backdrop) PixelSize() (width, height int) {
	d := b.profile.PixelDensity
	if d <= 0 {
		d = 1
	}
	return int(math.Round(float64(b.width) * d)), int(math.Round(float64(b.height) * d))
}

// Resize matches the backdrop to a new container size. The profile is
// retuned first so the pixel buffer uses the latest density.
func (b *Backdrop) Resize(width, height int) error {
	b.width, b.height = max(width, 0), max(height, 0)
	b.retune(b.Capability())
	return b.resizeSurface()
}

func (b *Backdrop) resizeSurface() error {
	b.dirty = true
	if b.surf == nil {
		return nil
	}
	pw, ph := b.PixelSize()
	if pw == b.surf.Width() && ph == b.surf.Height() {
		return nil
	}
	if err := b.surf.Resize(pw, ph); err != nil {
		return fmt.Errorf("backdrop: resize: %w", err)
	}
	silk.Logger().Debug("backdrop: resized", "width", b.width, "height", b.height,
		"pixelWidth", pw, "pixelHeight", ph)
	return nil
}

// retune recomputes the profile for c and follows density changes.
func (b *Backdrop) retune(c silk.Capability) {
	prof := silk.Tune(c, b.params)
	if prof == b.profile {
		return
	}
	density := b.profile.PixelDensity
	b.profile = prof
	silk.Logger().Debug("backdrop: profile changed",
		"fps", prof.FrameRateCap, "timeScale", prof.TimeScale, "density", prof.PixelDensity)
	if prof.PixelDensity != density {
		if err := b.resizeSurface(); err != nil {
			silk.Logger().Warn("backdrop: density change failed", "err", err)
		}
	}
}

// Frame feeds one wall-clock delta through the throttle and reports whether
// the animation clock advanced. The clock never moves while the capability
// is not running.
func (b *Backdrop) Frame(delta time.Duration) bool {
	c := b.Capability()
	b.retune(c)
	if b.anim.Step(delta, c.Running(), b.profile) {
		b.dirty = true
		return true
	}
	return false
}

// Render shades the surface at the current clock time.
func (b *Backdrop) Render() {
	if b.degraded || b.surf == nil {
		return
	}
	t := b.anim.Time()
	u := silk.UniformsFor(b.profile, b.params)
	if sink, ok := b.surf.(uniformSink); ok {
		sink.SetUniforms(u, t)
	}
	b.surf.Shade(func(frag, uv silk.Vec2) silk.RGBA {
		return silk.Shade(frag, uv, t, u)
	})
	b.dirty = false
}

// Snapshot returns the current frame. A degraded backdrop returns a fully
// transparent image of the container size.
func (b *Backdrop) Snapshot() *image.RGBA {
	if b.degraded || b.surf == nil {
		return image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	}
	if b.dirty {
		b.Render()
	}
	return b.surf.Snapshot()
}

// Run drives Frame and Render from tick until ctx is done. Deltas are the
// wall-clock gaps between ticks. Run returns ctx.Err().
//
// A frame is rendered when the clock advanced or the backdrop changed size
// or profile since the last render.
func (b *Backdrop) Run(ctx context.Context, tick <-chan time.Time) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-tick:
			if !ok {
				return nil
			}
			var delta time.Duration
			if !last.IsZero() {
				delta = now.Sub(last)
			}
			last = now
			if b.Frame(delta) || b.dirty {
				b.Render()
			}
		}
	}
}

// Close cancels the probe subscription and releases the surface.
// It is safe to call more than once.
func (b *Backdrop) Close() error {
	var err error
	b.closeOnce.Do(func() {
		if b.cancel != nil {
			b.cancel()
			b.cancel = nil
		}
		if b.surf != nil {
			err = b.surf.Close()
			b.surf = nil
		}
		b.degraded = true
	})
	return err
}
