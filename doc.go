// Package silk renders the animated "silk" backdrop used behind the landing
// sections of the site.
//
// # Overview
//
// The backdrop is a procedural pattern evaluated per pixel. How fast it moves
// and how much it costs to draw depend on what the host can afford:
//
//	Capability -> Tune -> Profile -> Animator (clock) -> Shade -> pixels
//
// [Capability] carries the host signals (mobile viewport, reduced-motion
// preference, page visibility, viewport intersection). [Tune] maps those
// signals plus the requested [Quality] tier to an immutable [Profile].
// [Animator] advances the animation clock under the profile's frame-rate cap,
// and only while [Capability.Running] is true. [Shade] is the pure pattern
// function.
//
// # Quick Start
//
//	p := silk.DefaultParams()
//	prof := silk.Tune(silk.Capability{PageVisible: true, InViewport: true}, p)
//
//	var anim silk.Animator
//	anim.Step(16*time.Millisecond, true, prof)
//
//	u := silk.UniformsFor(prof, p)
//	c := silk.Shade(silk.Vec2{X: 0.5, Y: 0.5}, silk.Vec2{X: 0.5, Y: 0.5}, anim.Time(), u)
//
// Sub-packages build on this core:
//   - probe: capability detection and observer registration
//   - surface: CPU and device-backed drawables behind a priority registry
//   - shader: the WGSL twin of [Shade] and its SPIR-V compilation
//   - backdrop: the render surface component tying everything together
//   - integration/tcellview: a terminal host for the backdrop
//   - cmd/silkweb: the site server, which serves frames as PNG posters
//
// # Coordinate System
//
// [Shade] takes GL conventions: the fragment coordinate is a pixel centre with
// the origin at the bottom-left, and uv runs 0..1 across the surface.
package silk
