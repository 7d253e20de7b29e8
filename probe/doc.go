// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package probe detects the host capabilities that drive backdrop tuning.
//
// A [Probe] holds the current [silk.Capability]. Host adapters push signal
// changes into it (viewport width, reduced-motion preference, page
// visibility, viewport intersection) either directly or through an attached
// [Source]; observers registered with [Probe.Subscribe] are told about every
// change.
//
// Queries the host cannot answer fail soft: the probe falls back to reduced
// motion, the least animated and cheapest configuration, and logs a warning
// instead of returning an error.
//
//	p := probe.New()
//	defer p.Close()
//
//	cancel := p.Subscribe(func(c silk.Capability) { ... })
//	defer cancel()
//
//	p.SetViewportWidth(1280)
//	p.SetIntersection(0.4)
package probe
