// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backdrop

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/probe"
	"github.com/gogpu/silk/surface"
)

// Default container size, matching an unstyled HTML canvas.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// Option configures a Backdrop during creation.
//
// Example:
//
//	b, err := backdrop.New(
//	    backdrop.WithParams(params),
//	    backdrop.WithProbe(p),
//	    backdrop.WithSize(1280, 720),
//	)
type Option func(*options)

type options struct {
	params   silk.Params
	registry *surface.Registry
	provider gpucontext.DeviceProvider
	probe    *probe.Probe
	initial  *silk.Capability
	width    int
	height   int
	workers  int
}

func defaultOptions() options {
	return options{
		params:   silk.DefaultParams(),
		registry: surface.Default(),
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

// WithParams sets the embedding parameters.
func WithParams(p silk.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithRegistry selects the surface registry. Tests use it to force a
// backend or a failure.
func WithRegistry(r *surface.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithDeviceProvider hands the host GPU device to the surface registry.
// Without one the CPU surface is used.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithProbe subscribes the backdrop to a capability probe. The probe's
// current capability is used immediately.
func WithProbe(p *probe.Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}

// WithCapability sets a fixed starting capability for hosts without a probe.
func WithCapability(c silk.Capability) Option {
	return func(o *options) {
		o.initial = &c
	}
}

// WithSize sets the initial container size in logical pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithWorkers bounds the goroutines used to shade one frame.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
