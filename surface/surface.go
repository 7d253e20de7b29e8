// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/silk"
)

// ShadeFunc computes the colour of one pixel.
//
// frag is the fragment coordinate of the pixel centre with the origin at the
// bottom-left corner; uv is frag divided by the surface size.
type ShadeFunc func(frag, uv silk.Vec2) silk.RGBA

// Surface is a pixel buffer the backdrop shades into.
//
// A Surface is not safe for concurrent use; it is owned by a single render
// loop.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize changes the pixel dimensions. Contents are cleared.
	// Non-positive dimensions are clamped to 1.
	Resize(width, height int) error

	// Shade evaluates fn for every pixel and stores the result.
	Shade(fn ShadeFunc)

	// Clear sets every pixel to transparent black.
	Clear()

	// Snapshot returns a copy of the surface contents.
	// It returns nil after Close.
	Snapshot() *image.RGBA

	// Close releases resources. Calling Close more than once is a no-op.
	Close() error

	// Capabilities describes what the surface supports.
	Capabilities() Capabilities
}

// Capabilities describes the optional features a surface supports.
type Capabilities struct {
	// SupportsResize indicates Resize keeps the surface usable.
	SupportsResize bool

	// Hardware indicates the surface holds GPU resources.
	Hardware bool

	// MaxWidth and MaxHeight bound Resize. Zero means unlimited.
	MaxWidth  int
	MaxHeight int
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Provider is the host GPU device. Backends that need a device fail
	// when it is nil.
	Provider gpucontext.DeviceProvider

	// Workers bounds the goroutines used to shade a frame.
	// Zero selects GOMAXPROCS.
	Workers int
}

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

func clampSize(width, height int) (int, int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}
