// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/silk"
)

// minBandRows is the smallest row band handed to one worker.
const minBandRows = 16

// ImageSurface is a CPU surface backed by an *image.RGBA.
//
// Shading is split into row bands evaluated in parallel. Each pixel is
// written exactly once, so the result does not depend on scheduling.
//
// Example:
//
//	s := surface.NewImageSurface(320, 180)
//	defer s.Close()
//
//	s.Shade(func(frag, uv silk.Vec2) silk.RGBA {
//	    return silk.Shade(frag, uv, t, u)
//	})
//	img := s.Snapshot()
type ImageSurface struct {
	img     *image.RGBA
	workers int
	closed  bool
}

// NewImageSurface creates a CPU surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = clampSize(width, height)
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceWithOptions creates a CPU surface from opts.
func NewImageSurfaceWithOptions(opts Options) *ImageSurface {
	s := NewImageSurface(opts.Width, opts.Height)
	s.workers = opts.Workers
	return s
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// Resize reallocates the pixel buffer.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	width, height = clampSize(width, height)
	if width == s.Width() && height == s.Height() {
		s.Clear()
		return nil
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Shade evaluates fn for every pixel.
func (s *ImageSurface) Shade(fn ShadeFunc) {
	if s.closed || fn == nil {
		return
	}
	shadeImage(s.img, fn, s.workers)
}

// Clear sets every pixel to transparent black.
func (s *ImageSurface) Clear() {
	if s.closed {
		return
	}
	clear(s.img.Pix)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(s.img.Rect)
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases the pixel buffer.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Capabilities returns the surface capabilities.
func (s *ImageSurface) Capabilities() Capabilities {
	return Capabilities{SupportsResize: true}
}

// shadeImage fills img with fn, splitting rows across workers.
func shadeImage(img *image.RGBA, fn ShadeFunc, workers int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	band := (h + workers - 1) / workers
	if band < minBandRows {
		band = minBandRows
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			shadeRows(img, fn, w, h, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func shadeRows(img *image.RGBA, fn ShadeFunc, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			frag, uv := silk.FragCoord(x, y, w, h)
			c := fn(frag, uv).NRGBA()
			// Alpha is 1 or 0 in practice; premultiply for image.RGBA.
			i := x * 4
			row[i+0] = premul(c.R, c.A)
			row[i+1] = premul(c.G, c.A)
			row[i+2] = premul(c.B, c.A)
			row[i+3] = c.A
		}
	}
}

func premul(v, a uint8) uint8 {
	if a == 0xff {
		return v
	}
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}
