// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/shader"
)

// Device surface errors.
var (
	// ErrNoDevice is returned when the provider has no GPU device.
	ErrNoDevice = errors.New("surface: no GPU device")

	// ErrNoHALDevice is returned when the provider does not expose a
	// hal.Device through HalDevice.
	ErrNoHALDevice = errors.New("surface: provider does not expose a HAL device")
)

// halProvider is implemented by hosts that share their HAL device.
type halProvider interface {
	HalDevice() any
}

// DeviceSurface is a surface bound to a host GPU device.
//
// The device surface RECEIVES its device from the host and never creates
// one. On creation it compiles the pattern shader to SPIR-V and creates a
// shader module on the host device. A host presenting on the GPU binds
// ShaderModule with UniformBytes as the group 0 uniform block; Snapshot
// pixels are evaluated on the CPU with the same function.
type DeviceSurface struct {
	provider gpucontext.DeviceProvider
	device   hal.Device
	module   hal.ShaderModule
	format   gputypes.TextureFormat

	img      *image.RGBA
	workers  int
	uniforms shader.Uniforms
	closed   bool
}

// NewDeviceSurface creates a surface on the provider's device.
func NewDeviceSurface(opts Options) (*DeviceSurface, error) {
	if opts.Provider == nil || opts.Provider.Device() == nil {
		return nil, ErrNoDevice
	}
	hp, ok := opts.Provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}

	spirv, err := shader.CompileSPIRV()
	if err != nil {
		return nil, fmt.Errorf("surface: device: %w", err)
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "silk",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("surface: device: create shader module: %w", err)
	}

	format := opts.Provider.SurfaceFormat()
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}

	w, h := clampSize(opts.Width, opts.Height)
	silk.Logger().Debug("surface: device surface created",
		"width", w, "height", h, "format", format)

	return &DeviceSurface{
		provider: opts.Provider,
		device:   device,
		module:   module,
		format:   format,
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
		workers:  opts.Workers,
	}, nil
}

// Width returns the surface width.
func (s *DeviceSurface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the surface height.
func (s *DeviceSurface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// Resize reallocates the CPU mirror. The shader module is size independent.
func (s *DeviceSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	width, height = clampSize(width, height)
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.uniforms.Width = float32(width)
	s.uniforms.Height = float32(height)
	return nil
}

// Shade evaluates fn into the CPU mirror.
func (s *DeviceSurface) Shade(fn ShadeFunc) {
	if s.closed || fn == nil {
		return
	}
	shadeImage(s.img, fn, s.workers)
}

// Clear sets every pixel of the CPU mirror to transparent black.
func (s *DeviceSurface) Clear() {
	if s.closed {
		return
	}
	clear(s.img.Pix)
}

// Snapshot returns a copy of the CPU mirror.
func (s *DeviceSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(s.img.Rect)
	copy(result.Pix, s.img.Pix)
	return result
}

// SetUniforms records the uniform block for the next GPU draw.
// Width and Height are taken from the surface.
func (s *DeviceSurface) SetUniforms(u silk.Uniforms, t float64) {
	s.uniforms = shader.UniformsFor(u, t, s.Width(), s.Height())
}

// UniformBytes returns the packed uniform block.
func (s *DeviceSurface) UniformBytes() []byte {
	return s.uniforms.Bytes()
}

// ShaderModule returns the compiled pattern shader.
func (s *DeviceSurface) ShaderModule() hal.ShaderModule {
	return s.module
}

// Format returns the texture format the host presents in.
func (s *DeviceSurface) Format() gputypes.TextureFormat {
	return s.format
}

// Provider returns the host device provider.
func (s *DeviceSurface) Provider() gpucontext.DeviceProvider {
	return s.provider
}

// Close destroys the shader module. The device belongs to the host and is
// left alone.
func (s *DeviceSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.module != nil {
		s.device.DestroyShaderModule(s.module)
		s.module = nil
	}
	s.img = nil
	return nil
}

// Capabilities returns the surface capabilities.
func (s *DeviceSurface) Capabilities() Capabilities {
	return Capabilities{
		SupportsResize: true,
		Hardware:       true,
	}
}
