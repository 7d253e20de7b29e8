// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/shader"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// plainProvider implements gpucontext.DeviceProvider without exposing HAL.
type plainProvider struct {
	device gpucontext.Device
	format gputypes.TextureFormat
}

func (p *plainProvider) Device() gpucontext.Device             { return p.device }
func (p *plainProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (p *plainProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (p *plainProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }
func (p *plainProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "mock", Type: gpucontext.AdapterTypeSoftware}
}

var (
	_ gpucontext.DeviceProvider = (*plainProvider)(nil)
	_ gpucontext.DeviceProvider = (*halProviderMock)(nil)
)

// halProviderMock also exposes its HAL device.
type halProviderMock struct {
	plainProvider
	hal any
}

func (p *halProviderMock) HalDevice() any { return p.hal }

type mockModule struct {
	hal.ShaderModule
	label string
}

// mockHALDevice records shader module lifetimes. Every other hal.Device
// method panics through the nil embedded interface.
type mockHALDevice struct {
	hal.Device
	created   int
	destroyed int
	spirvLen  int
	failWith  error
}

func (d *mockHALDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if d.failWith != nil {
		return nil, d.failWith
	}
	d.created++
	d.spirvLen = len(desc.Source.SPIRV)
	return &mockModule{label: desc.Label}, nil
}

func (d *mockHALDevice) DestroyShaderModule(m hal.ShaderModule) {
	d.destroyed++
}

func newHALProvider(dev hal.Device, format gputypes.TextureFormat) *halProviderMock {
	return &halProviderMock{
		plainProvider: plainProvider{device: &mockDevice{}, format: format},
		hal:           dev,
	}
}

// requireShaderCompiler skips when the WGSL compiler cannot handle the shader.
func requireShaderCompiler(t *testing.T) {
	t.Helper()
	if _, err := shader.CompileSPIRV(); err != nil {
		t.Skipf("shader compiler unavailable: %v", err)
	}
}

func TestNewDeviceSurfaceWithoutDevice(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"nil provider", Options{Width: 4, Height: 4}, ErrNoDevice},
		{"nil device", Options{Provider: &plainProvider{}}, ErrNoDevice},
		{"no hal", Options{Provider: &plainProvider{device: &mockDevice{}}}, ErrNoHALDevice},
		{"wrong hal type", Options{Provider: &halProviderMock{
			plainProvider: plainProvider{device: &mockDevice{}},
			hal:           "not a device",
		}}, ErrNoHALDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewDeviceSurface(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("surface should be nil on error")
			}
		})
	}
}

func TestNewDeviceSurfaceCreateModuleError(t *testing.T) {
	requireShaderCompiler(t)

	boom := errors.New("out of memory")
	dev := &mockHALDevice{failWith: boom}
	_, err := NewDeviceSurface(Options{Width: 8, Height: 8, Provider: newHALProvider(dev, gputypes.TextureFormatBGRA8Unorm)})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapping %v", err, boom)
	}
}

func TestDeviceSurfaceLifecycle(t *testing.T) {
	requireShaderCompiler(t)

	dev := &mockHALDevice{}
	s, err := NewDeviceSurface(Options{Width: 16, Height: 9, Provider: newHALProvider(dev, gputypes.TextureFormatUndefined)})
	if err != nil {
		t.Fatalf("NewDeviceSurface: %v", err)
	}
	if dev.created != 1 {
		t.Errorf("created = %d, want 1", dev.created)
	}
	if dev.spirvLen == 0 {
		t.Error("shader module created without SPIR-V")
	}
	if s.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm fallback", s.Format())
	}
	if m, ok := s.ShaderModule().(*mockModule); !ok || m.label != "silk" {
		t.Errorf("ShaderModule() = %v, want module labelled silk", s.ShaderModule())
	}
	if !s.Capabilities().Hardware {
		t.Error("Hardware = false, want true")
	}

	s.Shade(func(frag, uv silk.Vec2) silk.RGBA { return silk.RGBA{B: 1, A: 1} })
	if got := s.Snapshot().RGBAAt(3, 3).B; got != 255 {
		t.Errorf("snapshot B = %d, want 255", got)
	}

	if err := s.Resize(32, 18); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	s.SetUniforms(silk.Uniforms{Speed: 2, Scale: 1, Noise: 1, Color: silk.RGB{R: 1}}, 3)
	b := s.UniformBytes()
	if len(b) != shader.UniformSize {
		t.Fatalf("len(UniformBytes) = %d, want %d", len(b), shader.UniformSize)
	}
	if w := math.Float32frombits(binary.LittleEndian.Uint32(b[16:])); w != 32 {
		t.Errorf("uniform width = %v, want 32", w)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if dev.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", dev.destroyed)
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot after Close should be nil")
	}
}
