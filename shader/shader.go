// Package shader holds the WGSL version of the silk pattern and the helpers
// a GPU host needs to run it: SPIR-V compilation and uniform packing.
//
// The WGSL entry points are vs_main (a full-screen triangle drawn with three
// vertices and no vertex buffer) and fs_main. The uniform block is bound at
// group 0, binding 0.
package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/naga"
	"github.com/gogpu/silk"
)

// Source is the WGSL source of the silk pattern.
//
//go:embed silk.wgsl
var Source string

// Entry point names in Source.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// UniformSize is the size in bytes of the packed uniform block.
const UniformSize = 48

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// CompileSPIRV compiles Source to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	return Compile(Source)
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	if len(words) == 0 || words[0] != spirvMagic {
		return nil, fmt.Errorf("shader: output is not a SPIR-V module")
	}
	return words, nil
}

// Uniforms is the CPU mirror of the WGSL Params block.
type Uniforms struct {
	Color    silk.RGB
	Width    float32
	Height   float32
	Time     float32
	Speed    float32
	Scale    float32
	Noise    float32
	Rotation float32
}

// UniformsFor builds the block for one frame of a w×h surface.
func UniformsFor(u silk.Uniforms, t float64, w, h int) Uniforms {
	return Uniforms{
		Color:    u.Color,
		Width:    float32(w),
		Height:   float32(h),
		Time:     float32(t),
		Speed:    float32(u.Speed),
		Scale:    float32(u.Scale),
		Noise:    float32(u.Noise),
		Rotation: float32(u.Rotation),
	}
}

// Bytes packs the block with WGSL uniform layout:
//
//	 0 color      vec4<f32>
//	16 resolution vec2<f32>
//	24 time, 28 speed, 32 scale, 36 noise, 40 rotation (f32)
//	44 padding
func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformSize)
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
	}
	put(0, float32(u.Color.R))
	put(4, float32(u.Color.G))
	put(8, float32(u.Color.B))
	put(12, 1)
	put(16, u.Width)
	put(20, u.Height)
	put(24, u.Time)
	put(28, u.Speed)
	put(32, u.Scale)
	put(36, u.Noise)
	put(40, u.Rotation)
	return b
}
