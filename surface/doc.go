// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel targets the silk backdrop renders into.
//
// A Surface is a fixed-size pixel buffer evaluated one pixel at a time by a
// ShadeFunc. Two backends are built in:
//
//   - ImageSurface: CPU rendering into an *image.RGBA (backend "image")
//   - DeviceSurface: a surface bound to a host GPU device (backend "device")
//
// # Registry
//
// Backends are selected through a priority Registry. NewSurface tries every
// available backend from the highest priority down, so when the host has no
// GPU device the "device" backend fails and the "image" backend is used:
//
//	s, err := surface.NewSurface(surface.Options{
//	    Width:    1280,
//	    Height:   720,
//	    Provider: host, // may be nil
//	})
//
// Third-party backends register with Register or Registry.Register.
//
// # Device surfaces
//
// The device backend receives a gpucontext.DeviceProvider from the host and
// never creates a device of its own. The provider must also expose its HAL
// device through a HalDevice() any method. The pattern shader is compiled to
// SPIR-V with naga and turned into a HAL shader module that the host binds
// together with the packed uniform block.
package surface
