// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backdrop renders the animated silk background of a container.
//
// A Backdrop ties the pieces of silk together: capabilities from a probe
// are tuned into a profile, the profile throttles the animation clock and
// sizes the pixel buffer, and every rendered frame evaluates the pattern
// function over a surface.
//
// Typical host loop:
//
//	b, err := backdrop.New(backdrop.WithProbe(p), backdrop.WithSize(w, h))
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	ticker := time.NewTicker(time.Second / 60)
//	defer ticker.Stop()
//	return b.Run(ctx, ticker.C)
//
// Surface failures never reach the caller. The backdrop logs a warning and
// stays degraded, presenting a transparent frame.
package backdrop
