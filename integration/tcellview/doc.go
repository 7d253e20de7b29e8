// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellview presents a silk backdrop in a true-colour terminal.
//
// The terminal plays the role of the hosting page:
//
//   - the terminal window is the container; resize events resize it
//   - focus events stand in for page visibility
//   - the column count, converted to CSS pixels, drives the mobile class
//
// Each terminal cell shows two backdrop pixels using the upper half block,
// with the foreground holding the top pixel and the background the bottom
// one, so a cols×rows terminal is a cols×2·rows container.
//
// # Usage
//
//	v := tcellview.New(b, p)
//	p.Attach(tcellview.FocusSource(screen))
//
//	for {
//	    select {
//	    case ev := <-events:
//	        v.HandleEvent(ev)
//	    case now := <-ticker.C:
//	        v.Tick(now)
//	        v.Draw(screen)
//	    }
//	}
//
// View is NOT safe for concurrent use; it belongs to the loop that owns the
// backdrop.
package tcellview
