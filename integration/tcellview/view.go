// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tcellview

import (
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/backdrop"
	"github.com/gogpu/silk/probe"
)

// CellWidth is the assumed width of one terminal column in CSS pixels.
// A 96-column terminal is therefore exactly at the mobile breakpoint.
const CellWidth = 8

// upperHalf draws the top pixel in the foreground colour.
const upperHalf = '▀'

// Screen is the part of tcell.Screen a View draws into.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// focusScreen is the part of tcell.Screen that reports focus changes.
type focusScreen interface {
	EnableFocus()
	DisableFocus()
}

// FocusSource returns a probe source that turns on terminal focus
// reporting. Focus events themselves arrive through View.HandleEvent.
func FocusSource(s focusScreen) probe.Source {
	return probe.SourceFunc(func(*probe.Probe) (func(), error) {
		s.EnableFocus()
		return s.DisableFocus, nil
	})
}

// View connects a backdrop and its probe to a terminal.
type View struct {
	backdrop *backdrop.Backdrop
	probe    *probe.Probe

	cols, rows int
	last       time.Time
	cells      *image.RGBA
}

// New creates a view. p may be nil when the backdrop has a fixed capability.
func New(b *backdrop.Backdrop, p *probe.Probe) *View {
	return &View{backdrop: b, probe: p}
}

// Backdrop returns the presented backdrop.
func (v *View) Backdrop() *backdrop.Backdrop {
	return v.backdrop
}

// HandleEvent applies resize and focus events and reports whether ev was
// one of them.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		v.Resize(cols, rows)
		return true
	case *tcell.EventFocus:
		if v.probe != nil {
			v.probe.SetPageVisible(ev.Focused)
		}
		return true
	}
	return false
}

// Resize sets the terminal size in cells.
func (v *View) Resize(cols, rows int) {
	v.cols, v.rows = max(cols, 0), max(rows, 0)
	if v.probe != nil {
		v.probe.SetViewportWidth(v.cols * CellWidth)
	}
	if err := v.backdrop.Resize(v.cols, v.rows*2); err != nil {
		silk.Logger().Warn("tcellview: resize failed", "err", err)
	}
	v.cells = nil
}

// Tick advances the backdrop by the time since the previous tick and
// reports whether a new frame is due.
func (v *View) Tick(now time.Time) bool {
	var delta time.Duration
	if !v.last.IsZero() {
		delta = now.Sub(v.last)
	}
	v.last = now
	return v.backdrop.Frame(delta) || v.backdrop.NeedsRender() || v.cells == nil
}

// Draw renders the current frame into s and shows it.
func (v *View) Draw(s Screen) {
	if v.cols == 0 || v.rows == 0 {
		v.Resize(s.Size())
	}
	if v.cols == 0 || v.rows == 0 {
		return
	}

	v.backdrop.Render()
	frame := v.backdrop.Snapshot()

	// Scale the pixel buffer (density may exceed 1) down to two pixels per cell.
	if v.cells == nil || v.cells.Rect.Dx() != v.cols || v.cells.Rect.Dy() != v.rows*2 {
		v.cells = image.NewRGBA(image.Rect(0, 0, v.cols, v.rows*2))
	}
	draw.ApproxBiLinear.Scale(v.cells, v.cells.Rect, frame, frame.Rect, draw.Src, nil)

	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			top := v.cells.RGBAAt(x, 2*y)
			bottom := v.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(x, y, upperHalf, nil, style)
		}
	}
	s.Show()
}
