// Package banner draws share images: a backdrop frame with a localized
// headline on top.
//
// Headlines are shaped with HarfBuzz (go-text), so Arabic joins and runs
// right to left, and the glyph outlines are filled with an anti-aliasing
// vector rasterizer. The built-in font is Go Regular, which covers Latin
// only; an Arabic headline needs a font with Arabic glyphs, otherwise
// Render reports ErrMissingGlyphs.
package banner

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/silk/internal/locale"
)

// Errors.
var (
	ErrMissingGlyphs = errors.New("banner: font has no glyphs for the text")
	ErrEmptyText     = errors.New("banner: empty text")
)

// Text layout constants, as fractions of the image height.
const (
	headlineSize = 0.12
	minSize      = 12
	marginFrac   = 0.08
	scrimAlpha   = 96
)

// Renderer draws headlines in one font. It is safe for concurrent use.
type Renderer struct {
	outlines *sfnt.Font
	shapes   *gtfont.Font

	mu     sync.Mutex
	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
}

// New parses a TrueType or OpenType font. nil data selects Go Regular.
func New(fontData []byte) (*Renderer, error) {
	if fontData == nil {
		fontData = goregular.TTF
	}
	outlines, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("banner: parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("banner: parse font: %w", err)
	}
	return &Renderer{outlines: outlines, shapes: face.Font}, nil
}

// glyph is one positioned glyph of a shaped line, in pixels relative to the
// line origin.
type glyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// line is a shaped headline.
type line struct {
	glyphs []glyph
	width  float64
}

// shape lays text out at size pixels per em.
func (r *Renderer) shape(text string, dir di.Direction, size float64) (line, error) {
	runes := []rune(text)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(r.shapes),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	if dir == di.DirectionRTL {
		in.Language = language.NewLanguage("ar")
	}
	out := r.shaper.Shape(in)

	var ln line
	pen := 0.0
	for _, g := range out.Glyphs {
		if g.GlyphID == 0 && !unicode.IsSpace(runes[g.TextIndex()]) {
			return line{}, ErrMissingGlyphs
		}
		ln.glyphs = append(ln.glyphs, glyph{
			id: sfnt.GlyphIndex(g.GlyphID),
			x:  pen + fromFixed(g.XOffset),
			y:  -fromFixed(g.YOffset),
		})
		pen += fromFixed(g.Advance)
	}
	ln.width = pen
	return ln, nil
}

// Render draws text centred on a copy of bg and returns it. Arabic locales
// shape right to left. The text shrinks to fit the width.
func (r *Renderer) Render(bg image.Image, l locale.Locale, text string) (*image.RGBA, error) {
	if len([]rune(text)) == 0 {
		return nil, ErrEmptyText
	}
	b := bg.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, bg, b.Min, draw.Src)

	dir := di.DirectionLTR
	if l.RTL() {
		dir = di.DirectionRTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := float64(b.Dx()), float64(b.Dy())
	size := h * headlineSize
	maxWidth := w * (1 - 2*marginFrac)

	ln, err := r.shape(text, dir, size)
	if err != nil {
		return nil, err
	}
	if ln.width > maxWidth && ln.width > 0 {
		size = max(minSize, size*maxWidth/ln.width)
		if ln, err = r.shape(text, dir, size); err != nil {
			return nil, err
		}
	}

	originX := (w - ln.width) / 2
	baseline := h/2 + size*0.35

	band := image.Rect(0, int(h/2-size), dst.Rect.Dx(), int(h/2+size))
	draw.Draw(dst, band, image.NewUniform(color.NRGBA{A: scrimAlpha}), image.Point{}, draw.Over)

	z := vector.NewRasterizer(dst.Rect.Dx(), dst.Rect.Dy())
	if err := r.fill(z, ln, originX, baseline, size); err != nil {
		return nil, err
	}
	z.Draw(dst, dst.Rect, image.White, image.Point{})
	return dst, nil
}

// fill adds the outlines of every glyph of ln to z.
func (r *Renderer) fill(z *vector.Rasterizer, ln line, ox, oy, size float64) error {
	ppem := fixed.Int26_6(size * 64)
	for _, g := range ln.glyphs {
		segs, err := r.outlines.LoadGlyph(&r.buf, g.id, ppem, nil)
		if err != nil {
			return fmt.Errorf("banner: glyph %d: %w", g.id, err)
		}
		gx, gy := float32(ox+g.x), float32(oy+g.y)
		pt := func(p fixed.Point26_6) (float32, float32) {
			return gx + float32(p.X)/64, gy + float32(p.Y)/64
		}
		open := false
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(pt(s.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				dx, dy := pt(s.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			z.ClosePath()
		}
	}
	return nil
}

// detectScript returns the script of the first letter of runes.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// RenderOrFallback is Render, but when the font cannot draw text it draws
// fallback left to right instead.
func (r *Renderer) RenderOrFallback(bg image.Image, l locale.Locale, text, fallback string) (*image.RGBA, error) {
	img, err := r.Render(bg, l, text)
	if errors.Is(err, ErrMissingGlyphs) && fallback != "" {
		return r.Render(bg, locale.EN, fallback)
	}
	return img, err
}
