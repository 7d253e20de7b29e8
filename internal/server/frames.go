// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/backdrop"
	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/locale"
	"github.com/gogpu/silk/probe"
	"github.com/gogpu/silk/shader"
)

// Poster size used when the query leaves it out.
const (
	defaultPosterWidth  = 1280
	defaultPosterHeight = 720
)

// maxPosterTime bounds the t query parameter, in animation seconds.
const maxPosterTime = 3600

var errBadQuery = errors.New("bad query")

// frame renders one backdrop frame of width×height at animation time t.
//
// The clock is advanced with a single frame whose wall-clock delta maps to
// t under the profile's time scale. A capability that does not run (reduced
// motion) keeps the clock at zero, so those visitors get the still frame.
//
// The surface is sized in device pixels. The result is scaled back to
// width×height so configured limits hold at every pixel density.
func (s *Server) frame(p silk.Params, c silk.Capability, width, height int, t float64) (*image.RGBA, error) {
	b, err := backdrop.New(
		backdrop.WithParams(p),
		backdrop.WithCapability(c),
		backdrop.WithSize(width, height),
		backdrop.WithRegistry(s.surfaces),
	)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if ts := b.Profile().TimeScale; t > 0 && ts > 0 {
		b.Frame(time.Duration(t / ts * float64(time.Second)))
	}
	b.Render()
	return fitFrame(b.Snapshot(), width, height), nil
}

// fitFrame scales img to exactly width×height. It returns img unchanged when
// it already has that size.
func fitFrame(img *image.RGBA, width, height int) *image.RGBA {
	if img.Rect.Dx() == width && img.Rect.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Rect, img, img.Rect, draw.Src, nil)
	return dst
}

// handleBackdrop serves /backdrop.png.
//
// Query parameters: w and h (logical size, clamped to the configured
// maximum), t (animation seconds), quality (low, medium, high), vw (viewport
// width in CSS pixels) and reduced (1 or 0). vw and reduced override the
// client hints of the request.
func (s *Server) handleBackdrop(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := s.params

	width, errW := intParam(q, "w", defaultPosterWidth)
	height, errH := intParam(q, "h", defaultPosterHeight)
	t, errT := floatParam(q, "t", 0)
	vw, errV := intParam(q, "vw", 0)
	if err := errors.Join(errW, errH, errT, errV); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v := q.Get("quality"); v != "" {
		qual, err := silk.ParseQuality(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		params.Quality = qual
	}

	width = clamp(width, 1, s.cfg.Backdrop.MaxWidth)
	height = clamp(height, 1, s.cfg.Backdrop.MaxHeight)
	t = min(max(t, 0), maxPosterTime)

	c := probe.FromRequest(r)
	if vw > 0 {
		c.Mobile = probe.ClassifyViewport(vw) == probe.Mobile
	}
	switch q.Get("reduced") {
	case "1", "true":
		c.ReducedMotion = true
	case "0", "false":
		c.ReducedMotion = false
	}

	start := time.Now()
	img, err := s.frame(params, c, width, height, t)
	if err != nil {
		silk.Logger().Error("render backdrop", "id", RequestID(r.Context()), "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	body, err := encodePNG(img)
	if err != nil {
		silk.Logger().Error("encode backdrop", "id", RequestID(r.Context()), "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.metrics.observeFrame(frameBackdrop, time.Since(start))

	h := w.Header()
	h.Set("Cache-Control", "public, max-age=86400")
	h.Set("Vary", probe.AcceptCH)
	writePNG(w, r, body)
}

// handleShader serves the WGSL source for clients that render on their GPU.
func (s *Server) handleShader(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/wgsl; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(shader.Source))
}

// handleBanner serves the share banner: a still backdrop frame with the
// localized hero headline.
func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	l, _, _ := locale.Split(r.URL.Path)

	body, err := s.bannerPNG(l)
	if err != nil {
		silk.Logger().Error("render banner", "id", RequestID(r.Context()), "locale", l, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writePNG(w, r, body)
}

func (s *Server) bannerPNG(l locale.Locale) ([]byte, error) {
	start := time.Now()
	desktop := silk.Capability{PageVisible: true, InViewport: true}
	bg, err := s.frame(s.params, desktop, s.cfg.Banner.Width, s.cfg.Banner.Height, 0)
	if err != nil {
		return nil, err
	}
	headline := content.Lookup(l).Hero.Headline()
	fallback := content.Lookup(locale.EN).Hero.Headline()
	img, err := s.banner.RenderOrFallback(bg, l, headline, fallback)
	if err != nil {
		return nil, fmt.Errorf("banner %s: %w", l, err)
	}
	body, err := encodePNG(img)
	if err != nil {
		return nil, err
	}
	s.metrics.observeFrame(frameBanner, time.Since(start))
	return body, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(w http.ResponseWriter, r *http.Request, body []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func intParam(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadQuery, key, v)
	}
	return n, nil
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s=%q", errBadQuery, key, v)
	}
	return f, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
