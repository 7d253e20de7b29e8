// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gogpu/silk"
)

// Client hint header names read by RequestSource.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
	HeaderMobile              = "Sec-CH-UA-Mobile"
	HeaderReducedMotion       = "Sec-CH-Prefers-Reduced-Motion"
)

// AcceptCH is the Accept-CH response header value that asks browsers to send
// the hints RequestSource understands.
var AcceptCH = strings.Join([]string{HeaderViewportWidth, HeaderMobile, HeaderReducedMotion}, ", ")

// RequestSource feeds the client hints of an HTTP request into a probe.
//
// The viewport class comes from the viewport width hint, falling back to the
// UA mobile hint. A request without a reduced-motion hint cannot answer that
// query, so Watch reports ErrUnsupported and the probe assumes reduced
// motion.
func RequestSource(r *http.Request) Source {
	return SourceFunc(func(p *Probe) (func(), error) {
		h := r.Header

		if w, ok := viewportWidth(h); ok {
			p.SetViewportWidth(w)
		} else if m := h.Get(HeaderMobile); m != "" {
			p.update(func(c *silk.Capability) { c.Mobile = m == "?1" })
		}

		switch v := strings.ToLower(strings.TrimSpace(h.Get(HeaderReducedMotion))); v {
		case "reduce":
			p.SetReducedMotion(true)
		case "no-preference":
			p.SetReducedMotion(false)
		case "":
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, HeaderReducedMotion)
		default:
			return nil, fmt.Errorf("%w: %s=%q", ErrUnsupported, HeaderReducedMotion, v)
		}
		return nil, nil
	})
}

// FromRequest returns the capability described by a request's client hints.
// A server-rendered frame is always treated as visible and on screen.
func FromRequest(r *http.Request) silk.Capability {
	p := New()
	defer p.Close()
	p.Attach(RequestSource(r))
	return p.Capability()
}

func viewportWidth(h http.Header) (int, bool) {
	v := h.Get(HeaderViewportWidth)
	if v == "" {
		v = h.Get(HeaderLegacyViewportWidth)
	}
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int(f), true
}
