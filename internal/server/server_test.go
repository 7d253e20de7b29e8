// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/silk/internal/config"
	"github.com/gogpu/silk/internal/contact"
	"github.com/gogpu/silk/shader"
	"github.com/gogpu/silk/surface"
)

func imageRegistry() *surface.Registry {
	r := surface.NewRegistry()
	r.Register("image", surface.PriorityImage, func(o surface.Options) (surface.Surface, error) {
		return surface.NewImageSurfaceWithOptions(o), nil
	}, nil)
	return r
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Backdrop.MaxWidth = 64
	cfg.Backdrop.MaxHeight = 48
	cfg.Banner.Width = 120
	cfg.Banner.Height = 64
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	s, err := New(cfg, WithSurfaces(imageRegistry()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/healthz", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok\n" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok\n")
	}
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("no request ID assigned")
	}
	if got := rec.Header().Get("Accept-CH"); !strings.Contains(got, "Sec-CH-Prefers-Reduced-Motion") {
		t.Errorf("Accept-CH = %q", got)
	}
}

func TestRequestIDKept(t *testing.T) {
	s := newTestServer(t, nil)
	for _, key := range []string{HeaderRequestID, "x-request-id", "X-Request-Id"} {
		rec := get(t, s, "/healthz", http.Header{key: {"abc-123"}})
		if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("%s: request ID = %q, want abc-123", key, got)
		}
	}

	long := strings.Repeat("x", maxRequestIDLen+1)
	rec := get(t, s, "/healthz", http.Header{HeaderRequestID: {long}})
	if got := rec.Header().Get(HeaderRequestID); got == long {
		t.Error("oversized request ID was echoed")
	}
}

func TestPageRouting(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		header       http.Header
		wantCode     int
		wantLocation string
		wantLang     string
	}{
		{"home default", "/", nil, http.StatusOK, "", "en"},
		{"home arabic", "/ar", nil, http.StatusOK, "", "ar"},
		{"about arabic", "/ar/About", nil, http.StatusOK, "", "ar"},
		{"services", "/Services?tab=marketing", nil, http.StatusOK, "", "en"},
		{"contact", "/Contact", nil, http.StatusOK, "", "en"},
		{"en prefix", "/en/About", nil, http.StatusPermanentRedirect, "/About", ""},
		{"en root", "/en", nil, http.StatusPermanentRedirect, "/", ""},
		{"accept-language", "/Services?tab=digital",
			http.Header{"Accept-Language": {"ar-EG,ar;q=0.9,en;q=0.5"}},
			http.StatusTemporaryRedirect, "/ar/Services?tab=digital", ""},
		{"cookie ar", "/Contact",
			http.Header{"Cookie": {LocaleCookie + "=ar"}},
			http.StatusTemporaryRedirect, "/ar/Contact", ""},
		{"cookie beats header", "/",
			http.Header{"Cookie": {LocaleCookie + "=en"}, "Accept-Language": {"ar"}},
			http.StatusOK, "", "en"},
		{"unknown page", "/Pricing", nil, http.StatusNotFound, "", ""},
	}

	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target, tt.header)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
			if got := rec.Header().Get("Content-Language"); got != tt.wantLang {
				t.Errorf("Content-Language = %q, want %q", got, tt.wantLang)
			}
		})
	}
}

func TestPageBody(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/ar/Contact", nil)
	body := rec.Body.String()

	for _, want := range []string{`dir="rtl"`, `action="/ar/api/contact"`, `/backdrop.png?`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == LocaleCookie && c.Value == "ar" {
			found = true
		}
	}
	if !found {
		t.Error("locale cookie not set to ar")
	}
}

func TestPageMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/About", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func decodePNG(t *testing.T, rec *httptest.ResponseRecorder) (w, h int) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestBackdropSize(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantW, wantH int
	}{
		{"reduced motion", "w=40&h=20&reduced=1", 40, 20},
		{"clamped", "w=1000&h=1000&reduced=1", 64, 48},
		{"low tier", "w=40&h=20&reduced=0&vw=1200&quality=low", 40, 20},
		{"medium tier", "w=20&h=10&reduced=0&vw=1200&quality=medium", 20, 10},
		{"high tier", "w=20&h=10&reduced=0&vw=1200&quality=high", 20, 10},
		{"high tier at max", "w=64&h=48&reduced=0&vw=1200&quality=high", 64, 48},
		{"high tier clamped", "w=1000&h=1000&reduced=0&vw=1200&quality=high", 64, 48},
		{"mobile", "w=40&h=20&reduced=0&vw=375&quality=high", 40, 20},
	}
	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := decodePNG(t, get(t, s, "/backdrop.png?"+tt.query, nil))
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestBackdropClientHints(t *testing.T) {
	s := newTestServer(t, nil)
	hints := http.Header{
		"Sec-Ch-Viewport-Width":         {"1400"},
		"Sec-Ch-Prefers-Reduced-Motion": {"no-preference"},
	}
	frame := func(q string, header http.Header) []byte {
		rec := get(t, s, "/backdrop.png?w=16&h=16&quality=medium&"+q, header)
		if w, h := decodePNG(t, rec); w != 16 || h != 16 {
			t.Errorf("size = %dx%d, want 16x16", w, h)
		}
		return rec.Body.Bytes()
	}

	if bytes.Equal(frame("t=0", hints), frame("t=5", hints)) {
		t.Error("no-preference hint did not animate the poster")
	}
	if !bytes.Equal(frame("t=0", nil), frame("t=5", nil)) {
		t.Error("poster without hints is not the still frame")
	}
}

func TestFitFrame(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 128, 96))
	if got := fitFrame(src, 128, 96); got != src {
		t.Error("fitFrame copied a frame that already fits")
	}
	got := fitFrame(src, 64, 48)
	if got.Rect != image.Rect(0, 0, 64, 48) {
		t.Errorf("fitFrame bounds = %v, want (0,0)-(64,48)", got.Rect)
	}
}

func TestBackdropTime(t *testing.T) {
	s := newTestServer(t, nil)
	frame := func(q string) []byte {
		rec := get(t, s, "/backdrop.png?w=16&h=16&"+q, nil)
		decodePNG(t, rec)
		return rec.Body.Bytes()
	}

	if bytes.Equal(frame("reduced=0&vw=1200&t=0"), frame("reduced=0&vw=1200&t=5")) {
		t.Error("running frames at t=0 and t=5 are identical")
	}
	if !bytes.Equal(frame("reduced=1&t=0"), frame("reduced=1&t=5")) {
		t.Error("reduced motion frame changed with t")
	}
}

func TestBackdropBadQuery(t *testing.T) {
	s := newTestServer(t, nil)
	for _, q := range []string{"w=abc", "h=1.5", "t=soon", "t=NaN", "quality=ultra", "vw=wide"} {
		if rec := get(t, s, "/backdrop.png?"+q, nil); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestBackdropMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	get(t, s, "/backdrop.png?w=8&h=8&reduced=1", nil)
	get(t, s, "/backdrop.png?w=8&h=8&reduced=1", nil)
	if got := testutil.ToFloat64(s.Metrics().frames.WithLabelValues("backdrop")); got != 2 {
		t.Errorf("backdrop frames = %v, want 2", got)
	}
}

func TestShader(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/backdrop.wgsl", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != shader.Source {
		t.Error("body is not the shader source")
	}
}

func TestBanner(t *testing.T) {
	s := newTestServer(t, nil)
	for _, path := range []string{"/banner.png", "/ar/banner.png", "/en/banner.png"} {
		t.Run(path, func(t *testing.T) {
			w, h := decodePNG(t, get(t, s, path, nil))
			if w != 120 || h != 64 {
				t.Errorf("size = %dx%d, want 120x64", w, h)
			}
		})
	}

	if got := testutil.ToFloat64(s.Metrics().frames.WithLabelValues("banner")); got != 3 {
		t.Errorf("banner frames = %v, want 3", got)
	}
}

func TestStatic(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/static/site.css", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
	if rec := get(t, s, "/static/missing.js", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", rec.Code)
	}
}

func TestContactRoute(t *testing.T) {
	var forwarded contact.Submission
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&forwarded)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.Contact.WebhookURL = upstream.URL
	s := newTestServer(t, cfg)

	body := `{"name":"Sara","email":"sara@example.com","phone":"+20 100","message":"We need a brand refresh."}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ar/api/contact", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if forwarded.Lang != "ar" {
		t.Errorf("forwarded lang = %q, want ar", forwarded.Lang)
	}
	if got := testutil.ToFloat64(s.Metrics().contacts.WithLabelValues(string(contact.OutcomeOK))); got != 1 {
		t.Errorf("ok submissions = %v, want 1", got)
	}
}

func TestContactRouteInvalid(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"S"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := testutil.ToFloat64(s.Metrics().contacts.WithLabelValues(string(contact.OutcomeInvalid))); got != 1 {
		t.Errorf("invalid submissions = %v, want 1", got)
	}
}

func TestRequestMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	get(t, s, "/healthz", nil)
	get(t, s, "/ar/About", nil)
	get(t, s, "/ar/Contact", nil)

	if got := testutil.ToFloat64(s.Metrics().requests.WithLabelValues("/healthz", "GET", "200")); got != 1 {
		t.Errorf("healthz requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.Metrics().requests.WithLabelValues(localePrefix+"/About", "GET", "200")); got != 1 {
		t.Errorf("about requests = %v, want 1", got)
	}

	rec := get(t, s, "/metrics", nil)
	for _, name := range []string{"silk_http_requests_total", "silk_backdrop_frames_total"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Errorf("/metrics does not expose %s", name)
		}
	}
}

func TestMetricsExportedAtZero(t *testing.T) {
	s := newTestServer(t, nil)
	body := get(t, s, "/metrics", nil).Body.String()
	for _, series := range []string{
		`silk_backdrop_frames_total{kind="backdrop"} 0`,
		`silk_backdrop_frames_total{kind="banner"} 0`,
		`silk_contact_submissions_total{outcome="timeout"} 0`,
	} {
		if !strings.Contains(body, series) {
			t.Errorf("/metrics does not expose %s", series)
		}
	}
}

func TestRecover(t *testing.T) {
	h := withRecover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Backdrop.Quality = "ultra"
	if _, err := New(cfg); err == nil {
		t.Error("New accepted an unknown quality tier")
	}
}
