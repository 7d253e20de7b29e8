// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package server is the HTTP front of the site: localized pages, the
// server-rendered backdrop frames, the share banner, the contact proxy and
// the operational endpoints.
//
// Routes:
//
//	GET  /, /About, /Services, /Contact   English pages
//	GET  /ar, /ar/About, ...              Arabic pages
//	GET  /en, /en/About, ...              redirect to the unprefixed page
//	POST /api/contact, /ar/api/contact    contact form proxy
//	GET  /backdrop.png                    one backdrop frame
//	GET  /backdrop.wgsl                   the pattern shader
//	GET  /banner.png, /ar/banner.png      share banner
//	GET  /static/...                      stylesheet and script
//	GET  /healthz, /metrics               operations
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/internal/banner"
	"github.com/gogpu/silk/internal/config"
	"github.com/gogpu/silk/internal/contact"
	"github.com/gogpu/silk/surface"
)

// Server routes requests to the site handlers.
type Server struct {
	cfg      *config.Config
	params   silk.Params
	surfaces *surface.Registry
	banner   *banner.Renderer
	contact  *contact.Client
	metrics  *Metrics
	registry *prometheus.Registry
	router   *mux.Router
	handler  http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithSurfaces selects the surface registry used for server-side frames.
func WithSurfaces(r *surface.Registry) Option {
	return func(s *Server) { s.surfaces = r }
}

// WithBanner replaces the banner renderer, e.g. one with an Arabic font.
func WithBanner(b *banner.Renderer) Option {
	return func(s *Server) { s.banner = b }
}

// WithRegistry registers the metrics with reg and serves them from
// /metrics. By default the server uses a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// New builds the server and its routes.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params, err := cfg.Backdrop.Params()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		params:   params,
		surfaces: surface.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.banner == nil {
		if s.banner, err = banner.New(nil); err != nil {
			return nil, err
		}
	}

	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.registry)

	s.contact = contact.New(cfg.Contact.WebhookURL,
		contact.WithTimeout(cfg.Contact.Timeout),
		contact.WithFollowRedirects(cfg.Contact.FollowRedirects),
		contact.WithObserver(s.metrics.ObserveContact),
	)

	s.router = s.routes()
	s.handler = withRecover(withRequestID(withAccessLog(withClientHints(s.router))))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.metrics.instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(s.staticHandler()).Methods(http.MethodGet, http.MethodHead)

	r.HandleFunc("/backdrop.png", s.handleBackdrop).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/backdrop.wgsl", s.handleShader).Methods(http.MethodGet, http.MethodHead)

	contactHandler := s.contact.Handler()
	for _, prefix := range []string{"", localePrefix} {
		r.HandleFunc(prefix+"/banner.png", s.handleBanner).Methods(http.MethodGet, http.MethodHead)
		r.Handle(prefix+"/api/contact", contactHandler)
	}

	for _, pg := range pages {
		for _, path := range pg.routes() {
			r.HandleFunc(path, s.pageHandler(pg)).Methods(http.MethodGet, http.MethodHead)
		}
	}

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok\n"))
}
