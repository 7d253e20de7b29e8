// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/silk/internal/contact"
)

// Frame kinds rendered on the server.
const (
	frameBackdrop = "backdrop"
	frameBanner   = "banner"
)

// Metrics are the server's Prometheus collectors.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	contacts        *prometheus.CounterVec
	contactDuration prometheus.Histogram
	frames          *prometheus.CounterVec
	frameDuration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "silk_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "silk_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		contacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "silk_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		contactDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "silk_contact_duration_seconds",
			Help:    "Time spent handling a contact submission, webhook included.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 12, 15},
		}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "silk_backdrop_frames_total",
			Help: "Backdrop frames rendered on the server by kind.",
		}, []string{"kind"}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "silk_backdrop_frame_duration_seconds",
			Help:    "Time to shade and encode one backdrop frame.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.contacts, m.contactDuration, m.frames, m.frameDuration)

	// Fixed label sets are exported at zero from the first scrape.
	for _, kind := range []string{frameBackdrop, frameBanner} {
		m.frames.WithLabelValues(kind)
	}
	for _, o := range []contact.Outcome{
		contact.OutcomeOK, contact.OutcomeInvalid, contact.OutcomeUnconfigured, contact.OutcomeRedirect,
		contact.OutcomeUpstream, contact.OutcomeRejected, contact.OutcomeTimeout, contact.OutcomeTransport,
	} {
		m.contacts.WithLabelValues(string(o))
	}
	return m
}

// ObserveContact records one contact outcome. It satisfies contact.Observer.
func (m *Metrics) ObserveContact(o contact.Outcome, d time.Duration) {
	m.contacts.WithLabelValues(string(o)).Inc()
	m.contactDuration.Observe(d.Seconds())
}

func (m *Metrics) observeFrame(kind string, d time.Duration) {
	m.frames.WithLabelValues(kind).Inc()
	m.frameDuration.Observe(d.Seconds())
}

// instrument is router middleware. Routes are labelled by their template so
// /{locale}/About stays one series.
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
