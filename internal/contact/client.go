// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package contact forwards contact form submissions to a webhook.
//
// The webhook is any endpoint that accepts a JSON POST, typically a
// spreadsheet script. Its reply is relayed in a small envelope:
//
//	{"ok": true, "status": 200, "result": <parsed JSON or raw text>}
//	{"ok": false, "error": "...", "status": 502, "body": "..."}
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/gogpu/silk"
)

// DefaultTimeout bounds one webhook round trip.
const DefaultTimeout = 12 * time.Second

// MaxErrorBody is the most upstream body bytes echoed in an error.
const MaxErrorBody = 500

const maxRedirects = 10

// Outcome classifies one submission for logs and metrics.
type Outcome string

// Outcomes.
const (
	OutcomeOK           Outcome = "ok"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeRedirect     Outcome = "redirect"
	OutcomeUpstream     Outcome = "upstream_error"
	OutcomeRejected     Outcome = "rejected"
	OutcomeTimeout      Outcome = "timeout"
	OutcomeTransport    Outcome = "transport_error"
)

// Response is the JSON envelope returned to the browser.
type Response struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Status int               `json:"status,omitempty"`
	Body   any               `json:"body,omitempty"`
	Result any               `json:"result,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Result is the outcome of Forward: the HTTP status to answer with and
// the envelope to send.
type Result struct {
	Code     int
	Response Response
	Outcome  Outcome
}

// Observer is told about every handled submission.
type Observer func(o Outcome, elapsed time.Duration)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the webhook timeout. Non-positive values keep
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithFollowRedirects chooses whether redirects are followed. When they
// are not, a 3xx reply is reported as OutcomeRedirect.
func WithFollowRedirects(follow bool) Option {
	return func(c *Client) { c.follow = follow }
}

// WithObserver registers fn to be called after every submission.
func WithObserver(fn Observer) Option {
	return func(c *Client) { c.observe = fn }
}

// Client forwards submissions to one webhook URL.
type Client struct {
	url     string
	timeout time.Duration
	follow  bool
	observe Observer
	http    *resty.Client
}

// New creates a client for webhookURL. An empty URL is allowed; every
// submission then fails with 503.
func New(webhookURL string, opts ...Option) *Client {
	c := &Client{
		url:     webhookURL,
		timeout: DefaultTimeout,
		follow:  true,
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := resty.New().
		SetLogger(restyLogger{}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json,text/plain,*/*")
	if c.follow {
		hc.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	} else {
		hc.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	}
	c.http = hc
	return c
}

// Timeout returns the webhook timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Forward posts sub to the webhook and classifies the reply.
func (c *Client) Forward(ctx context.Context, sub Submission) Result {
	start := time.Now()
	res := c.forward(ctx, sub)
	c.report(res.Outcome, time.Since(start))
	return res
}

func (c *Client) report(o Outcome, elapsed time.Duration) {
	silk.Logger().Info("contact: submission handled", "outcome", string(o), "elapsed", elapsed)
	if c.observe != nil {
		c.observe(o, elapsed)
	}
}

func (c *Client) forward(ctx context.Context, sub Submission) Result {
	if c.url == "" {
		return failure(http.StatusServiceUnavailable, OutcomeUnconfigured,
			Response{Error: "contact endpoint is not configured"})
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sub).
		Post(c.url)
	if err != nil {
		if isTimeout(err) {
			return failure(http.StatusInternalServerError, OutcomeTimeout,
				Response{Error: "Upstream timeout"})
		}
		silk.Logger().Warn("contact: webhook request failed", "err", err)
		return failure(http.StatusInternalServerError, OutcomeTransport,
			Response{Error: "upstream request failed"})
	}

	text := resp.Body()
	status := resp.StatusCode()

	var out any
	if len(bytes.TrimSpace(text)) > 0 {
		if err := json.Unmarshal(text, &out); err != nil {
			out = nil
		}
	}

	switch {
	case status >= 300 && status < 400:
		return failure(http.StatusBadGateway, OutcomeRedirect,
			Response{Error: "upstream responded with redirect", Status: status})
	case status < 200 || status >= 300:
		return failure(http.StatusBadGateway, OutcomeUpstream, Response{
			Error:  "upstream request failed",
			Status: status,
			Body:   truncate(string(text), MaxErrorBody),
		})
	}

	if m, ok := out.(map[string]any); ok {
		if v, ok := m["ok"].(bool); ok && !v {
			msg := "upstream returned ok=false"
			if e, ok := m["error"].(string); ok && e != "" {
				msg = e
			}
			return failure(http.StatusBadGateway, OutcomeRejected, Response{Error: msg, Body: m})
		}
	}

	// A body that is not JSON is relayed as text. A literal null decodes to
	// nil as well, so it is relayed as the string "null".
	result := out
	if result == nil {
		result = string(text)
	}
	return Result{
		Code:     http.StatusOK,
		Outcome:  OutcomeOK,
		Response: Response{OK: true, Status: status, Result: result},
	}
}

func failure(code int, o Outcome, r Response) Result {
	r.OK = false
	return Result{Code: code, Outcome: o, Response: r}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// restyLogger routes resty's internal messages to the package logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	silk.Logger().Error(fmt.Sprintf("contact: "+format, v...))
}

func (restyLogger) Warnf(format string, v ...any) {
	silk.Logger().Warn(fmt.Sprintf("contact: "+format, v...))
}

func (restyLogger) Debugf(format string, v ...any) {
	silk.Logger().Debug(fmt.Sprintf("contact: "+format, v...))
}
