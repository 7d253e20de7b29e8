// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/locale"
)

// MaxRequestBody limits the size of a posted form.
const MaxRequestBody = 64 << 10

// Handler returns the POST endpoint of the contact form.
//
// A submission without a lang field takes the locale from the URL prefix,
// so /ar/api/contact validates with Arabic messages. The webhook call is
// detached from the request context: a browser that navigates away does
// not abort a half-sent submission.
func (c *Client) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, Response{Error: "method not allowed"})
			return
		}

		start := time.Now()
		var sub Submission
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBody))
		if err := dec.Decode(&sub); err != nil {
			silk.Logger().Debug("contact: bad request body", "err", err)
			c.report(OutcomeInvalid, time.Since(start))
			writeJSON(w, http.StatusBadRequest, Response{Error: "invalid JSON body"})
			return
		}

		sub.Normalize()
		if sub.Lang == "" {
			l, _, _ := locale.Split(r.URL.Path)
			sub.Lang = string(l)
		}
		if fields := sub.Validate(); fields != nil {
			c.report(OutcomeInvalid, time.Since(start))
			l, _ := locale.Parse(sub.Lang)
			writeJSON(w, http.StatusBadRequest, Response{
				Error:  content.Lookup(l).ContactUs.Form.Errors.Generic,
				Fields: fields,
			})
			return
		}

		res := c.Forward(context.WithoutCancel(r.Context()), sub)
		writeJSON(w, res.Code, res.Response)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		silk.Logger().Warn("contact: write response", "err", err)
	}
}
