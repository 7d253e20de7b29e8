// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package contact

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/locale"
)

func post(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
	}
	return rec, resp
}

func TestHandlerForwards(t *testing.T) {
	var got Submission
	srv := upstream(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	body := `{"name":"  Omar ","email":"omar@example.com","phone":"0100","message":"Please call me back soon.","extra":"dropped"}`
	rec, resp := post(t, New(srv.URL).Handler(), "/ar/api/contact", body)

	if rec.Code != http.StatusOK || !resp.OK {
		t.Fatalf("status = %d, ok = %v, want 200 true", rec.Code, resp.OK)
	}
	if got.Name != "Omar" {
		t.Errorf("forwarded name = %q, want trimmed %q", got.Name, "Omar")
	}
	if got.Lang != "ar" {
		t.Errorf("forwarded lang = %q, want ar from the URL", got.Lang)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHandlerBadJSON(t *testing.T) {
	var outcomes []Outcome
	h := New("http://unused.invalid", WithObserver(func(o Outcome, _ time.Duration) {
		outcomes = append(outcomes, o)
	})).Handler()

	rec, resp := post(t, h, "/api/contact", `{"name":`)
	if rec.Code != http.StatusBadRequest || resp.OK {
		t.Errorf("status = %d, ok = %v, want 400 false", rec.Code, resp.OK)
	}
	if len(outcomes) != 1 || outcomes[0] != OutcomeInvalid {
		t.Errorf("outcomes = %v, want [invalid]", outcomes)
	}
}

func TestHandlerValidation(t *testing.T) {
	h := New("http://unused.invalid").Handler()
	tests := []struct {
		name       string
		path       string
		body       string
		wantFields []string
		lang       locale.Locale
	}{
		{"empty", "/api/contact", `{}`, []string{"name", "email", "phone", "message"}, locale.EN},
		{"bad email", "/api/contact", `{"name":"Al","email":"nope","phone":"1","message":"0123456789"}`, []string{"email"}, locale.EN},
		{"arabic", "/ar/api/contact", `{"name":"A","email":"a@b.co","phone":"1","message":"0123456789"}`, []string{"name"}, locale.AR},
		{"lang field wins", "/api/contact", `{"lang":"ar","name":"A","email":"a@b.co","phone":"1","message":"0123456789"}`, []string{"name"}, locale.AR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := post(t, h, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if len(resp.Fields) != len(tt.wantFields) {
				t.Errorf("fields = %v, want %v", resp.Fields, tt.wantFields)
			}
			errs := content.Lookup(tt.lang).ContactUs.Form.Errors
			for _, f := range tt.wantFields {
				if resp.Fields[f] == "" {
					t.Errorf("field %q missing from %v", f, resp.Fields)
				}
			}
			if f, ok := resp.Fields["name"]; ok && f != errs.Name {
				t.Errorf("name message = %q, want %q", f, errs.Name)
			}
			if resp.Error != errs.Generic {
				t.Errorf("Error = %q, want %q", resp.Error, errs.Generic)
			}
		})
	}
}

func TestHandlerMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	New("").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Errorf("Allow = %q, want POST", got)
	}
}

func TestSubmissionValidate(t *testing.T) {
	long := strings.Repeat("a", MaxFieldLen+1)
	tests := []struct {
		name   string
		mutate func(*Submission)
		want   []string
	}{
		{"valid", func(*Submission) {}, nil},
		{"short name", func(s *Submission) { s.Name = "M" }, []string{"name"}},
		{"arabic name counts runes", func(s *Submission) { s.Name = "مى" }, nil},
		{"no phone", func(s *Submission) { s.Phone = "" }, []string{"phone"}},
		{"short message", func(s *Submission) { s.Message = "hi" }, []string{"message"}},
		{"spaces in email", func(s *Submission) { s.Email = "a b@c.d" }, []string{"email"}},
		{"no tld", func(s *Submission) { s.Email = "a@b" }, []string{"email"}},
		{"oversized company", func(s *Submission) { s.Company = long }, []string{"company"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			got := s.Validate()
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want fields %v", got, tt.want)
			}
			for _, f := range tt.want {
				if _, ok := got[f]; !ok {
					t.Errorf("Validate() missing %q: %v", f, got)
				}
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	s := Submission{Name: " a ", Message: "\tb\n", Page: " /x "}
	s.Normalize()
	if s.Name != "a" || s.Message != "b" || s.Page != "/x" {
		t.Errorf("Normalize() = %+v", s)
	}
}
