// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"bytes"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/internal/locale"
	"github.com/gogpu/silk/internal/sections"
)

// LocaleCookie remembers the visitor's language choice.
const LocaleCookie = "silk_locale"

// localePrefix matches the optional language segment of a route.
const localePrefix = "/{locale:ar|en}"

// localeCookieAge is how long a language choice is remembered.
const localeCookieAge = 365 * 24 * time.Hour

// page is one routable site page.
type page struct {
	path   string
	render func(sections.Page) g.Node
}

var pages = []page{
	{"/", sections.Home},
	{"/About", sections.AboutPage},
	{"/Services", sections.ServicesPage},
	{"/Contact", sections.ContactPage},
}

// routes returns the unprefixed and prefixed route templates of pg.
func (pg page) routes() []string {
	if pg.path == "/" {
		return []string{"/", localePrefix}
	}
	return []string{pg.path, localePrefix + pg.path}
}

// pageHandler serves pg in the requested language.
//
// The default language has no prefix: /en/... sets the cookie and
// redirects to the unprefixed URL. An unprefixed request from a visitor
// who chose Arabic, or whose Accept-Language prefers it, is redirected to
// the /ar URL.
func (s *Server) pageHandler(pg page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, rest, prefixed := locale.Split(r.URL.Path)

		if prefixed && l == locale.Default {
			setLocaleCookie(w, l)
			http.Redirect(w, r, withQuery(rest, r), http.StatusPermanentRedirect)
			return
		}
		if !prefixed {
			if want := preferredLocale(r); want != locale.Default {
				http.Redirect(w, r, withQuery(locale.Path(want, rest), r), http.StatusTemporaryRedirect)
				return
			}
		}
		setLocaleCookie(w, l)

		p := sections.NewPage(l, pg.path)
		p.Tab = r.URL.Query().Get("tab")
		p.Quality = s.params.Quality.String()
		p.PosterWidth = min(p.PosterWidth, s.cfg.Backdrop.MaxWidth)
		p.PosterHeight = min(p.PosterHeight, s.cfg.Backdrop.MaxHeight)

		var buf bytes.Buffer
		if err := sections.Render(&buf, pg.render(p)); err != nil {
			silk.Logger().Error("render page", "id", RequestID(r.Context()), "path", pg.path, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Set("Content-Language", l.String())
		h.Add("Vary", "Accept-Language")
		h.Add("Vary", "Cookie")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(buf.Bytes())
	}
}

// preferredLocale returns the cookie locale, else the Accept-Language
// match.
func preferredLocale(r *http.Request) locale.Locale {
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if l, ok := locale.Parse(c.Value); ok {
			return l
		}
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"))
}

func setLocaleCookie(w http.ResponseWriter, l locale.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookie,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int(localeCookieAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func withQuery(path string, r *http.Request) string {
	if r.URL.RawQuery == "" {
		return path
	}
	return path + "?" + r.URL.RawQuery
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	l, _, _ := locale.Split(r.URL.Path)
	msg := "Page not found"
	if l == locale.AR {
		msg = "الصفحة غير موجودة"
	}
	http.Error(w, msg, http.StatusNotFound)
}

func (s *Server) staticHandler() http.Handler {
	fs := http.StripPrefix("/static/", http.FileServer(http.FS(sections.Assets())))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fs.ServeHTTP(w, r)
	})
}
