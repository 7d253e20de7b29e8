// Package locale negotiates the site language and maps it to URL prefixes.
//
// English is the default and is served without a prefix; every other
// supported locale lives under /{locale}.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported site language.
type Locale string

// Supported locales.
const (
	EN Locale = "en"
	AR Locale = "ar"
)

// Default is served at unprefixed paths.
const Default = EN

// All lists the supported locales in matcher preference order.
var All = []Locale{EN, AR}

var (
	tags    = []language.Tag{language.English, language.Arabic}
	matcher = language.NewMatcher(tags)
)

// Parse returns the locale named by s.
func Parse(s string) (Locale, bool) {
	switch l := Locale(strings.ToLower(s)); l {
	case EN, AR:
		return l, true
	}
	return "", false
}

// IsSupported reports whether s names a supported locale.
func IsSupported(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Tag returns the BCP 47 tag of l.
func (l Locale) Tag() language.Tag {
	if l == AR {
		return language.Arabic
	}
	return language.English
}

// Dir returns the HTML text direction, "rtl" or "ltr".
func (l Locale) Dir() string {
	if l == AR {
		return "rtl"
	}
	return "ltr"
}

// RTL reports whether l is written right to left.
func (l Locale) RTL() bool { return l.Dir() == "rtl" }

func (l Locale) String() string { return string(l) }

// Negotiate picks the best supported locale for an Accept-Language header.
// Malformed or unmatched headers give Default.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, i, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return All[i]
}

// Split separates a locale prefix from a URL path. Paths without a
// supported prefix belong to Default. rest always starts with '/'.
func Split(path string) (l Locale, rest string, prefixed bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, tail, _ := strings.Cut(trimmed, "/")
	if loc, ok := Parse(seg); ok && seg != "" {
		return loc, "/" + tail, true
	}
	if path == "" {
		path = "/"
	}
	return Default, path, false
}

// Path returns the URL of the page p in locale l.
func Path(l Locale, p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if l == Default || l == "" {
		return p
	}
	if p == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + p
}

// Switch returns path rewritten for locale to, keeping the page.
func Switch(path string, to Locale) string {
	_, rest, _ := Split(path)
	return Path(to, rest)
}
