// Package content holds the embedded site dictionaries.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/silk/internal/locale"
)

//go:embed lang/*.json
var langFS embed.FS

var (
	loadOnce sync.Once
	dicts    map[locale.Locale]*Dictionary
	loadErr  error
)

func load() {
	dicts = make(map[locale.Locale]*Dictionary, len(locale.All))
	for _, l := range locale.All {
		d, err := Parse(l)
		if err != nil {
			loadErr = err
			return
		}
		dicts[l] = d
	}
}

// Parse decodes the embedded dictionary of l.
func Parse(l locale.Locale) (*Dictionary, error) {
	data, err := langFS.ReadFile("lang/" + string(l) + ".json")
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", l, err)
	}
	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("content: %s: %w", l, err)
	}
	return &d, nil
}

// Lookup returns the dictionary of l, falling back to the default locale.
// The returned value is shared and must not be modified.
func Lookup(l locale.Locale) *Dictionary {
	loadOnce.Do(load)
	if loadErr != nil {
		panic(loadErr)
	}
	if d, ok := dicts[l]; ok {
		return d
	}
	return dicts[locale.Default]
}

// TabKeys lists the service tab keys in display order.
var TabKeys = []string{"branding", "marketing", "digital"}

// Tab returns the service tab named key and the key actually selected.
// The positional ids tab1..tab3 are accepted too. Unknown keys select the
// first tab.
func (s *ServicesPage) Tab(key string) (ServiceTab, string) {
	switch strings.ToLower(key) {
	case "marketing", "tab2":
		return s.Tabs.Marketing, "marketing"
	case "digital", "tab3":
		return s.Tabs.Digital, "digital"
	}
	return s.Tabs.Branding, "branding"
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
