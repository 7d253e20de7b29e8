package sections

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/locale"
)

// Page is what every section needs to render.
type Page struct {
	Locale locale.Locale
	Dict   *content.Dictionary

	// Path is the page path without the locale prefix, e.g. "/Contact".
	Path string

	// Title overrides the document title suffix ("Be Bold | Contact").
	Title string

	// Tab selects the services tab.
	Tab string

	// PosterWidth and PosterHeight size the static backdrop frame shown
	// before the script replaces it with one matching the viewport.
	PosterWidth, PosterHeight int

	// Quality is the backdrop tier requested from the poster endpoint.
	Quality string
}

// NewPage returns a page for l at path with its dictionary loaded.
func NewPage(l locale.Locale, path string) Page {
	return Page{
		Locale:       l,
		Dict:         content.Lookup(l),
		Path:         path,
		PosterWidth:  1280,
		PosterHeight: 720,
	}
}

// href returns the localized URL of a site path. External links and
// anchors pass through.
func (p Page) href(path string) string {
	if path == "" || path[0] != '/' {
		return path
	}
	return locale.Path(p.Locale, path)
}

// PosterURL is the URL of the backdrop frame for this page.
func (p Page) PosterURL() string {
	q := url.Values{}
	q.Set("w", strconv.Itoa(p.PosterWidth))
	q.Set("h", strconv.Itoa(p.PosterHeight))
	if p.Quality != "" {
		q.Set("quality", p.Quality)
	}
	return "/backdrop.png?" + q.Encode()
}

// Layout wraps body in the document shell: head, the fixed backdrop with
// its gradient overlays, the navigation bar and the footer.
func Layout(p Page, body ...g.Node) g.Node {
	d := p.Dict
	title := d.Meta.Title
	if p.Title != "" {
		title += " | " + p.Title
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(p.Locale.String()),
			g.Attr("dir", p.Locale.Dir()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(d.Meta.Description)),
				Meta(Name("keywords"), Content(strings.Join(d.Meta.Keywords, ", "))),
				Meta(g.Attr("property", "og:title"), Content(d.Meta.Title)),
				Meta(g.Attr("property", "og:description"), Content(d.Meta.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(locale.Path(p.Locale, "/banner.png"))),
				Meta(Name("twitter:card"), Content("summary_large_image")),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				Script(Src("/static/site.js"), g.Attr("defer", "")),
			),
			Body(
				Class("page"),
				Backdrop(p),
				Navbar(p),
				Main(Class("page__content"), g.Group(body)),
				SiteFooter(p),
			),
		),
	})
}

// Backdrop is the fixed silk layer behind the page: a server-rendered frame
// and two gradient overlays that keep the text readable.
func Backdrop(p Page) g.Node {
	return Div(Class("backdrop"), g.Attr("aria-hidden", "true"),
		Img(Class("backdrop__frame"), Src(p.PosterURL()), Alt(""),
			g.Attr("data-silk", ""), g.Attr("data-quality", p.Quality)),
		Div(Class("backdrop__overlay backdrop__overlay--fade")),
		Div(Class("backdrop__overlay backdrop__overlay--vignette")),
	)
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Key  string
	Href string
}

// NavItems lists the pages in the navigation bar.
var NavItems = []NavItem{
	{"home", "/"},
	{"about", "/About"},
	{"services", "/Services"},
	{"contact", "/Contact"},
}

// navLabels is content.Nav with a label lookup.
type navLabels content.Nav

func (n navLabels) label(key string) string {
	switch key {
	case "home":
		return n.Home
	case "about":
		return n.About
	case "services":
		return n.Services
	case "contact":
		return n.Contact
	}
	return key
}

// Navbar renders the brand, the page links and the language switcher.
// Language links carry an explicit prefix so the server can remember the
// choice.
func Navbar(p Page) g.Node {
	nav := navLabels(p.Dict.Nav)
	links := make([]g.Node, 0, len(NavItems))
	for _, it := range NavItems {
		cls := "nav__link"
		if it.Href == p.Path {
			cls += " nav__link--active"
		}
		links = append(links, Li(A(Class(cls), Href(p.href(it.Href)), g.Text(nav.label(it.Key)))))
	}

	_, rest, _ := locale.Split(p.Path)
	return Header(Class("nav"),
		A(Class("nav__brand"), Href(p.href("/")), g.Text(nav.BeBold)),
		Nav(Class("nav__links"), Ul(links...)),
		Div(Class("nav__lang"),
			A(Href("/en"+trimRoot(rest)), Lang("en"), g.Text(nav.English)),
			A(Href("/ar"+trimRoot(rest)), Lang("ar"), g.Text(nav.Arabic)),
		),
	)
}

// SiteFooter renders the site footer.
func SiteFooter(p Page) g.Node {
	f := p.Dict.Footer

	cols := make([]g.Node, 0, len(f.Columns))
	for _, c := range f.Columns {
		items := make([]g.Node, 0, len(c.Links))
		for _, l := range c.Links {
			items = append(items, Li(A(Href(p.href(l.Href)), g.Text(l.Label))))
		}
		cols = append(cols, Div(Class("footer__column"), H3(g.Text(c.Title)), Ul(items...)))
	}

	socials := make([]g.Node, 0, len(f.Socials))
	for _, s := range f.Socials {
		socials = append(socials, A(Class("footer__social"), Href(s.Href),
			g.Attr("data-key", s.Key), Rel("noopener"), g.Text(s.Label)))
	}

	contact := make([]g.Node, 0, len(f.Contact.Items))
	for _, it := range f.Contact.Items {
		contact = append(contact, Li(Span(g.Text(it.Label+": ")), A(Href(it.Href), g.Text(it.Value))))
	}

	return Footer(Class("footer"),
		Div(Class("footer__brand"),
			Strong(g.Text(f.Brand.Name)),
			P(g.Text(f.Brand.Tagline)),
			P(Class("footer__description"), g.Text(f.Description)),
		),
		g.Group(cols),
		Div(Class("footer__column"), H3(g.Text(f.Contact.Title)), Ul(contact...)),
		Div(Class("footer__socials"), g.Group(socials)),
		P(Class("footer__rights"), g.Text(f.Rights)),
	)
}

// Render writes n to w.
func Render(w io.Writer, n g.Node) error {
	return n.Render(w)
}

func trimRoot(path string) string {
	if path == "/" {
		return ""
	}
	return path
}
