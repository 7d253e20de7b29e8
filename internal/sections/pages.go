package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/contact"
)

// AboutPage renders /About.
func AboutPage(p Page) g.Node {
	a := p.Dict.About
	if p.Title == "" {
		p.Title = p.Dict.Nav.About
	}

	stats := make([]g.Node, 0, len(a.Stats))
	for _, s := range a.Stats {
		stats = append(stats, Div(Class("stat"), Strong(g.Text(s.Value)), Span(g.Text(s.Label))))
	}
	pillars := make([]g.Node, 0, len(a.Pillars.Items))
	for _, it := range a.Pillars.Items {
		pillars = append(pillars, Li(H3(g.Text(it.Title)), P(g.Text(it.Desc))))
	}
	timeline := make([]g.Node, 0, len(a.Timeline.Items))
	for _, it := range a.Timeline.Items {
		timeline = append(timeline, Li(
			g.El("time", g.Text(it.Year)),
			H3(g.Text(it.Title)),
			P(g.Text(it.Desc)),
		))
	}

	return Layout(p,
		Section(Class("about"),
			Span(Class("kicker"), g.Text(a.Kicker)),
			sectionHeading(a.Title, a.Subtitle),
			chips(a.Constants),
			Div(Class("about__stats"), g.Group(stats)),
		),
		Section(Class("about__story"),
			H2(g.Text(a.Story.Title)),
			P(g.Text(a.Story.P1)),
			P(g.Text(a.Story.P2)),
			P(g.Text(a.Story.P3)),
		),
		Section(Class("about__pillars"),
			H2(g.Text(a.Pillars.Title)),
			Ul(g.Group(pillars)),
		),
		Section(Class("about__timeline"),
			H2(g.Text(a.Timeline.Title)),
			Ol(g.Group(timeline)),
		),
		Section(Class("about__team"), sectionHeading(a.Team.Title, a.Team.Subtitle)),
		Section(Class("cta"),
			sectionHeading(a.CTA.Title, a.CTA.Subtitle),
			Div(Class("actions"),
				A(Class("button button--primary"), Href(p.href("/Contact")), g.Text(a.CTA.Primary)),
				A(Class("button button--ghost"), Href(p.href("/Services")), g.Text(a.CTA.Secondary)),
			),
		),
	)
}

// ServicesPage renders /Services with the tab in p.Tab selected, followed
// by the branding showcase.
func ServicesPage(p Page) g.Node {
	if p.Title == "" {
		p.Title = p.Dict.Nav.Services
	}
	return Layout(p, Services(p), Brand(p))
}

// Services renders the tabbed services section. Tabs are plain links so
// the page works without scripting.
func Services(p Page) g.Node {
	s := &p.Dict.ServicesPage
	tab, active := s.Tab(p.Tab)

	tabs := make([]g.Node, 0, len(content.TabKeys))
	for _, key := range content.TabKeys {
		t, _ := s.Tab(key)
		cls := "tabs__tab"
		if key == active {
			cls += " tabs__tab--active"
		}
		tabs = append(tabs, Li(A(Class(cls),
			Href(p.href("/Services")+"?tab="+key),
			g.Attr("role", "tab"),
			g.Attr("aria-selected", boolAttr(key == active)),
			Span(Class("tabs__eyebrow"), g.Text(t.Eyebrow)),
			Span(g.Text(t.Title)),
		)))
	}

	features := make([]g.Node, 0, len(tab.Features))
	for _, f := range tab.Features {
		features = append(features, Li(H3(g.Text(f.Title)), P(g.Text(f.Text))))
	}
	steps := make([]g.Node, 0, len(tab.Steps))
	for _, st := range tab.Steps {
		steps = append(steps, Li(Strong(g.Text(st.T)), P(g.Text(st.D))))
	}

	return Section(Class("services"), ID("services"),
		Span(Class("kicker"), g.Text(s.Kicker)),
		sectionHeading(s.Title, s.Subtitle),
		Ul(Class("tabs"), g.Attr("role", "tablist"), g.Group(tabs)),
		Div(Class("tabs__panel"), g.Attr("role", "tabpanel"), g.Attr("data-tab", active),
			Span(Class("kicker"), g.Text(tab.Eyebrow)),
			H2(g.Text(tab.Title)),
			P(g.Text(tab.Desc)),
			chips(tab.Chips),
			Ul(Class("services__features"), g.Group(features)),
			Ol(Class("services__steps"), g.Group(steps)),
			Div(Class("cta"),
				H3(g.Text(tab.CTA.Title)),
				P(g.Text(tab.CTA.Text)),
				Div(Class("actions"),
					A(Class("button button--primary"), Href(p.href("/Contact")), g.Text(tab.CTA.Primary)),
					A(Class("button button--ghost"), Href(p.href("/About")), g.Text(tab.CTA.Secondary)),
				),
			),
		),
		Div(Class("services__strip"),
			H3(g.Text(s.BottomStrip.Title)),
			P(g.Text(s.BottomStrip.Subtitle)),
			chips(s.BottomStrip.Tags),
		),
	)
}

// Brand renders the branding showcase.
func Brand(p Page) g.Node {
	b := p.Dict.Brand

	pillars := make([]g.Node, 0, len(b.Pillars))
	for _, it := range b.Pillars {
		pillars = append(pillars, Div(Class("card"), H3(g.Text(it.Title)), P(g.Text(it.Text))))
	}
	bullets := make([]g.Node, 0, len(b.Logo.Bullets))
	for _, s := range b.Logo.Bullets {
		bullets = append(bullets, Li(g.Text(s)))
	}
	swatches := make([]g.Node, 0, len(b.Palette))
	for _, sw := range b.Palette {
		swatches = append(swatches, Div(Class("swatch"),
			Div(Class("swatch__color"), g.Attr("style", "background-color:"+sw.Hex), g.Attr("aria-label", sw.Label)),
			Div(Class("swatch__meta"), Span(g.Text(sw.Label)), Code(g.Text(sw.Hex))),
		))
	}

	return Section(Class("brand"), ID("brand"),
		Span(Class("kicker"), g.Text(b.Kicker)),
		sectionHeading(b.Title, b.Subtitle),
		chips(b.Chips),
		Div(Class("brand__pillars"), g.Group(pillars)),
		Div(Class("card brand__logo"),
			H3(g.Text(b.Logo.Title)),
			P(g.Text(b.Logo.Desc)),
			Ul(g.Group(bullets)),
		),
		Div(Class("brand__palette"), g.Group(swatches)),
	)
}

// ContactPage renders /Contact: details, social links, map and the form.
func ContactPage(p Page) g.Node {
	c := p.Dict.ContactUs
	if p.Title == "" {
		p.Title = p.Dict.Nav.Contact
	}

	return Layout(p,
		Section(Class("contact-us"),
			Span(Class("kicker"), g.Text(c.Kicker)),
			sectionHeading(c.Title, c.Subtitle),
			Div(Class("contact-us__grid"),
				Div(Class("card"),
					H3(g.Text(c.Info.Title)),
					infoRow(c.Info.PhoneLabel, c.Info.PhoneValue, "tel:"+c.Info.PhoneValue),
					infoRow(c.Info.EmailLabel, c.Info.EmailValue, "mailto:"+c.Info.EmailValue),
					infoRow(c.Info.AddressLabel, c.Info.AddressValue, ""),
				),
				Div(Class("card"),
					H3(g.Text(c.Social.Title)),
					Ul(
						Li(A(Href(c.Social.Instagram), Rel("noopener"), g.Text("Instagram"))),
						Li(A(Href(c.Social.Facebook), Rel("noopener"), g.Text("Facebook"))),
						Li(A(Href(c.Social.LinkedIn), Rel("noopener"), g.Text("LinkedIn"))),
					),
				),
				Div(Class("card contact-us__map"),
					H3(g.Text(c.Map.Title)),
					g.El("iframe", Src(c.Map.IframeSrc), g.Attr("loading", "lazy"),
						g.Attr("title", c.Map.Title), g.Attr("referrerpolicy", "no-referrer-when-downgrade")),
					P(Class("note"), g.Text(c.Map.Note)),
				),
			),
			ContactForm(p),
		),
	)
}

func infoRow(label, value, href string) g.Node {
	v := g.Text(value)
	if href != "" {
		v = A(Href(href), g.Text(value))
	}
	return P(Class("info-row"), Span(Class("info-row__label"), g.Text(label)), g.Text(" "), v)
}

// ContactForm renders the contact form. The script posts it as JSON to the
// locale's contact endpoint and shows the localized messages carried in
// the data attributes; the same rules are enforced by the server.
func ContactForm(p Page) g.Node {
	f := p.Dict.ContactUs.Form
	return g.El("form", Class("contact-form"),
		Method("post"),
		Action(p.href("/api/contact")),
		g.Attr("novalidate", ""),
		g.Attr("data-submitting", f.Submitting),
		g.Attr("data-success", f.Success),
		g.Attr("data-error", f.Errors.Generic),
		H2(g.Text(f.Title)),
		P(g.Text(f.Subtitle)),
		field("name", "text", f.Fields.Name, f.Placeholders.Name, true,
			g.Attr("minlength", strconv.Itoa(contact.MinNameLen)), g.Attr("data-error", f.Errors.Name)),
		field("email", "email", f.Fields.Email, f.Placeholders.Email, true,
			g.Attr("data-error", f.Errors.Email), g.Attr("data-error-invalid", f.Errors.EmailInvalid)),
		field("phone", "tel", f.Fields.Phone, f.Placeholders.Phone, true,
			g.Attr("data-error", f.Errors.Phone)),
		field("company", "text", f.Fields.Company, f.Placeholders.Company, false),
		Div(Class("field"),
			g.El("label", g.Attr("for", "contact-message"), g.Text(f.Fields.Message)),
			Textarea(ID("contact-message"), Name("message"), Placeholder(f.Placeholders.Message),
				Required(), g.Attr("rows", "5"), g.Attr("minlength", strconv.Itoa(contact.MinMessageLen)),
				g.Attr("data-error", f.Errors.Message)),
			Span(Class("field__error"), g.Attr("aria-live", "polite")),
		),
		Input(Type("hidden"), Name("lang"), Value(p.Locale.String())),
		Input(Type("hidden"), Name("page"), Value(p.Path)),
		Button(Type("submit"), Class("button button--primary"), g.Text(f.Submit)),
		P(Class("contact-form__note"), g.Text(f.Note)),
		P(Class("contact-form__status"), g.Attr("role", "status")),
	)
}

func field(name, typ, label, placeholder string, required bool, extra ...g.Node) g.Node {
	id := "contact-" + name
	input := []g.Node{ID(id), Name(name), Type(typ), Placeholder(placeholder)}
	if required {
		input = append(input, Required())
	}
	input = append(input, extra...)
	return Div(Class("field"),
		g.El("label", g.Attr("for", id), g.Text(label)),
		Input(input...),
		Span(Class("field__error"), g.Attr("aria-live", "polite")),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
