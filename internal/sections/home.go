package sections

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogpu/silk/internal/carousel"
	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/counter"
)

// Values carousel settings of the landing page.
const (
	valuesInterval = 4 * time.Second
	valuesDepth    = 3
)

// Home renders the landing page.
func Home(p Page) g.Node {
	return Layout(p,
		Hero(p),
		Mission(p),
		Vision(p),
		Values(p, nil),
		Facts(p),
		ExclusiveAdvantage(p),
		Contact(p),
	)
}

// Hero renders the opening section.
func Hero(p Page) g.Node {
	h := p.Dict.Hero
	return Section(Class("hero"), ID("hero"),
		H1(Class("hero__title"),
			Span(g.Text(h.Title)), g.Text(" "),
			Span(Class("hero__title--accent"), g.Text(h.TitleMiddle)), g.Text(" "),
			Span(g.Text(h.TitleEnd)),
		),
		P(Class("hero__subtitle"), g.Text(h.Subtitle)),
		P(Class("hero__description"), g.Text(h.Description)),
		P(Class("hero__closing"), g.Text(h.Closing)),
		Div(Class("hero__actions"),
			A(Class("button button--primary"), Href(p.href("/Contact")), g.Text(h.CTAPrimary)),
			A(Class("button button--ghost"), Href(p.href("/Services")), g.Text(h.CTASecondary)),
		),
		A(Class("hero__scroll"), Href("#mission"), g.Text(h.ScrollText)),
	)
}

// Mission renders the mission section with its four highlights.
func Mission(p Page) g.Node {
	m := p.Dict.Mission
	return Section(Class("mission"), ID("mission"),
		sectionHeading(m.Title, m.Subtitle),
		Div(Class("mission__body"),
			P(g.Text(m.Paragraph1)),
			P(g.Text(m.Paragraph2)),
			P(g.Text(m.Paragraph3)),
		),
		Ul(Class("mission__highlights"),
			Li(g.Text(m.BrandStory)),
			Li(g.Text(m.MakingBrandsMatter)),
			Li(g.Text(m.PartnershipNotJustService)),
			Li(g.Text(m.PurposefulGrowth)),
		),
	)
}

// Vision renders the vision section and its scrolling tape.
func Vision(p Page) g.Node {
	v := p.Dict.Vision
	tape := make([]g.Node, 0, 2*len(v.Tape))
	// The tape is drawn twice so the marquee loops without a gap.
	for range 2 {
		for _, t := range v.Tape {
			tape = append(tape, Span(Class("tape__item"), g.Text(t)))
		}
	}
	return Section(Class("vision"), ID("vision"),
		sectionHeading(v.Title, v.Subtitle),
		P(g.Text(v.Paragraph1)),
		P(g.Text(v.Paragraph2)),
		Div(Class("tape"), g.Attr("aria-hidden", "true"), g.Group(tape)),
	)
}

// Values renders the stacked values carousel. deck may be nil to start at
// the first card; the script takes over autoplay in the browser.
func Values(p Page, deck *carousel.Deck[content.ValueItem]) g.Node {
	v := p.Dict.Values
	if deck == nil {
		deck = carousel.New(v.Items,
			carousel.WithDepth(valuesDepth),
			carousel.WithInterval(valuesInterval))
	}

	attrs := []g.Node{
		Class("values__carousel"),
		g.Attr("dir", p.Locale.Dir()),
		g.Attr("data-depth", strconv.Itoa(deck.Depth())),
		g.Attr("data-index", strconv.Itoa(deck.Index())),
	}
	if deck.Autoplay() {
		attrs = append(attrs, g.Attr("data-autoplay", strconv.FormatInt(deck.Interval().Milliseconds(), 10)))
	}

	first, second := deck.Lanes()
	return Section(Class("values"), ID("values"),
		sectionHeading(v.Title, v.Subtitle),
		Div(append(attrs,
			valueLane(first),
			valueLane(second),
			Div(Class("values__controls"),
				Button(Type("button"), g.Attr("data-step", "-1"), g.Attr("aria-label", "previous"), g.Text("‹")),
				Button(Type("button"), g.Attr("data-step", "1"), g.Attr("aria-label", "next"), g.Text("›")),
			),
		)...),
	)
}

func valueLane(cards []carousel.Card[content.ValueItem]) g.Node {
	nodes := make([]g.Node, 0, len(cards))
	for _, c := range cards {
		nodes = append(nodes, Article(Class("value-card"),
			g.Attr("data-pos", strconv.Itoa(c.Pos)),
			g.Attr("data-index", strconv.Itoa(c.Index)),
			Span(Class("value-card__label"), g.Text(c.Item.Label)),
			H3(g.Text(c.Item.Title)),
			P(g.Text(c.Item.Desc)),
		))
	}
	return Div(Class("values__lane"), g.Group(nodes))
}

// Facts renders the statistics. Each number is printed at its final value
// in the page locale; the script counts up to it when it scrolls into view.
func Facts(p Page) g.Node {
	f := p.Dict.Facts
	items := make([]g.Node, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, Div(Class("fact"),
			Strong(Class("fact__value"),
				g.Text(it.Prefix),
				Span(
					g.Attr("data-count", strconv.FormatFloat(it.Value, 'f', -1, 64)),
					g.Attr("data-decimals", strconv.Itoa(it.Decimals)),
					g.Attr("data-duration", strconv.FormatInt(counter.DefaultDuration.Milliseconds(), 10)),
					g.Text(counter.Format(p.Locale, it.Value, it.Decimals)),
				),
				g.Text(it.Suffix),
			),
			H3(g.Text(it.Label)),
			P(g.Text(it.Desc)),
		))
	}
	return Section(Class("facts"), ID("facts"),
		g.Attr("lang", p.Locale.Tag().String()),
		sectionHeading(f.Title, f.Subtitle),
		Div(Class("facts__grid"), g.Group(items)),
	)
}

// ExclusiveAdvantage renders the agency pitch.
func ExclusiveAdvantage(p Page) g.Node {
	e := p.Dict.ExclusiveAdvantage

	paras := make([]g.Node, 0, len(e.Paragraphs))
	for _, s := range e.Paragraphs {
		paras = append(paras, P(g.Text(s)))
	}
	benefits := make([]g.Node, 0, len(e.Benefits))
	for _, b := range e.Benefits {
		benefits = append(benefits, Li(H3(g.Text(b.Title)), P(g.Text(b.Desc))))
	}

	return Section(Class("advantage"), ID("advantage"),
		Span(Class("kicker"), g.Text(e.Kicker)),
		H2(g.Text(e.Title)),
		P(Class("advantage__headline"), g.Text(e.Headline)),
		g.Group(paras),
		BlockQuote(g.Text(e.Highlight)),
		chips(e.Tags),
		Ul(Class("advantage__benefits"), g.Group(benefits)),
		Div(Class("actions"),
			A(Class("button button--primary"), Href(p.href("/Contact")), g.Text(e.CTAPrimary)),
			A(Class("button button--ghost"), Href(p.href("/Services")), g.Text(e.CTASecondary)),
		),
	)
}

// Contact renders the contact summary at the end of the landing page.
func Contact(p Page) g.Node {
	c := p.Dict.Contact

	methods := make([]g.Node, 0, len(c.Methods))
	for _, m := range c.Methods {
		methods = append(methods, Li(Class("method"), g.Attr("data-key", m.Key),
			H3(g.Text(m.Title)),
			P(g.Text(m.Desc)),
			A(Href(m.Href), g.Text(m.Value)),
		))
	}

	loc := []g.Node{H3(g.Text(c.Location.Title)), P(g.Text(c.Location.AddressLine1))}
	if c.Location.AddressLine2 != "" {
		loc = append(loc, P(g.Text(c.Location.AddressLine2)))
	}
	if c.Location.Note != "" {
		loc = append(loc, P(Class("note"), g.Text(c.Location.Note)))
	}

	return Section(Class("contact"), ID("contact"),
		Span(Class("kicker"), g.Text(c.Kicker)),
		sectionHeading(c.Title, c.Subtitle),
		Div(Class("contact__location"), g.Group(loc)),
		H3(g.Text(c.MethodsTitle)),
		Ul(Class("contact__methods"), g.Group(methods)),
		Div(Class("actions"),
			A(Class("button button--primary"), Href(p.href(c.CTAPrimary.Href)), g.Text(c.CTAPrimary.Label)),
			A(Class("button button--ghost"), Href(p.href(c.CTASecondary.Href)), g.Text(c.CTASecondary.Label)),
		),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Header(Class("section-heading"),
		H2(g.Text(title)),
		g.If(subtitle != "", P(g.Text(subtitle))),
	)
}

func chips(tags []string) g.Node {
	nodes := make([]g.Node, 0, len(tags))
	for _, t := range tags {
		nodes = append(nodes, Li(Class("chip"), g.Text(t)))
	}
	return Ul(Class("chips"), g.Group(nodes))
}
