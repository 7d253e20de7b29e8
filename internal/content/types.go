package content

// Dictionary is every localized string of the site for one locale.
type Dictionary struct {
	Meta               Meta               `json:"meta"`
	Nav                Nav                `json:"nav"`
	Hero               Hero               `json:"hero"`
	Mission            Mission            `json:"mission"`
	Vision             Vision             `json:"vision"`
	Values             Values             `json:"values"`
	Facts              Facts              `json:"facts"`
	ExclusiveAdvantage ExclusiveAdvantage `json:"exclusiveAdvantage"`
	About              About              `json:"about"`
	ServicesPage       ServicesPage       `json:"servicesPage"`
	Brand              Brand              `json:"brand"`
	Contact            Contact            `json:"contact"`
	ContactUs          ContactUs          `json:"contactUs"`
	Footer             Footer             `json:"footer"`
}

// Meta is the document head.
type Meta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Nav labels the navigation bar.
type Nav struct {
	BeBold   string `json:"BeBold"`
	Home     string `json:"home"`
	About    string `json:"about"`
	Services string `json:"services"`
	Contact  string `json:"contact"`
	English  string `json:"english"`
	Arabic   string `json:"arabic"`
}

type Hero struct {
	Title        string `json:"title"`
	TitleMiddle  string `json:"titleMiddle"`
	TitleEnd     string `json:"titleEnd"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Closing      string `json:"closing"`
	CTAPrimary   string `json:"ctaPrimary"`
	CTASecondary string `json:"ctaSecondary"`
	ScrollText   string `json:"scrollText"`
}

// Headline joins the three title parts the way the hero prints them.
func (h Hero) Headline() string {
	return joinNonEmpty(h.Title, h.TitleMiddle, h.TitleEnd)
}

type Mission struct {
	Title                     string `json:"title"`
	Subtitle                  string `json:"subtitle"`
	Paragraph1                string `json:"paragraph1"`
	Paragraph2                string `json:"paragraph2"`
	Paragraph3                string `json:"paragraph3"`
	BrandStory                string `json:"brandStory"`
	MakingBrandsMatter        string `json:"makingBrandsMatter"`
	PartnershipNotJustService string `json:"partnershipNotJustService"`
	PurposefulGrowth          string `json:"purposefulGrowth"`
}

type Vision struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraph1 string   `json:"paragraph1"`
	Paragraph2 string   `json:"paragraph2"`
	Tape       []string `json:"tape"`
}

type Values struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Items    []ValueItem `json:"items"`
}

// ValueItem is one card of the values carousel.
type ValueItem struct {
	Label string `json:"label"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type Facts struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Items    []Fact `json:"items"`
}

// Fact is one count-up statistic.
type Fact struct {
	Value    float64 `json:"value"`
	Decimals int     `json:"decimals,omitempty"`
	Prefix   string  `json:"prefix,omitempty"`
	Suffix   string  `json:"suffix,omitempty"`
	Label    string  `json:"label"`
	Desc     string  `json:"desc"`
}

type ExclusiveAdvantage struct {
	Kicker       string      `json:"kicker"`
	Title        string      `json:"title"`
	Headline     string      `json:"headline"`
	Paragraphs   []string    `json:"paragraphs"`
	Highlight    string      `json:"highlight"`
	Tags         []string    `json:"tags"`
	Benefits     []TitleDesc `json:"benefits"`
	CTAPrimary   string      `json:"ctaPrimary"`
	CTASecondary string      `json:"ctaSecondary"`
}

// TitleDesc is a titled blurb.
type TitleDesc struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type About struct {
	Kicker    string      `json:"kicker"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle"`
	Constants []string    `json:"constants"`
	Stats     []AboutStat `json:"stats"`
	Story     struct {
		Title string `json:"title"`
		P1    string `json:"p1"`
		P2    string `json:"p2"`
		P3    string `json:"p3"`
	} `json:"story"`
	Pillars struct {
		Title string      `json:"title"`
		Items []TitleDesc `json:"items"`
	} `json:"pillars"`
	Timeline struct {
		Title string          `json:"title"`
		Items []TimelineEntry `json:"items"`
	} `json:"timeline"`
	Team struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	} `json:"team"`
	CTA struct {
		Title     string `json:"title"`
		Subtitle  string `json:"subtitle"`
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
	} `json:"cta"`
}

type AboutStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TimelineEntry struct {
	Year  string `json:"year"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type ServicesPage struct {
	Kicker      string             `json:"kicker"`
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle"`
	Tabs        ServiceTabs        `json:"tabs"`
	BottomStrip ServiceBottomStrip `json:"bottomStrip"`
}

// ServiceTabs holds the three service tabs in display order.
type ServiceTabs struct {
	Branding  ServiceTab `json:"branding"`
	Marketing ServiceTab `json:"marketing"`
	Digital   ServiceTab `json:"digital"`
}

type ServiceTab struct {
	Eyebrow  string        `json:"eyebrow"`
	Title    string        `json:"title"`
	Desc     string        `json:"desc"`
	Chips    []string      `json:"chips"`
	Features []ServiceItem `json:"features"`
	Steps    []ServiceStep `json:"steps"`
	CTA      struct {
		Title     string `json:"title"`
		Text      string `json:"text"`
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
	} `json:"cta"`
}

type ServiceItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ServiceStep struct {
	T string `json:"t"`
	D string `json:"d"`
}

type ServiceBottomStrip struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Tags     []string `json:"tags"`
}

// Brand is the branding showcase on the services page.
type Brand struct {
	Kicker   string        `json:"kicker"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Chips    []string      `json:"chips"`
	Pillars  []ServiceItem `json:"pillars"`
	Logo     struct {
		Title   string   `json:"title"`
		Desc    string   `json:"desc"`
		Bullets []string `json:"bullets"`
	} `json:"logo"`
	Palette []Swatch `json:"palette"`
}

type Swatch struct {
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

type Contact struct {
	Kicker   string `json:"kicker"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Location struct {
		Title        string `json:"title"`
		AddressLine1 string `json:"addressLine1"`
		AddressLine2 string `json:"addressLine2,omitempty"`
		Note         string `json:"note,omitempty"`
	} `json:"location"`
	MethodsTitle string          `json:"methodsTitle"`
	Methods      []ContactMethod `json:"methods"`
	CTAPrimary   Link            `json:"ctaPrimary"`
	CTASecondary Link            `json:"ctaSecondary"`
}

type ContactMethod struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Value string `json:"value"`
	Href  string `json:"href"`
}

// Link is a labelled URL.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type ContactUs struct {
	Kicker   string `json:"kicker"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Info     struct {
		Title        string `json:"title"`
		PhoneLabel   string `json:"phoneLabel"`
		PhoneValue   string `json:"phoneValue"`
		EmailLabel   string `json:"emailLabel"`
		EmailValue   string `json:"emailValue"`
		AddressLabel string `json:"addressLabel"`
		AddressValue string `json:"addressValue"`
	} `json:"info"`
	Social struct {
		Title     string `json:"title"`
		Instagram string `json:"instagram"`
		Facebook  string `json:"facebook"`
		LinkedIn  string `json:"linkedin"`
	} `json:"social"`
	Map struct {
		Title     string `json:"title"`
		Note      string `json:"note"`
		IframeSrc string `json:"iframeSrc"`
	} `json:"map"`
	Form ContactForm `json:"form"`
}

// ContactForm labels the contact form and its validation messages.
type ContactForm struct {
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	Fields       FormFields `json:"fields"`
	Placeholders FormFields `json:"placeholders"`
	Submit       string     `json:"submit"`
	Submitting   string     `json:"submitting"`
	Success      string     `json:"success"`
	Note         string     `json:"note"`
	Errors       struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		EmailInvalid string `json:"emailInvalid"`
		Phone        string `json:"phone"`
		Message      string `json:"message"`
		Generic      string `json:"generic"`
	} `json:"errors"`
}

type FormFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type Footer struct {
	Brand struct {
		Name    string `json:"name"`
		Tagline string `json:"tagline"`
	} `json:"brand"`
	Description string         `json:"description"`
	Rights      string         `json:"rights"`
	Columns     []FooterColumn `json:"columns"`
	Socials     []FooterSocial `json:"socials"`
	Contact     struct {
		Title string        `json:"title"`
		Items []FooterEntry `json:"items"`
	} `json:"contact"`
}

type FooterColumn struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

type FooterSocial struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type FooterEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
}
