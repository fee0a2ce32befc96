package page

// Page holds the per-page customization points of the document skeleton.
// Everything else in a generated document is shared by all pages.
type Page struct {
	// Title feeds the <title> element and the og:title meta tag.
	Title string

	// Path is the site-relative canonical path ("" or "/" for the root page,
	// otherwise starting with "/"). It feeds og:url.
	Path string

	// ExtraCSS is appended verbatim after the shared base stylesheet.
	ExtraCSS string

	// Content produces the markup placed between header and footer. It is
	// invoked exactly once per render. A nil Content renders nothing.
	Content func() string

	// FooterImage is the footer image source. Empty means the shared default.
	FooterImage string
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label string `json:"label" yaml:"label" toml:"label" koanf:"label"`
	Href  string `json:"href" yaml:"href" toml:"href" koanf:"href"`
}

// Site carries the site-wide values that fill the fixed parts of every page.
// They are set once per run and are identical for all pages.
type Site struct {
	Name        string
	BaseURL     string
	Description string
	Repository  string
	Attribution string
	FontURL     string
	Nav         []NavLink
}

// DefaultSite returns the chrome of the jless site.
func DefaultSite() Site {
	return Site{
		Name:        "jless",
		BaseURL:     "https://jless.io",
		Description: "jless is a command-line JSON viewer designed for reading, exploring, and searching through JSON data.",
		Repository:  "https://github.com/PaulJuliusMartinez/jless",
		Attribution: "jless is free and open source software, released under the MIT license.",
		FontURL:     "https://fonts.googleapis.com/css2?family=IBM+Plex+Mono&family=Inter:wght@400;600&display=swap",
		Nav: []NavLink{
			{Label: "User Guide", Href: "/user-guide.html"},
			{Label: "Releases", Href: "/releases.html"},
			{Label: "GitHub", Href: "https://github.com/PaulJuliusMartinez/jless"},
		},
	}
}
