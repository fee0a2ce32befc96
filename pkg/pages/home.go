package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-sitegen/pkg/html"
	"github.com/goliatone/go-sitegen/pkg/page"
)

// HomePath is the canonical path of the landing page.
const HomePath = "/"

// Feature is one bullet of the landing page feature list.
type Feature struct {
	Title       string
	Description string
}

// Features lists what the landing page advertises.
var Features = []Feature{
	{Title: "Clean viewing", Description: "Syntax highlighting, expand/collapse of objects and arrays, and no quotes or trailing commas in data mode."},
	{Title: "Vim-inspired movement", Description: "Move with familiar keys, jump between siblings and follow the depth of the document."},
	{Title: "Full text search", Description: "Search for values and keys with regular expressions and jump between matches."},
	{Title: "JSON and YAML", Description: "Read JSON or YAML from a file or standard input."},
}

const installCommand = "brew install jless"

const homeCSS = `.hero{text-align:center;padding:2rem 0}
.hero h1{font-size:3rem;margin:0}
.install{display:inline-block;padding:.5rem 1rem;border-radius:4px;background:var(--code-background)}
.features{display:grid;gap:1rem;grid-template-columns:repeat(auto-fit,minmax(14rem,1fr));list-style:none;padding:0}
`

// Home returns the landing page: a hero block, the install command and the
// feature grid.
func Home() page.Page {
	return page.Page{
		Title:    "A command-line JSON viewer",
		Path:     HomePath,
		ExtraCSS: homeCSS,
		Content: func() string {
			return html.Main(html.Func(func() string {
				return html.Join(hero(), install(), html.Section(html.FromNode(featureList(Features)), html.Class("features-section")))
			}))
		},
	}
}

func hero() string {
	return html.Section(html.Func(func() string {
		return html.H1(html.Text("jless")) +
			html.P(html.Text(html.Escape("jless is a command-line JSON viewer designed for reading, exploring, and searching through JSON data.")))
	}), html.Class("hero"))
}

func install() string {
	return html.Section(html.Func(func() string {
		return html.H2(html.Text("Installation")) +
			html.Pre(html.Func(func() string {
				return html.Code(html.Text(html.Escape(installCommand)))
			}), html.Class("install"))
	}))
}

func featureList(features []Feature) g.Node {
	return h.Ul(h.Class("features"),
		g.Map(features, func(f Feature) g.Node {
			return h.Li(
				h.H3(g.Text(f.Title)),
				h.P(g.Text(f.Description)),
			)
		}),
	)
}
