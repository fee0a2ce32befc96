package html

import (
	"slices"
	"strings"
)

// Constructor renders one tag from the catalog.
type Constructor func(content Content, attrs ...Attr) string

func H1(c Content, attrs ...Attr) string      { return Render("h1", attrs, c) }
func H2(c Content, attrs ...Attr) string      { return Render("h2", attrs, c) }
func H3(c Content, attrs ...Attr) string      { return Render("h3", attrs, c) }
func H4(c Content, attrs ...Attr) string      { return Render("h4", attrs, c) }
func H5(c Content, attrs ...Attr) string      { return Render("h5", attrs, c) }
func H6(c Content, attrs ...Attr) string      { return Render("h6", attrs, c) }
func P(c Content, attrs ...Attr) string       { return Render("p", attrs, c) }
func A(c Content, attrs ...Attr) string       { return Render("a", attrs, c) }
func Img(c Content, attrs ...Attr) string     { return Render("img", attrs, c) }
func Ul(c Content, attrs ...Attr) string      { return Render("ul", attrs, c) }
func Ol(c Content, attrs ...Attr) string      { return Render("ol", attrs, c) }
func Li(c Content, attrs ...Attr) string      { return Render("li", attrs, c) }
func Table(c Content, attrs ...Attr) string   { return Render("table", attrs, c) }
func Thead(c Content, attrs ...Attr) string   { return Render("thead", attrs, c) }
func Tbody(c Content, attrs ...Attr) string   { return Render("tbody", attrs, c) }
func Tr(c Content, attrs ...Attr) string      { return Render("tr", attrs, c) }
func Th(c Content, attrs ...Attr) string      { return Render("th", attrs, c) }
func Td(c Content, attrs ...Attr) string      { return Render("td", attrs, c) }
func Span(c Content, attrs ...Attr) string    { return Render("span", attrs, c) }
func Div(c Content, attrs ...Attr) string     { return Render("div", attrs, c) }
func Code(c Content, attrs ...Attr) string    { return Render("code", attrs, c) }
func Pre(c Content, attrs ...Attr) string     { return Render("pre", attrs, c) }
func Kbd(c Content, attrs ...Attr) string     { return Render("kbd", attrs, c) }
func Strong(c Content, attrs ...Attr) string  { return Render("strong", attrs, c) }
func Em(c Content, attrs ...Attr) string      { return Render("em", attrs, c) }
func HTML(c Content, attrs ...Attr) string    { return Render("html", attrs, c) }
func Head(c Content, attrs ...Attr) string    { return Render("head", attrs, c) }
func Body(c Content, attrs ...Attr) string    { return Render("body", attrs, c) }
func Header(c Content, attrs ...Attr) string  { return Render("header", attrs, c) }
func Footer(c Content, attrs ...Attr) string  { return Render("footer", attrs, c) }
func Nav(c Content, attrs ...Attr) string     { return Render("nav", attrs, c) }
func Main(c Content, attrs ...Attr) string    { return Render("main", attrs, c) }
func Section(c Content, attrs ...Attr) string { return Render("section", attrs, c) }
func Meta(c Content, attrs ...Attr) string    { return Render("meta", attrs, c) }
func Link(c Content, attrs ...Attr) string    { return Render("link", attrs, c) }
func Title(c Content, attrs ...Attr) string   { return Render("title", attrs, c) }
func Style(c Content, attrs ...Attr) string   { return Render("style", attrs, c) }

// catalog maps every supported tag name to its constructor. The set is fixed;
// adding a tag means adding a function above and an entry here.
var catalog = map[string]Constructor{
	"h1":      H1,
	"h2":      H2,
	"h3":      H3,
	"h4":      H4,
	"h5":      H5,
	"h6":      H6,
	"p":       P,
	"a":       A,
	"img":     Img,
	"ul":      Ul,
	"ol":      Ol,
	"li":      Li,
	"table":   Table,
	"thead":   Thead,
	"tbody":   Tbody,
	"tr":      Tr,
	"th":      Th,
	"td":      Td,
	"span":    Span,
	"div":     Div,
	"code":    Code,
	"pre":     Pre,
	"kbd":     Kbd,
	"strong":  Strong,
	"em":      Em,
	"html":    HTML,
	"head":    Head,
	"body":    Body,
	"header":  Header,
	"footer":  Footer,
	"nav":     Nav,
	"main":    Main,
	"section": Section,
	"meta":    Meta,
	"link":    Link,
	"title":   Title,
	"style":   Style,
}

// Lookup returns the constructor registered for name.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return ctor, ok
}

// Tags returns the sorted catalog tag names.
func Tags() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
