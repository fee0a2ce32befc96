// Package html renders HTML fragments from a tag name, an ordered attribute
// list and optional content.
//
// The renderer builds strings, not trees: every call returns the markup for a
// single element and nested markup is produced by composing calls.
//
//	html.A(html.Text("x"), html.Href("a&b"))         // <a href="a&amp;b">x</a>
//	html.Img(html.None(), html.Src("/logo.svg"))     // <img src="/logo.svg" />
//	html.Ul(html.Func(func() string {
//		return html.Li(html.Text("one")) + html.Li(html.Text("two"))
//	}))
//
// An element without any content source always renders in self-closing form,
// including tags that are not void in HTML5 (a bare Div renders as <div />).
// Pass html.Text("") to force an open/close pair.
package html
