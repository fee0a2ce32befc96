package html

import (
	"io"
	"strings"
)

// Element is a tag, its attributes and its content. It carries no identity
// beyond the markup it renders to.
type Element struct {
	Tag     string
	Attrs   Attrs
	Content Content
}

// El builds an Element.
func El(tag string, content Content, attrs ...Attr) Element {
	return Element{Tag: tag, Attrs: attrs, Content: content}
}

// String renders the element.
func (e Element) String() string {
	return Render(e.Tag, e.Attrs, e.Content)
}

// Render writes the element to w. With this method Element satisfies
// gomponents.Node and can be placed directly inside gomponents trees.
func (e Element) Render(w io.Writer) error {
	_, err := io.WriteString(w, e.String())
	return err
}

// Render serializes tag, attrs and content into an HTML fragment.
//
// Attributes are written in order, skipping absent values and false booleans.
// When content is supplied (even the empty string) the fragment is
// <tag ...>content</tag>; when no content source is supplied at all the
// fragment is <tag ... />, whatever the tag. Content is embedded verbatim.
func Render(tag string, attrs Attrs, content Content) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(&b, attrs)

	inner, ok := content.Resolve()
	if !ok {
		b.WriteString(" />")
		return b.String()
	}

	b.WriteByte('>')
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// Join concatenates rendered fragments.
func Join(fragments ...string) string {
	return strings.Join(fragments, "")
}
