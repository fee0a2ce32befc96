package html

import (
	"strings"

	g "maragu.dev/gomponents"
)

var _ g.Node = Element{}

// FromNode returns deferred content that renders a gomponents node when the
// enclosing element is rendered. Rendering into a strings.Builder cannot fail
// on the writer side; a node that reports its own error contributes whatever
// it wrote before failing.
func FromNode(node g.Node) Content {
	if node == nil {
		return None()
	}
	return Func(func() string {
		var b strings.Builder
		_ = node.Render(&b)
		return b.String()
	})
}

// Fragment wraps an already rendered fragment so it can sit inside a
// gomponents tree without being escaped again.
func Fragment(markup string) g.Node {
	return g.Raw(markup)
}
