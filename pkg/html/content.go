package html

// Content is the inner slot of an element: explicit text, a deferred
// computation, or nothing. The zero Content is "nothing", which makes the
// element render in self-closing form.
type Content struct {
	text    string
	hasText bool
	fn      func() string
}

// None returns empty content. Elements rendered with it self-close.
func None() Content {
	return Content{}
}

// Text returns explicit content. The empty string still counts as content and
// produces an open/close tag pair.
func Text(s string) Content {
	return Content{text: s, hasText: true}
}

// Func returns content produced by fn at render time. A nil fn is treated as
// no content.
func Func(fn func() string) Content {
	return Content{fn: fn}
}

// Or attaches fn as the computation used when no explicit text was supplied.
// Explicit text always takes precedence.
func (c Content) Or(fn func() string) Content {
	if c.hasText {
		return c
	}
	c.fn = fn
	return c
}

// IsNone reports whether no content source was supplied.
func (c Content) IsNone() bool {
	return !c.hasText && c.fn == nil
}

// Resolve returns the content string and whether any source was supplied. The
// computation, if used, is invoked exactly once per call.
func (c Content) Resolve() (string, bool) {
	switch {
	case c.hasText:
		return c.text, true
	case c.fn != nil:
		return c.fn(), true
	default:
		return "", false
	}
}
