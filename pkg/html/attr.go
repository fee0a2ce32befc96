package html

import (
	stdhtml "html"
	"strings"
)

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindBool
	kindString
)

// classAlias is accepted in place of "class" by callers ported from DSLs where
// class is a reserved word.
const classAlias = "klass"

// Value is an attribute value. The zero Value is absent and never serialized.
type Value struct {
	kind valueKind
	str  string
	on   bool
}

// BoolValue returns a boolean attribute value. False values are dropped at
// render time; true values render as a bare attribute name.
func BoolValue(on bool) Value {
	return Value{kind: kindBool, on: on}
}

// StringValue returns a string attribute value. The value is escaped when
// rendered.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// IsAbsent reports whether the value carries nothing to serialize.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// Attr pairs an attribute name with its value.
type Attr struct {
	Name  string
	Value Value
}

// Attrs is an ordered attribute map. Insertion order is serialization order.
type Attrs []Attr

// Set appends name=value, or replaces the value in place when name is already
// present so the original position is kept.
func (a Attrs) Set(name string, value Value) Attrs {
	for idx := range a {
		if a[idx].Name == name {
			a[idx].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Get returns the value stored under name.
func (a Attrs) Get(name string) (Value, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return Value{}, false
}

// String builds a string attribute.
func String(name, value string) Attr {
	return Attr{Name: name, Value: StringValue(value)}
}

// Bool builds a boolean attribute.
func Bool(name string, on bool) Attr {
	return Attr{Name: name, Value: BoolValue(on)}
}

// Absent builds an attribute that is skipped during rendering.
func Absent(name string) Attr {
	return Attr{Name: name}
}

// Optional builds a string attribute when value is non-nil, and an absent one
// otherwise.
func Optional(name string, value *string) Attr {
	if value == nil {
		return Absent(name)
	}
	return String(name, *value)
}

func Class(value string) Attr    { return String("class", value) }
func ID(value string) Attr       { return String("id", value) }
func Href(value string) Attr     { return String("href", value) }
func Src(value string) Attr      { return String("src", value) }
func Alt(value string) Attr      { return String("alt", value) }
func Rel(value string) Attr      { return String("rel", value) }
func Name(value string) Attr     { return String("name", value) }
func Property(value string) Attr { return String("property", value) }
func Charset(value string) Attr  { return String("charset", value) }
func Lang(value string) Attr     { return String("lang", value) }

// ContentAttr builds the content="" attribute used by meta tags. It is not
// named Content to avoid clashing with the element Content type.
func ContentAttr(value string) Attr { return String("content", value) }

// Escape replaces the five HTML-reserved characters with entities.
func Escape(s string) string {
	return stdhtml.EscapeString(s)
}

func writeAttrs(b *strings.Builder, attrs Attrs) {
	for _, attr := range attrs {
		switch attr.Value.kind {
		case kindAbsent:
			continue
		case kindBool:
			if !attr.Value.on {
				continue
			}
		}

		name := attr.Name
		if name == classAlias {
			name = "class"
		}

		b.WriteByte(' ')
		b.WriteString(name)
		if attr.Value.kind == kindBool {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(Escape(attr.Value.str))
		b.WriteByte('"')
	}
}
