// Package xmlnode gives uniform, chainable access to a parsed XML tree:
// element name, attributes, children, and inner text. It wraps etree so the
// body reader never has to special-case a missing child.
package xmlnode

import (
	"strings"

	"github.com/beevik/etree"
)

// Element is a read-only view over one XML element and its subtree.
type Element struct {
	raw *etree.Element
}

// nullElement is the find_child_or_null sentinel: a zero-attribute,
// childless element so chained attribute lookups never need a nil check.
var nullElement = &Element{raw: etree.NewElement("")}

// Wrap adapts an *etree.Element into an Element view. Wrap(nil) returns nil.
func Wrap(e *etree.Element) *Element {
	if e == nil {
		return nil
	}
	return &Element{raw: e}
}

// Document parses xml into a root Element view.
func Document(data []byte) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return Wrap(doc.Root()), nil
}

// Name returns the element's qualified name in "prefix:local" form, matching
// the literal prefixes used throughout OOXML parts (w:, r:, a:, pic:, wp:,
// v:, mc:). Elements with no prefix (the rare unprefixed case) return just
// the local name.
func (e *Element) Name() string {
	if e == nil || e.raw == nil {
		return ""
	}
	if e.raw.Space == "" {
		return e.raw.Tag
	}
	return e.raw.Space + ":" + e.raw.Tag
}

// Attr returns the value of the attribute named by qname ("w:val", "r:id",
// ...) and whether it was present.
func (e *Element) Attr(qname string) (string, bool) {
	if e == nil || e.raw == nil {
		return "", false
	}
	space, local := splitQName(qname)
	for _, a := range e.raw.Attr {
		if a.Key == local && (space == "" || a.Space == space) {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or def if absent.
func (e *Element) AttrOr(qname, def string) string {
	if v, ok := e.Attr(qname); ok {
		return v
	}
	return def
}

// FindChild returns the first direct child named qname, or nil.
func (e *Element) FindChild(qname string) *Element {
	if e == nil || e.raw == nil {
		return nil
	}
	space, local := splitQName(qname)
	for _, c := range e.raw.ChildElements() {
		if c.Tag == local && (space == "" || c.Space == space) {
			return Wrap(c)
		}
	}
	return nil
}

// FindChildOrNil is the find_child_or_null sentinel: it never returns nil,
// so callers can chain .FindChildOrNil(...).Attr(...) without branching.
func (e *Element) FindChildOrNil(qname string) *Element {
	if child := e.FindChild(qname); child != nil {
		return child
	}
	return nullElement
}

// FindChildren returns every direct child named qname, in document order.
func (e *Element) FindChildren(qname string) []*Element {
	if e == nil || e.raw == nil {
		return nil
	}
	space, local := splitQName(qname)
	var out []*Element
	for _, c := range e.raw.ChildElements() {
		if c.Tag == local && (space == "" || c.Space == space) {
			out = append(out, Wrap(c))
		}
	}
	return out
}

// Children returns every direct child element, in document order. Non-element
// nodes (comments, processing instructions) are excluded, mirroring the
// upstream XML parser's node stream.
func (e *Element) Children() []*Element {
	if e == nil || e.raw == nil {
		return nil
	}
	kids := e.raw.ChildElements()
	out := make([]*Element, len(kids))
	for i, c := range kids {
		out[i] = Wrap(c)
	}
	return out
}

// InnerText concatenates all descendant text nodes, depth first.
func (e *Element) InnerText() string {
	if e == nil || e.raw == nil {
		return ""
	}
	var b strings.Builder
	collectText(e.raw, &b)
	return b.String()
}

func collectText(e *etree.Element, b *strings.Builder) {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(t, b)
		}
	}
}

func splitQName(qname string) (space, local string) {
	if idx := strings.IndexByte(qname, ':'); idx >= 0 {
		return qname[:idx], qname[idx+1:]
	}
	return "", qname
}
