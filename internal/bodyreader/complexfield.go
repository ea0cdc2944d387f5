package bodyreader

import (
	"regexp"
	"strings"
)

// complexFieldKind distinguishes a still-unclassified complex field from
// one recognised as a HYPERLINK instruction.
type complexFieldKind int

const (
	fieldUnknown complexFieldKind = iota
	fieldHyperlink
)

// complexField is one entry of the complex-field stack: either an
// unclassified field (most TOC/REF/PAGE fields, which this reader never
// needs to act on) or a parsed HYPERLINK with an external href or an
// internal anchor.
type complexField struct {
	kind        complexFieldKind
	href        string
	anchor      string
	targetFrame string
}

var (
	hyperlinkHrefPattern   = regexp.MustCompile(`^\s*HYPERLINK\s+"([^"]*)"`)
	hyperlinkAnchorPattern = regexp.MustCompile(`^\s*HYPERLINK\s+\\l\s+"([^"]*)"`)
)

// parseInstrText classifies the accumulated w:instrText buffer of a field
// at its "separate" boundary.
func parseInstrText(instr string) complexField {
	if m := hyperlinkAnchorPattern.FindStringSubmatch(instr); m != nil {
		return complexField{kind: fieldHyperlink, anchor: m[1]}
	}
	if m := hyperlinkHrefPattern.FindStringSubmatch(instr); m != nil {
		return complexField{kind: fieldHyperlink, href: m[1]}
	}
	return complexField{kind: fieldUnknown}
}

// complexFieldStack tracks nested w:fldChar begin/separate/end markers
// across the sibling runs of one paragraph (complex fields never nest
// across paragraph boundaries in practice, but the stack itself places no
// such restriction). It is owned by one Reader for the lifetime of one
// body traversal.
type complexFieldStack struct {
	stack []complexField
	instr strings.Builder
}

// begin pushes a new unclassified field and resets the instruction-text
// buffer that separate will read from.
func (s *complexFieldStack) begin() {
	s.stack = append(s.stack, complexField{kind: fieldUnknown})
	s.instr.Reset()
}

// appendInstrText accumulates w:instrText content for the field currently
// being defined.
func (s *complexFieldStack) appendInstrText(text string) {
	s.instr.WriteString(text)
}

// separate classifies the top-of-stack field from the accumulated
// instruction text. Called with an empty stack (malformed input) is a
// no-op.
func (s *complexFieldStack) separate() {
	if len(s.stack) == 0 {
		return
	}
	s.stack[len(s.stack)-1] = parseInstrText(s.instr.String())
}

// end pops the top field. An unmatched end on an empty stack is tolerated
// as a no-op per spec.md §4.G.
func (s *complexFieldStack) end() {
	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// currentHyperlink scans the stack top-down for the nearest classified
// Hyperlink field, so nested fields resolve to the innermost hyperlink.
func (s *complexFieldStack) currentHyperlink() (complexField, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].kind == fieldHyperlink {
			return s.stack[i], true
		}
	}
	return complexField{}, false
}

// empty reports whether the stack is balanced, used by tests asserting the
// complex-field balance invariant of spec.md §8.
func (s *complexFieldStack) empty() bool {
	return len(s.stack) == 0
}
