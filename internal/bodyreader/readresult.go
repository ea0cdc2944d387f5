package bodyreader

import "github.com/benjaminschreck/docx2html/internal/docmodel"

// ReadResult is the value every handler in this package produces: the nodes
// read so far, a side channel of "extras" waiting to be reattached at the
// nearest paragraph or table boundary, and the warnings accumulated along
// the way. None of its operations mutate their receiver; composing results
// is just concatenation of three parallel sequences.
type ReadResult struct {
	Elements []docmodel.Node
	Extras   []docmodel.Node
	Messages []docmodel.Message
}

// Success wraps zero or more nodes with no extras or messages.
func Success(nodes ...docmodel.Node) ReadResult {
	return ReadResult{Elements: nodes}
}

// Empty is the identity value for Concat.
func Empty() ReadResult {
	return ReadResult{}
}

// EmptyWithMessage carries no nodes but one diagnostic — the shape returned
// by a handler that could not produce anything useful (an unrecognised
// element, a dangling reference) but must still let traversal continue.
func EmptyWithMessage(m docmodel.Message) ReadResult {
	return ReadResult{Messages: []docmodel.Message{m}}
}

// ElementsWithMessages pairs nodes with diagnostics in one result, e.g. an
// Image whose MIME type draws a browser-compatibility warning, or a table
// whose style or structure produced warnings while still producing output.
func ElementsWithMessages(elements []docmodel.Node, messages []docmodel.Message) ReadResult {
	return ReadResult{Elements: elements, Messages: messages}
}

// Concat concatenates results component-wise, preserving the order results
// were passed in. This is how dispatch (component J) folds a body's
// children into one result for its parent.
func Concat(results ...ReadResult) ReadResult {
	out := ReadResult{}
	for _, r := range results {
		out.Elements = append(out.Elements, r.Elements...)
		out.Extras = append(out.Extras, r.Extras...)
		out.Messages = append(out.Messages, r.Messages...)
	}
	return out
}

// Map replaces r's elements with f(r.Elements), leaving extras and messages
// untouched. Used by handlers that assemble one composite node (a paragraph,
// a run) out of its already-read children.
func (r ReadResult) Map(f func([]docmodel.Node) []docmodel.Node) ReadResult {
	return ReadResult{Elements: f(r.Elements), Extras: r.Extras, Messages: r.Messages}
}

// FlatMap threads r's elements through f, then merges f's extras and
// messages in after r's own.
func (r ReadResult) FlatMap(f func([]docmodel.Node) ReadResult) ReadResult {
	next := f(r.Elements)
	return ReadResult{
		Elements: next.Elements,
		Extras:   append(append([]docmodel.Node{}, r.Extras...), next.Extras...),
		Messages: append(append([]docmodel.Message{}, r.Messages...), next.Messages...),
	}
}

// MapResults combines two results' elements with f, concatenating both
// sides' extras and messages in order (r1 before r2).
func MapResults(r1, r2 ReadResult, f func(e1, e2 []docmodel.Node) []docmodel.Node) ReadResult {
	return ReadResult{
		Elements: f(r1.Elements, r2.Elements),
		Extras:   append(append([]docmodel.Node{}, r1.Extras...), r2.Extras...),
		Messages: append(append([]docmodel.Message{}, r1.Messages...), r2.Messages...),
	}
}

// ToExtra demotes r's elements into extras, used when a node (typically an
// Image found inside a w:pict) must float up past its immediate container
// rather than appear inline where it was encountered.
func (r ReadResult) ToExtra() ReadResult {
	return ReadResult{Extras: append(append([]docmodel.Node{}, r.Extras...), r.Elements...), Messages: r.Messages}
}

// AppendExtra reattaches any pending extras after the current elements and
// clears the extras channel. Paragraph and table readers call this once,
// at their own boundary, so extras never drift further up than necessary.
func (r ReadResult) AppendExtra() ReadResult {
	return ReadResult{
		Elements: append(append([]docmodel.Node{}, r.Elements...), r.Extras...),
		Messages: r.Messages,
	}
}
