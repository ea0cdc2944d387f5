// Package bodyreader walks the XML children of a DOCX document body (or of
// a footnote, endnote, or comment body — the same traversal applies to all
// of them) and produces a docmodel.Document's block children, alongside the
// warning stream describing anything it could not fully understand.
//
// The reader is strictly sequential and single-threaded per instance: it
// owns a complex-field stack and instruction-text buffer that are mutated
// in source order as runs and fldChars are encountered. Two documents may
// be read concurrently by constructing two Readers.
package bodyreader

import (
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// Reader is a single body traversal's mutable state: the lookups it reads
// through, and the complex-field machinery that threads across sibling
// runs within a paragraph.
type Reader struct {
	opts   Options
	fields complexFieldStack
}

// NewReader constructs a Reader bound to opts. A Reader is single-use for
// one body; construct a new one per document (or per note/comment body) to
// get a fresh complex-field stack.
func NewReader(opts Options) *Reader {
	return &Reader{opts: opts}
}

// ReadBody reads the direct children of a document body element (or a
// note/comment body) and returns the resulting nodes and diagnostics. Any
// extras still pending at the end of the body (images that never reached a
// paragraph boundary, which should not happen in well-formed input) are
// appended here so nothing is silently dropped.
func (r *Reader) ReadBody(children []*xmlnode.Element) ReadResult {
	return r.readChildren(children).AppendExtra()
}

// FieldsBalanced reports whether the complex-field stack is empty, i.e. the
// document's begin/separate/end markers were balanced. Exposed for tests
// asserting spec.md §8's complex-field balance invariant.
func (r *Reader) FieldsBalanced() bool {
	return r.fields.empty()
}

// handler reads one element and returns its contribution to the enclosing
// ReadResult.
type handler func(r *Reader, el *xmlnode.Element) ReadResult

// handlers is the closed vocabulary of recognised element names (component
// J). Anything absent from here and from ignoredElements produces a
// warning and an empty result.
var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"w:p":   (*Reader).readParagraph,
		"w:tbl": (*Reader).readTable,

		"w:t":               (*Reader).readText,
		"w:tab":             (*Reader).readTab,
		"w:noBreakHyphen":   (*Reader).readNoBreakHyphen,
		"w:softHyphen":      (*Reader).readSoftHyphen,
		"w:sym":             (*Reader).readSym,
		"w:br":              (*Reader).readBreak,
		"w:bookmarkStart":   (*Reader).readBookmarkStart,
		"w:footnoteReference": func(r *Reader, el *xmlnode.Element) ReadResult {
			return r.readNoteReference(el, "footnote")
		},
		"w:endnoteReference": func(r *Reader, el *xmlnode.Element) ReadResult {
			return r.readNoteReference(el, "endnote")
		},
		"w:commentReference": (*Reader).readCommentReference,

		"w:r": (*Reader).readRun,

		"w:hyperlink": (*Reader).readHyperlink,
		"w:fldChar":   (*Reader).readFldChar,
		"w:instrText": (*Reader).readInstrText,

		"w:pict": (*Reader).readPict,

		"wp:inline": (*Reader).readDrawingImage,
		"wp:anchor": (*Reader).readDrawingImage,
		"v:shape":   (*Reader).readVMLShape,
		"v:imagedata": func(r *Reader, el *xmlnode.Element) ReadResult {
			img, msg := r.readImagedata(el, nil)
			return imageResult(img, msg)
		},

		"w:ins":       (*Reader).readPassThrough,
		"w:object":    (*Reader).readPassThrough,
		"w:smartTag":  (*Reader).readPassThrough,
		"w:drawing":   (*Reader).readPassThrough,
		"v:group":     (*Reader).readPassThrough,
		"v:rect":      (*Reader).readPassThrough,
		"v:roundrect": (*Reader).readPassThrough,
		"v:textbox":   (*Reader).readPassThrough,
		"w:txbxContent": (*Reader).readPassThrough,

		"mc:AlternateContent": (*Reader).readAlternateContent,
		"w:sdt":               (*Reader).readSDT,
	}
}

// ignoredElements yield an empty result with no warning: they are
// recognised but carry nothing the document model represents.
var ignoredElements = map[string]bool{
	"office-word:wrap":           true,
	"v:shadow":                   true,
	"v:shapetype":                true,
	"w:annotationRef":            true,
	"w:bookmarkEnd":              true,
	"w:sectPr":                   true,
	"w:proofErr":                 true,
	"w:lastRenderedPageBreak":    true,
	"w:commentRangeStart":        true,
	"w:commentRangeEnd":          true,
	"w:del":                      true,
	"w:footnoteRef":              true,
	"w:endnoteRef":               true,
	"w:pPr":                      true,
	"w:rPr":                      true,
	"w:tblPr":                    true,
	"w:tblGrid":                  true,
	"w:trPr":                     true,
	"w:tcPr":                     true,
}

// readChildren dispatches every element of children in order and
// concatenates the results, preserving ordering per spec.md §5.
func (r *Reader) readChildren(children []*xmlnode.Element) ReadResult {
	results := make([]ReadResult, 0, len(children))
	for _, el := range children {
		results = append(results, r.readElement(el))
	}
	return Concat(results...)
}

// readElement dispatches a single element by name.
func (r *Reader) readElement(el *xmlnode.Element) ReadResult {
	name := el.Name()
	if h, ok := handlers[name]; ok {
		return h(r, el)
	}
	if ignoredElements[name] {
		return Empty()
	}
	return EmptyWithMessage(docmodel.Warning("An unrecognised element was ignored: " + name))
}

// readPassThrough reads an element's children without producing a node of
// its own (w:ins, w:object, w:smartTag, w:drawing, the v: shape wrappers).
func (r *Reader) readPassThrough(el *xmlnode.Element) ReadResult {
	return r.readChildren(el.Children())
}

// readAlternateContent reads only the mc:Fallback branch of an
// mc:AlternateContent element, ignoring mc:Choice — this reader has no use
// for the richer, newer markup a Choice branch might offer.
func (r *Reader) readAlternateContent(el *xmlnode.Element) ReadResult {
	fallback := el.FindChild("mc:Fallback")
	if fallback == nil {
		return Empty()
	}
	return r.readChildren(fallback.Children())
}

// readSDT reads only a structured document tag's content, ignoring its
// binding metadata.
func (r *Reader) readSDT(el *xmlnode.Element) ReadResult {
	content := el.FindChild("w:sdtContent")
	if content == nil {
		return Empty()
	}
	return r.readChildren(content.Children())
}
