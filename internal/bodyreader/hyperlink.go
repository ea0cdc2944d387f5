package bodyreader

import (
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// readHyperlink reads an explicit w:hyperlink element (as opposed to a
// complex-field HYPERLINK, handled in run.go/complexfield.go). Its r:id
// resolves through the relationships table to an external target; its
// w:anchor, if present alongside a resolved href, becomes that href's
// fragment rather than a separate internal-only anchor.
func (r *Reader) readHyperlink(el *xmlnode.Element) ReadResult {
	anchor := el.AttrOr("w:anchor", "")
	targetFrame := el.AttrOr("w:tgtFrame", "")

	var href string
	if relID, ok := el.Attr("r:id"); ok {
		if target, _, ok := r.opts.Relationships.FindTargetByRelationshipID(relID); ok {
			href = target
			if anchor != "" {
				href = href + "#" + anchor
				anchor = ""
			}
		}
	}

	result := r.readChildren(el.Children())

	// A hyperlink with neither a relationship id nor an anchor targets
	// nothing; its children pass through unwrapped rather than producing a
	// Hyperlink node with an empty href.
	if href == "" && anchor == "" {
		return result
	}

	link := &docmodel.Hyperlink{
		Children:    result.Elements,
		Href:        href,
		Anchor:      anchor,
		TargetFrame: targetFrame,
	}

	return ReadResult{
		Elements: []docmodel.Node{link},
		Extras:   result.Extras,
		Messages: result.Messages,
	}
}

// readFldChar mutates the complex-field stack per spec.md §4.G and
// produces no node of its own.
func (r *Reader) readFldChar(el *xmlnode.Element) ReadResult {
	switch el.AttrOr("w:fldCharType", "") {
	case "begin":
		r.fields.begin()
	case "separate":
		r.fields.separate()
	case "end":
		r.fields.end()
	}
	return Empty()
}

// readInstrText accumulates a w:instrText's text into the field currently
// being defined.
func (r *Reader) readInstrText(el *xmlnode.Element) ReadResult {
	r.fields.appendInstrText(el.InnerText())
	return Empty()
}

// readPict reads a w:pict's children (typically a v:shape/v:imagedata
// chain resolving to an Image) and promotes whatever it produced to extras,
// so the image surfaces at the next paragraph boundary instead of wherever
// the w:pict happened to be nested.
func (r *Reader) readPict(el *xmlnode.Element) ReadResult {
	return r.readChildren(el.Children()).ToExtra()
}
