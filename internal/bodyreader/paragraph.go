package bodyreader

import (
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// readParagraph reads a w:p: its w:pPr properties, then its children,
// finalizing with AppendExtra so images promoted out of runs (w:pict
// contents) surface at paragraph scope rather than drifting further up.
func (r *Reader) readParagraph(el *xmlnode.Element) ReadResult {
	props := el.FindChild("w:pPr")

	paragraph := &docmodel.Paragraph{}
	var messages []docmodel.Message

	if props != nil {
		if jc := props.FindChild("w:jc"); jc != nil {
			paragraph.Alignment = jc.AttrOr("w:val", "")
		}
		if ind := props.FindChild("w:ind"); ind != nil {
			paragraph.Indent = readParagraphIndent(ind)
		}
		if styleEl := props.FindChild("w:pStyle"); styleEl != nil {
			if id, ok := styleEl.Attr("w:val"); ok {
				paragraph.StyleID = id
				if info, ok := r.opts.Styles.FindParagraphStyleByID(id); ok {
					paragraph.StyleName = info.Name
				} else {
					messages = append(messages, docmodel.Warning(
						"Paragraph style with ID "+id+" was referenced but not defined in the document"))
				}
			}
		}

		paragraph.Numbering, paragraph.ListID = r.readNumbering(props, paragraph.StyleID)
	}

	result := r.readChildren(el.Children()).AppendExtra()
	paragraph.Children = result.Elements

	return ReadResult{
		Elements: []docmodel.Node{paragraph},
		Messages: append(messages, result.Messages...),
	}
}

// readParagraphIndent reads w:ind, preferring the newer start/end attribute
// names over the legacy left/right ones.
func readParagraphIndent(ind *xmlnode.Element) *docmodel.ParagraphIndent {
	start := ind.AttrOr("w:start", ind.AttrOr("w:left", ""))
	end := ind.AttrOr("w:end", ind.AttrOr("w:right", ""))
	firstLine := ind.AttrOr("w:firstLine", "")
	hanging := ind.AttrOr("w:hanging", "")
	if start == "" && end == "" && firstLine == "" && hanging == "" {
		return nil
	}
	return &docmodel.ParagraphIndent{Start: start, End: end, FirstLine: firstLine, Hanging: hanging}
}

// readNumbering implements spec.md §4.F's numbering-resolution precedence:
// an explicit numId of "0" unlists the paragraph; otherwise a paragraph
// style's own implied level wins over an explicit (numId, ilvl) pair.
func (r *Reader) readNumbering(props *xmlnode.Element, styleID string) (*docmodel.NumberingLevel, string) {
	numPr := props.FindChild("w:numPr")
	if numPr == nil {
		return nil, ""
	}

	numID := ""
	if numIDEl := numPr.FindChild("w:numId"); numIDEl != nil {
		numID = numIDEl.AttrOr("w:val", "")
	}
	ilvl := ""
	if ilvlEl := numPr.FindChild("w:ilvl"); ilvlEl != nil {
		ilvl = ilvlEl.AttrOr("w:val", "")
	}

	if numID == "0" {
		return nil, numID
	}

	if styleID != "" {
		if level, ok := r.opts.Numbering.FindLevelByParagraphStyleID(styleID); ok {
			return &level, numID
		}
	}

	if numID != "" && ilvl != "" {
		if level, ok := r.opts.Numbering.FindLevel(numID, ilvl); ok {
			return &level, numID
		}
	}

	return nil, numID
}
