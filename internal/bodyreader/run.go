package bodyreader

import (
	"strconv"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// readToggle implements the OOXML toggle-property convention: the element
// is true if present unless its w:val is "false" or "0". treatNoneAsFalse
// additionally treats w:val="none" as false, the one extra case w:u needs.
func readToggle(el *xmlnode.Element, treatNoneAsFalse bool) bool {
	if el == nil {
		return false
	}
	val, ok := el.Attr("w:val")
	if !ok {
		return true
	}
	switch val {
	case "false", "0":
		return false
	case "none":
		return !treatNoneAsFalse
	default:
		return true
	}
}

// readRun reads a w:r: its w:rPr properties, its children, and the active
// complex-field hyperlink context.
func (r *Reader) readRun(el *xmlnode.Element) ReadResult {
	props := el.FindChild("w:rPr")

	run := &docmodel.Run{
		IsBold:          readToggle(childOrNil(props, "w:b"), false),
		IsItalic:        readToggle(childOrNil(props, "w:i"), false),
		IsUnderline:     readToggle(childOrNil(props, "w:u"), true),
		IsStrikethrough: readToggle(childOrNil(props, "w:strike"), false),
		IsAllCaps:       readToggle(childOrNil(props, "w:caps"), false),
		IsSmallCaps:     readToggle(childOrNil(props, "w:smallCaps"), false),
	}

	if props != nil {
		if v := props.FindChild("w:vertAlign"); v != nil {
			run.VerticalAlignment = v.AttrOr("w:val", "")
		}
		if f := props.FindChild("w:rFonts"); f != nil {
			run.Font = f.AttrOr("w:ascii", "")
		}
		if sz := props.FindChild("w:sz"); sz != nil {
			if halfPoints, ok := sz.Attr("w:val"); ok {
				if n, err := strconv.Atoi(halfPoints); err == nil {
					run.FontSize = float64(n) / 2
					run.HasFontSize = true
				}
			}
		}
		if h := props.FindChild("w:highlight"); h != nil {
			run.HighlightColor = h.AttrOr("w:val", "")
		}
		if c := props.FindChild("w:color"); c != nil {
			run.FontColor = c.AttrOr("w:val", "")
		}
	}

	var styleMessages []docmodel.Message
	if props != nil {
		if styleEl := props.FindChild("w:rStyle"); styleEl != nil {
			if id, ok := styleEl.Attr("w:val"); ok {
				run.StyleID = id
				if info, ok := r.opts.Styles.FindCharacterStyleByID(id); ok {
					run.StyleName = info.Name
				} else {
					styleMessages = append(styleMessages, docmodel.Warning(
						"Character style with ID "+id+" was referenced but not defined in the document"))
				}
			}
		}
	}

	styleResult := ReadResult{Messages: styleMessages}
	result := MapResults(styleResult, r.readChildren(el.Children()), func(_, children []docmodel.Node) []docmodel.Node {
		return children
	})

	run.Children = result.Elements

	if field, ok := r.fields.currentHyperlink(); ok {
		run.Children = []docmodel.Node{&docmodel.Hyperlink{
			Children:    run.Children,
			Href:        field.href,
			Anchor:      field.anchor,
			TargetFrame: field.targetFrame,
		}}
	}

	return ReadResult{
		Elements: []docmodel.Node{run},
		Extras:   result.Extras,
		Messages: result.Messages,
	}
}

func childOrNil(parent *xmlnode.Element, name string) *xmlnode.Element {
	if parent == nil {
		return nil
	}
	return parent.FindChild(name)
}
