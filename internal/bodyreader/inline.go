package bodyreader

import (
	"strconv"
	"strings"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// readText reads a w:t leaf, whose entire value is its inner text (Word
// never nests markup inside w:t; xml:space="preserve" is handled upstream
// by the XML layer preserving whitespace verbatim).
func (r *Reader) readText(el *xmlnode.Element) ReadResult {
	return Success(&docmodel.Text{Value: el.InnerText()})
}

// readTab reads a w:tab.
func (r *Reader) readTab(el *xmlnode.Element) ReadResult {
	return Success(&docmodel.Tab{})
}

// readNoBreakHyphen reads a w:noBreakHyphen as a non-breaking hyphen.
func (r *Reader) readNoBreakHyphen(el *xmlnode.Element) ReadResult {
	return Success(&docmodel.Text{Value: "‑"})
}

// readSoftHyphen reads a w:softHyphen as a soft hyphen.
func (r *Reader) readSoftHyphen(el *xmlnode.Element) ReadResult {
	return Success(&docmodel.Text{Value: "­"})
}

// readSym resolves a w:sym element through the dingbats table, retrying
// with a stripped "F0" prefix if the literal codepoint misses.
func (r *Reader) readSym(el *xmlnode.Element) ReadResult {
	font := el.AttrOr("w:font", "")
	charAttr, _ := el.Attr("w:char")

	code, err := strconv.ParseInt(strings.TrimPrefix(charAttr, "0x"), 16, 32)
	if err != nil {
		return EmptyWithMessage(docmodel.Warning(
			"A w:sym element with an unsupported character was ignored: char " + charAttr + " in font " + font))
	}

	if ch, ok := lookupDingbat(font, rune(code)); ok {
		return Success(&docmodel.Text{Value: string(ch)})
	}

	return EmptyWithMessage(docmodel.Warning(
		"A w:sym element with an unsupported character was ignored: char " + charAttr + " in font " + font))
}

// readBreak reads a w:br, dispatching on its w:type.
func (r *Reader) readBreak(el *xmlnode.Element) ReadResult {
	switch t := el.AttrOr("w:type", "textWrapping"); t {
	case "textWrapping":
		return Success(&docmodel.LineBreak{})
	case "page":
		return Success(&docmodel.PageBreak{})
	case "column":
		return Success(&docmodel.ColumnBreak{})
	default:
		return EmptyWithMessage(docmodel.Warning("Unsupported break type: " + t))
	}
}

// readBookmarkStart reads a w:bookmarkStart, dropping Word's own "last
// cursor position" bookmark (_GoBack) silently — per spec.md's Open
// Question resolution, this is kept silent to match the original reader
// this specification was distilled from, rather than adding a trace
// message nothing downstream consumes.
func (r *Reader) readBookmarkStart(el *xmlnode.Element) ReadResult {
	name := el.AttrOr("w:name", "")
	if name == "_GoBack" {
		return Empty()
	}
	return Success(&docmodel.Bookmark{Name: name})
}

// readNoteReference reads a w:footnoteReference or w:endnoteReference.
func (r *Reader) readNoteReference(el *xmlnode.Element, noteType string) ReadResult {
	id := el.AttrOr("w:id", "")
	return Success(&docmodel.NoteReference{NoteType: noteType, NoteID: id})
}

// readCommentReference reads a w:commentReference.
func (r *Reader) readCommentReference(el *xmlnode.Element) ReadResult {
	id := el.AttrOr("w:id", "")
	return Success(&docmodel.CommentReference{CommentID: id})
}
