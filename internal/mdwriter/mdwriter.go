// Package mdwriter renders a docmodel.Document to GitHub-flavored Markdown.
// It shares no code with htmlwriter beyond the document model: the two
// surfaces have independent escaping and structural rules, the way
// mammoth's own HTML and (community) Markdown writers are independent
// walks over the same document tree.
package mdwriter

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/benjaminschreck/docx2html/internal/docerr"
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"go.uber.org/multierr"
)

var headingStyleIDs = map[string]int{
	"Heading1": 1, "Heading2": 2, "Heading3": 3,
	"Heading4": 4, "Heading5": 5, "Heading6": 6,
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
)

// Render writes doc as Markdown to w.
func Render(w io.Writer, doc *docmodel.Document) error {
	var b strings.Builder
	var errs error

	for i, node := range doc.Children {
		errs = multierr.Append(errs, renderBlock(&b, node))
		if i < len(doc.Children)-1 {
			b.WriteString("\n\n")
		}
	}
	renderNotesAndComments(&b, doc)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return multierr.Append(errs, docerr.NewRenderError("write", err))
	}
	return errs
}

func renderBlock(b *strings.Builder, node docmodel.Node) error {
	switch n := node.(type) {
	case *docmodel.Paragraph:
		return renderParagraph(b, n)
	case *docmodel.Table:
		return renderTable(b, n)
	case *docmodel.Image:
		return renderImage(b, n)
	}
	return nil
}

func renderParagraph(b *strings.Builder, p *docmodel.Paragraph) error {
	var inline strings.Builder
	var errs error
	for _, child := range p.Children {
		errs = multierr.Append(errs, renderInline(&inline, child))
	}
	content := inline.String()

	if level, ok := headingStyleIDs[p.StyleID]; ok {
		b.WriteString(strings.Repeat("#", level) + " " + content)
		return errs
	}
	if p.Numbering != nil {
		marker := "-"
		if p.Numbering.IsOrdered {
			marker = "1."
		}
		b.WriteString(marker + " " + content)
		return errs
	}
	b.WriteString(content)
	return errs
}

func renderInline(b *strings.Builder, node docmodel.Node) error {
	switch n := node.(type) {
	case *docmodel.Run:
		return renderRun(b, n)
	case *docmodel.Text:
		b.WriteString(mdEscaper.Replace(n.Value))
	case *docmodel.Tab:
		b.WriteString("\t")
	case *docmodel.LineBreak:
		b.WriteString("  \n")
	case *docmodel.PageBreak, *docmodel.ColumnBreak:
		b.WriteString("\n\n---\n\n")
	case *docmodel.Hyperlink:
		return renderHyperlink(b, n)
	case *docmodel.NoteReference:
		fmt.Fprintf(b, "[^%s-%s]", n.NoteType, n.NoteID)
	case *docmodel.CommentReference:
		// markdown has no native comment-anchor convention; rendered inline.
		fmt.Fprintf(b, "[#%s]", n.CommentID)
	case *docmodel.Image:
		return renderImage(b, n)
	}
	return nil
}

func renderRun(b *strings.Builder, r *docmodel.Run) error {
	var inner strings.Builder
	var errs error
	for _, child := range r.Children {
		errs = multierr.Append(errs, renderInline(&inner, child))
	}
	text := inner.String()

	if r.IsBold {
		text = "**" + text + "**"
	}
	if r.IsItalic {
		text = "_" + text + "_"
	}
	if r.IsStrikethrough {
		text = "~~" + text + "~~"
	}
	switch r.VerticalAlignment {
	case "superscript":
		text = "^" + text + "^"
	case "subscript":
		text = "~" + text + "~"
	}
	b.WriteString(text)
	return errs
}

func renderHyperlink(b *strings.Builder, h *docmodel.Hyperlink) error {
	var inner strings.Builder
	var errs error
	for _, child := range h.Children {
		errs = multierr.Append(errs, renderInline(&inner, child))
	}
	href := h.Href
	if href == "" && h.Anchor != "" {
		href = "#" + h.Anchor
	}
	fmt.Fprintf(b, "[%s](%s)", inner.String(), href)
	return errs
}

func renderTable(b *strings.Builder, t *docmodel.Table) error {
	var errs error
	if len(t.Children) == 0 {
		return nil
	}
	cols := 0
	for _, cell := range t.Children[0].Children {
		cols += cell.Colspan
	}

	for rowIdx, row := range t.Children {
		b.WriteString("|")
		for _, cell := range row.Children {
			var inner strings.Builder
			for _, child := range cell.Children {
				errs = multierr.Append(errs, renderBlock(&inner, child))
			}
			b.WriteString(" " + strings.ReplaceAll(inner.String(), "\n", " ") + " |")
			for i := 1; i < cell.Colspan; i++ {
				b.WriteString(" |")
			}
		}
		b.WriteString("\n")
		if rowIdx == 0 {
			b.WriteString("|")
			for i := 0; i < cols; i++ {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
	return errs
}

func renderImage(b *strings.Builder, img *docmodel.Image) error {
	if img.Open == nil {
		return docerr.NewRenderError("image", fmt.Errorf("image has no data source"))
	}
	rc, err := img.Open()
	if err != nil {
		return docerr.NewRenderError("image open", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return docerr.NewRenderError("image read", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	fmt.Fprintf(b, "![%s](data:%s;base64,%s)", mdEscaper.Replace(img.AltText), img.ContentType, encoded)
	return nil
}

func renderNotesAndComments(b *strings.Builder, doc *docmodel.Document) {
	for _, note := range doc.Notes {
		b.WriteString("\n\n[^" + note.NoteType + "-" + note.ID + "]: ")
		for _, child := range note.Body {
			renderBlock(b, child)
		}
	}
	for _, comment := range doc.Comments {
		b.WriteString("\n\n[#" + comment.ID + "]: " + comment.Author)
		if comment.Date != "" {
			b.WriteString(" (" + comment.Date + ")")
		}
		b.WriteString(": ")
		for _, child := range comment.Body {
			renderBlock(b, child)
		}
	}
}
