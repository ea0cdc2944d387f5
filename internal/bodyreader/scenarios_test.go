package bodyreader

import (
	"testing"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nsHeader = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture" ` +
	`xmlns:v="urn:schemas-microsoft-com:vml"`

func parseBody(t *testing.T, inner string) []*xmlnode.Element {
	t.Helper()
	xml := `<root ` + nsHeader + `>` + inner + `</root>`
	root, err := xmlnode.Document([]byte(xml))
	require.NoError(t, err)
	return root.Children()
}

// Scenario 1: a single paragraph with a single run and no style tables.
func TestReadBody_SimpleParagraph(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p><w:r><w:t>Walking on imported air</w:t></w:r></w:p>`)
	result := reader.ReadBody(children)

	require.Empty(t, result.Messages)
	require.Len(t, result.Elements, 1)

	paragraph, ok := result.Elements[0].(*docmodel.Paragraph)
	require.True(t, ok)
	require.Len(t, paragraph.Children, 1)

	run, ok := paragraph.Children[0].(*docmodel.Run)
	require.True(t, ok)
	require.Len(t, run.Children, 1)

	text, ok := run.Children[0].(*docmodel.Text)
	require.True(t, ok)
	assert.Equal(t, "Walking on imported air", text.Value)
}

// Scenario 2: numId "0" explicitly unlists a paragraph, but list_id still
// reports the verbatim numId.
func TestReadBody_NumIdZeroUnlists(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p><w:pPr><w:numPr><w:numId w:val="0"/><w:ilvl w:val="0"/></w:numPr></w:pPr><w:r><w:t>X</w:t></w:r></w:p>`)
	result := reader.ReadBody(children)

	require.Len(t, result.Elements, 1)
	paragraph := result.Elements[0].(*docmodel.Paragraph)
	assert.Nil(t, paragraph.Numbering)
	assert.Equal(t, "0", paragraph.ListID)
}

// Scenario 3: a HYPERLINK complex field wraps only the runs read while it
// is active.
func TestReadBody_ComplexFieldHyperlink(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p>`+
		`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`+
		`<w:r><w:instrText> HYPERLINK "http://e.com"</w:instrText></w:r>`+
		`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`+
		`<w:r><w:t>E</w:t></w:r>`+
		`<w:r><w:fldChar w:fldCharType="end"/></w:r>`+
		`<w:r><w:t>X</w:t></w:r>`+
		`</w:p>`)
	result := reader.ReadBody(children)

	require.Len(t, result.Elements, 1)
	paragraph := result.Elements[0].(*docmodel.Paragraph)

	var runs []*docmodel.Run
	for _, child := range paragraph.Children {
		if run, ok := child.(*docmodel.Run); ok {
			runs = append(runs, run)
		}
	}
	require.Len(t, runs, 6)

	// runs[3] is the "E" run, read while the HYPERLINK field is active.
	hyperlinkRun := runs[3]
	require.Len(t, hyperlinkRun.Children, 1)
	hyperlink, ok := hyperlinkRun.Children[0].(*docmodel.Hyperlink)
	require.True(t, ok)
	assert.Equal(t, "http://e.com", hyperlink.Href)
	require.Len(t, hyperlink.Children, 1)
	assert.Equal(t, "E", hyperlink.Children[0].(*docmodel.Text).Value)

	// runs[5] is the "X" run, read after the field's "end" — unaffected.
	trailingRun := runs[5]
	require.Len(t, trailingRun.Children, 1)
	text, ok := trailingRun.Children[0].(*docmodel.Text)
	require.True(t, ok)
	assert.Equal(t, "X", text.Value)

	assert.True(t, reader.FieldsBalanced())
}

// Scenario 4: a two-by-two table whose second row's first cell continues a
// vertical merge collapses to a single anchor cell with rowspan 2.
func TestReadBody_TableVerticalMerge(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:tbl>`+
		`<w:tr>`+
		`<w:tc><w:p><w:r><w:t>A1</w:t></w:r></w:p></w:tc>`+
		`<w:tc><w:p><w:r><w:t>B1</w:t></w:r></w:p></w:tc>`+
		`</w:tr>`+
		`<w:tr>`+
		`<w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc>`+
		`<w:tc><w:p><w:r><w:t>B2</w:t></w:r></w:p></w:tc>`+
		`</w:tr>`+
		`</w:tbl>`)
	result := reader.ReadBody(children)

	require.Len(t, result.Elements, 1)
	table := result.Elements[0].(*docmodel.Table)
	require.Len(t, table.Children, 2)

	row1 := table.Children[0]
	require.Len(t, row1.Children, 2)
	assert.Equal(t, 2, row1.Children[0].Rowspan)
	assert.Equal(t, 1, row1.Children[0].Colspan)
	assert.Equal(t, 1, row1.Children[1].Rowspan)

	row2 := table.Children[1]
	require.Len(t, row2.Children, 1)
}

// Scenario 5: a w:sym resolved through the dingbats table with no warning.
func TestReadBody_SymDingbat(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p><w:r><w:sym w:font="Wingdings" w:char="F028"/></w:r></w:p>`)
	result := reader.ReadBody(children)

	require.Empty(t, result.Messages)
	paragraph := result.Elements[0].(*docmodel.Paragraph)
	run := paragraph.Children[0].(*docmodel.Run)
	require.Len(t, run.Children, 1)
	text := run.Children[0].(*docmodel.Text)
	assert.Equal(t, string(rune(0x1F44D)), text.Value)
}

// Scenario 6: EMU extents convert to the expected pixel sizes.
func TestReadBody_DrawingExtent(t *testing.T) {
	assert.Equal(t, 100, emuToPixels(952500))
	assert.Equal(t, 50, emuToPixels(476250))
}

func TestEMUToPixels_Identities(t *testing.T) {
	assert.Equal(t, 96, emuToPixels(914400))
	assert.Equal(t, 1, emuToPixels(9525))
}

// An unrecognised element yields no node but a warning naming it.
func TestReadBody_UnknownElementWarns(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:weirdThing/>`)
	result := reader.ReadBody(children)

	require.Empty(t, result.Elements)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "An unrecognised element was ignored: w:weirdThing", result.Messages[0].Text)
}

// A missing paragraph style id produces both a warning and no style name.
func TestReadBody_DanglingParagraphStyle(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p><w:pPr><w:pStyle w:val="Missing"/></w:pPr><w:r><w:t>x</w:t></w:r></w:p>`)
	result := reader.ReadBody(children)

	paragraph := result.Elements[0].(*docmodel.Paragraph)
	assert.Equal(t, "Missing", paragraph.StyleID)
	assert.Empty(t, paragraph.StyleName)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0].Text, "Missing")
}

// Unmatched end is a no-op; the stack remains balanced.
func TestComplexFieldStack_UnmatchedEndIsNoop(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p><w:r><w:fldChar w:fldCharType="end"/></w:r></w:p>`)
	reader.ReadBody(children)
	assert.True(t, reader.FieldsBalanced())
}

// An unmatched begin leaves the stack non-empty but does not corrupt the
// sibling run that follows it.
func TestComplexFieldStack_UnmatchedBeginDoesNotCorruptSiblings(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p>`+
		`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`+
		`<w:r><w:t>unaffected</w:t></w:r>`+
		`</w:p>`)
	result := reader.ReadBody(children)

	paragraph := result.Elements[0].(*docmodel.Paragraph)
	var runs []*docmodel.Run
	for _, c := range paragraph.Children {
		if run, ok := c.(*docmodel.Run); ok {
			runs = append(runs, run)
		}
	}
	require.Len(t, runs, 2)
	text, ok := runs[1].Children[0].(*docmodel.Text)
	require.True(t, ok)
	assert.Equal(t, "unaffected", text.Value)
	assert.False(t, reader.FieldsBalanced())
}

// Boolean toggle properties follow the OOXML convention.
func TestReadRun_BooleanToggles(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:p>`+
		`<w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r>`+
		`<w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>notbold</w:t></w:r>`+
		`<w:r><w:rPr><w:u w:val="none"/></w:rPr><w:t>nounderline</w:t></w:r>`+
		`<w:r><w:rPr><w:u w:val="single"/></w:rPr><w:t>underlined</w:t></w:r>`+
		`</w:p>`)
	result := reader.ReadBody(children)
	paragraph := result.Elements[0].(*docmodel.Paragraph)

	runs := make([]*docmodel.Run, 0, 4)
	for _, c := range paragraph.Children {
		runs = append(runs, c.(*docmodel.Run))
	}
	require.Len(t, runs, 4)
	assert.True(t, runs[0].IsBold)
	assert.False(t, runs[1].IsBold)
	assert.False(t, runs[2].IsUnderline)
	assert.True(t, runs[3].IsUnderline)
}
