package bodyreader

import (
	"testing"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A vMerge continuation with no prior restart in that column is a no-op:
// the cell is left as an ordinary, undropped cell with rowspan 1. This is
// the permissive behavior spec.md §9 documents for a malformed leading
// continuation.
func TestResolveRowSpans_LeadingVMergeWithNoAnchorIsNoop(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:tbl>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc></w:tr>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p/></w:tc></w:tr>`+
		`</w:tbl>`)
	result := reader.ReadBody(children)

	table := result.Elements[0].(*docmodel.Table)
	require.Len(t, table.Children, 2)
	assert.Len(t, table.Children[0].Children, 1, "leading vMerge with no anchor should not be dropped")
	assert.Equal(t, 1, table.Children[0].Children[0].Rowspan)
	assert.Equal(t, 1, table.Children[1].Children[0].Rowspan)
}

// A restart always starts a fresh anchor, never continuing a merge from
// above regardless of the cell above's own merge state.
func TestResolveRowSpans_RestartStartsNewAnchor(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:tbl>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p/></w:tc></w:tr>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p/></w:tc></w:tr>`+
		`</w:tbl>`)
	result := reader.ReadBody(children)

	table := result.Elements[0].(*docmodel.Table)
	require.Len(t, table.Children, 2)
	assert.Equal(t, 1, table.Children[0].Children[0].Rowspan)
	assert.Equal(t, 1, table.Children[1].Children[0].Rowspan)
}

// gridSpan shifts the column cursor, so a merge in a later column still
// finds its anchor correctly.
func TestResolveRowSpans_GridSpanShiftsColumnCursor(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:tbl>`+
		`<w:tr>`+
		`<w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p/></w:tc>`+
		`<w:tc><w:p/></w:tc>`+
		`</w:tr>`+
		`<w:tr>`+
		`<w:tc><w:p/></w:tc>`+
		`<w:tc><w:p/></w:tc>`+
		`<w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc>`+
		`</w:tr>`+
		`</w:tbl>`)
	result := reader.ReadBody(children)

	table := result.Elements[0].(*docmodel.Table)
	require.Len(t, table.Children, 2)
	// row1's second cell sits at column 2 (after the gridSpan=2 first cell).
	// row2's third cell also sits at column 2, so it merges into row1's
	// second cell, not its first.
	assert.Equal(t, 1, table.Children[0].Children[0].Rowspan)
	assert.Equal(t, 2, table.Children[0].Children[1].Rowspan)
	require.Len(t, table.Children[1].Children, 2)
}

// A non-row child of a table disables rowspan resolution entirely, per
// spec.md §4.H's safety rule.
func TestReadTable_NonRowChildDisablesMergeResolution(t *testing.T) {
	opts, _, _, _, _, _, _ := newTestOptions()
	reader := NewReader(opts)

	children := parseBody(t, `<w:tbl>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p/></w:tc></w:tr>`+
		`<w:bizarre/>`+
		`<w:tr><w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc></w:tr>`+
		`</w:tbl>`)
	result := reader.ReadBody(children)

	table := result.Elements[0].(*docmodel.Table)
	require.Len(t, table.Children, 2)
	// merge resolution was skipped, so both cells remain at rowspan 1.
	assert.Equal(t, 1, table.Children[0].Children[0].Rowspan)
	assert.Equal(t, 1, table.Children[1].Children[0].Rowspan)

	var sawAnomaly bool
	for _, m := range result.Messages {
		if m.Text == "unexpected non-row element in table, cell merging may be incorrect" {
			sawAnomaly = true
		}
	}
	assert.True(t, sawAnomaly)
}
