package bodyreader

import (
	"strconv"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// tableCellBuild is the reader's transient form of a table cell, carrying
// the _vmerge marker and drop flag spec.md §4.H describes until row-span
// resolution erases them.
type tableCellBuild struct {
	children []docmodel.Node
	colspan  int
	rowspan  int
	vmerge   bool
	dropped  bool
}

type tableRowBuild struct {
	isHeader bool
	cells    []*tableCellBuild
}

// readTable reads a w:tbl: table-level style, then rows, then resolves
// vertical merges into explicit rowspans before handing back the final
// docmodel.Table.
func (r *Reader) readTable(el *xmlnode.Element) ReadResult {
	table := &docmodel.Table{}
	var messages []docmodel.Message

	if tblPr := el.FindChild("w:tblPr"); tblPr != nil {
		if styleEl := tblPr.FindChild("w:tblStyle"); styleEl != nil {
			if id, ok := styleEl.Attr("w:val"); ok {
				table.StyleID = id
				if info, ok := r.opts.Styles.FindTableStyleByID(id); ok {
					table.StyleName = info.Name
				} else {
					messages = append(messages, docmodel.Warning(
						"Table style with ID "+id+" was referenced but not defined in the document"))
				}
			}
		}
	}

	var rows []*tableRowBuild
	structuralAnomaly := false

	for _, child := range el.Children() {
		switch child.Name() {
		case "w:tblPr", "w:tblGrid":
			continue
		case "w:tr":
			rowBuild, anomaly, msgs := r.readTableRow(child)
			messages = append(messages, msgs...)
			if anomaly {
				structuralAnomaly = true
			}
			rows = append(rows, rowBuild)
		default:
			structuralAnomaly = true
			messages = append(messages, docmodel.Warning(
				"unexpected non-row element in table, cell merging may be incorrect"))
		}
	}

	if !structuralAnomaly {
		resolveRowSpans(rows)
	}

	for _, rb := range rows {
		table.Children = append(table.Children, rb.toTableRow())
	}

	return ElementsWithMessages([]docmodel.Node{table}, messages)
}

// readTableRow reads a w:tr: header flag, then cells, reporting any
// non-w:tc child as a structural anomaly.
func (r *Reader) readTableRow(el *xmlnode.Element) (*tableRowBuild, bool, []docmodel.Message) {
	row := &tableRowBuild{}
	if trPr := el.FindChild("w:trPr"); trPr != nil {
		row.isHeader = trPr.FindChild("w:tblHeader") != nil
	}

	var messages []docmodel.Message
	anomaly := false

	for _, child := range el.Children() {
		switch child.Name() {
		case "w:trPr":
			continue
		case "w:tc":
			cell, msgs := r.readTableCell(child)
			messages = append(messages, msgs...)
			row.cells = append(row.cells, cell)
		default:
			anomaly = true
			messages = append(messages, docmodel.Warning(
				"unexpected non-cell element in table row, cell merging may be incorrect"))
		}
	}

	return row, anomaly, messages
}

// readTableCell reads a w:tc: its gridSpan (colspan), its vMerge marker,
// and its paragraph/table children.
func (r *Reader) readTableCell(el *xmlnode.Element) (*tableCellBuild, []docmodel.Message) {
	colspan := 1
	vmerge := false

	if tcPr := el.FindChild("w:tcPr"); tcPr != nil {
		if gridSpan := tcPr.FindChild("w:gridSpan"); gridSpan != nil {
			if v, ok := gridSpan.Attr("w:val"); ok {
				if n, err := strconv.Atoi(v); err == nil && n > 0 {
					colspan = n
				}
			}
		}
		if vm := tcPr.FindChild("w:vMerge"); vm != nil {
			val, ok := vm.Attr("w:val")
			vmerge = !ok || val == "continue"
		}
	}

	result := r.readChildren(el.Children()).AppendExtra()

	return &tableCellBuild{
		children: result.Elements,
		colspan:  colspan,
		rowspan:  1,
		vmerge:   vmerge,
	}, result.Messages
}

// resolveRowSpans implements spec.md §4.H's anchor-cell algorithm: walking
// rows top to bottom and, within a row, cells left to right with a column
// cursor that advances by each cell's colspan. A vmerge cell with an anchor
// at its column increments that anchor's rowspan and is marked dropped; a
// vmerge cell with no anchor (no prior restart in that column) is left as
// an ordinary cell and does not itself become an anchor — spec.md's
// documented permissive behavior for a malformed leading continuation.
func resolveRowSpans(rows []*tableRowBuild) {
	columns := map[int]*tableCellBuild{}

	for _, row := range rows {
		column := 0
		for _, cell := range row.cells {
			if cell.vmerge {
				if anchor, ok := columns[column]; ok {
					anchor.rowspan++
					cell.dropped = true
				}
			} else {
				columns[column] = cell
			}
			column += cell.colspan
		}
	}
}

// toTableRow converts a resolved tableRowBuild into its docmodel form,
// dropping cells consumed by a vertical merge.
func (rb *tableRowBuild) toTableRow() *docmodel.TableRow {
	row := &docmodel.TableRow{IsHeader: rb.isHeader}
	for _, cell := range rb.cells {
		if cell.dropped {
			continue
		}
		row.Children = append(row.Children, &docmodel.TableCell{
			Children: cell.children,
			Colspan:  cell.colspan,
			Rowspan:  cell.rowspan,
		})
	}
	return row
}
