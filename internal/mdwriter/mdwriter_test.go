package mdwriter

import (
	"bytes"
	"testing"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BoldItalicMarkers(t *testing.T) {
	doc := &docmodel.Document{
		Children: []docmodel.Node{
			&docmodel.Paragraph{Children: []docmodel.Node{
				&docmodel.Run{IsBold: true, IsItalic: true, Children: []docmodel.Node{&docmodel.Text{Value: "hi"}}},
			}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Equal(t, "_**hi**_", buf.String())
}

func TestRender_Heading(t *testing.T) {
	doc := &docmodel.Document{
		Children: []docmodel.Node{
			&docmodel.Paragraph{StyleID: "Heading2", Children: []docmodel.Node{&docmodel.Text{Value: "Sub"}}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Equal(t, "## Sub", buf.String())
}

func TestRender_Table(t *testing.T) {
	doc := &docmodel.Document{
		Children: []docmodel.Node{
			&docmodel.Table{Children: []*docmodel.TableRow{
				{Children: []*docmodel.TableCell{
					{Rowspan: 1, Colspan: 1, Children: []docmodel.Node{&docmodel.Text{Value: "a"}}},
					{Rowspan: 1, Colspan: 1, Children: []docmodel.Node{&docmodel.Text{Value: "b"}}},
				}},
			}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Contains(t, buf.String(), "| a | b |")
	assert.Contains(t, buf.String(), "| --- | --- |")
}

func TestRender_HyperlinkMarkdownSyntax(t *testing.T) {
	doc := &docmodel.Document{
		Children: []docmodel.Node{
			&docmodel.Paragraph{Children: []docmodel.Node{
				&docmodel.Hyperlink{Href: "http://example.com", Children: []docmodel.Node{&docmodel.Text{Value: "link"}}},
			}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Equal(t, "[link](http://example.com)", buf.String())
}
