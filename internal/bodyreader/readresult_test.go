package bodyreader

import (
	"testing"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/stretchr/testify/assert"
)

func TestReadResult_ConcatPreservesOrder(t *testing.T) {
	a := Success(&docmodel.Text{Value: "a"})
	b := EmptyWithMessage(docmodel.Warning("b warning"))
	c := Success(&docmodel.Text{Value: "c"})

	got := Concat(a, b, c)

	assert.Len(t, got.Elements, 2)
	assert.Equal(t, "a", got.Elements[0].(*docmodel.Text).Value)
	assert.Equal(t, "c", got.Elements[1].(*docmodel.Text).Value)
	assert.Equal(t, []docmodel.Message{docmodel.Warning("b warning")}, got.Messages)
}

func TestReadResult_ToExtraThenAppendExtra(t *testing.T) {
	img := &docmodel.Image{AltText: "promoted"}
	promoted := Success(img).ToExtra()

	assert.Empty(t, promoted.Elements)
	assert.Len(t, promoted.Extras, 1)

	withParagraphText := Success(&docmodel.Text{Value: "body"})
	combined := Concat(withParagraphText, promoted).AppendExtra()

	assert.Len(t, combined.Elements, 2)
	assert.Equal(t, "body", combined.Elements[0].(*docmodel.Text).Value)
	assert.Same(t, img, combined.Elements[1])
	assert.Empty(t, combined.Extras)
}

func TestReadResult_Map(t *testing.T) {
	inner := Concat(Success(&docmodel.Text{Value: "a"}), Success(&docmodel.Text{Value: "b"}))

	wrapped := inner.Map(func(nodes []docmodel.Node) []docmodel.Node {
		return []docmodel.Node{&docmodel.Run{Children: nodes}}
	})

	assert.Len(t, wrapped.Elements, 1)
	run := wrapped.Elements[0].(*docmodel.Run)
	assert.Len(t, run.Children, 2)
}

func TestReadResult_MapResults(t *testing.T) {
	r1 := Success(&docmodel.Text{Value: "left"})
	r2 := Success(&docmodel.Text{Value: "right"})

	combined := MapResults(r1, r2, func(e1, e2 []docmodel.Node) []docmodel.Node {
		return append(append([]docmodel.Node{}, e1...), e2...)
	})

	assert.Len(t, combined.Elements, 2)
}
