package lookup

import (
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

type numIlvlKey struct {
	numID string
	ilvl  string
}

// Numbering resolves (numId, ilvl) pairs and paragraph-style ids to list
// levels, following numbering.xml's two-stage indirection: a w:num maps a
// numId to an abstractNumId, and the abstractNum entry carries one w:lvl
// per indentation depth.
type Numbering struct {
	byNumIlvl        map[numIlvlKey]docmodel.NumberingLevel
	byParagraphStyle map[string]docmodel.NumberingLevel
}

// ParseNumbering builds a Numbering table from word/numbering.xml's root
// w:numbering element.
func ParseNumbering(root *xmlnode.Element) *Numbering {
	n := &Numbering{
		byNumIlvl:        map[numIlvlKey]docmodel.NumberingLevel{},
		byParagraphStyle: map[string]docmodel.NumberingLevel{},
	}
	if root == nil {
		return n
	}

	abstract := map[string]*xmlnode.Element{}
	for _, el := range root.FindChildren("w:abstractNum") {
		if id, ok := el.Attr("w:abstractNumId"); ok {
			abstract[id] = el
		}
	}

	numToAbstract := map[string]string{}
	for _, el := range root.FindChildren("w:num") {
		numID, ok := el.Attr("w:numId")
		if !ok {
			continue
		}
		if ref := el.FindChild("w:abstractNumId"); ref != nil {
			if v, ok := ref.Attr("w:val"); ok {
				numToAbstract[numID] = v
			}
		}
	}

	for numID, abstractID := range numToAbstract {
		abstractEl, ok := abstract[abstractID]
		if !ok {
			continue
		}
		for _, lvl := range abstractEl.FindChildren("w:lvl") {
			ilvl, ok := lvl.Attr("w:ilvl")
			if !ok {
				continue
			}
			level := levelFromElement(ilvl, lvl)
			n.byNumIlvl[numIlvlKey{numID: numID, ilvl: ilvl}] = level

			if pStyle := lvl.FindChild("w:pStyle"); pStyle != nil {
				if styleID, ok := pStyle.Attr("w:val"); ok {
					n.byParagraphStyle[styleID] = level
				}
			}
		}
	}

	return n
}

func levelFromElement(ilvl string, lvl *xmlnode.Element) docmodel.NumberingLevel {
	isOrdered := true
	if fmtEl := lvl.FindChild("w:numFmt"); fmtEl != nil {
		if v, ok := fmtEl.Attr("w:val"); ok && v == "bullet" {
			isOrdered = false
		}
	}
	return docmodel.NumberingLevel{LevelIndex: ilvl, IsOrdered: isOrdered}
}

// FindLevel resolves a (numId, ilvl) pair directly.
func (n *Numbering) FindLevel(numID, ilvl string) (docmodel.NumberingLevel, bool) {
	level, ok := n.byNumIlvl[numIlvlKey{numID: numID, ilvl: ilvl}]
	return level, ok
}

// FindLevelByParagraphStyleID resolves the list level a paragraph style
// itself implies, independent of any explicit w:numPr on the paragraph.
func (n *Numbering) FindLevelByParagraphStyleID(styleID string) (docmodel.NumberingLevel, bool) {
	level, ok := n.byParagraphStyle[styleID]
	return level, ok
}
