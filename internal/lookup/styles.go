package lookup

import "github.com/benjaminschreck/docx2html/internal/xmlnode"

// StyleInfo is the resolved {id, name} pair for one named style.
type StyleInfo struct {
	ID   string
	Name string
}

// Styles holds the three style tables styles.xml defines, keyed by
// w:styleId. Paragraph, character and table styles are independent
// namespaces in OOXML: the same id string can legitimately mean different
// styles in each table.
type Styles struct {
	paragraph map[string]StyleInfo
	character map[string]StyleInfo
	table     map[string]StyleInfo
}

// ParseStyles builds a Styles table from word/styles.xml's root w:styles
// element.
func ParseStyles(root *xmlnode.Element) *Styles {
	s := &Styles{
		paragraph: map[string]StyleInfo{},
		character: map[string]StyleInfo{},
		table:     map[string]StyleInfo{},
	}
	if root == nil {
		return s
	}
	for _, el := range root.FindChildren("w:style") {
		id, ok := el.Attr("w:styleId")
		if !ok {
			continue
		}
		name := id
		if nameEl := el.FindChild("w:name"); nameEl != nil {
			if v, ok := nameEl.Attr("w:val"); ok && v != "" {
				name = v
			}
		}
		info := StyleInfo{ID: id, Name: name}
		switch el.AttrOr("w:type", "paragraph") {
		case "character":
			s.character[id] = info
		case "table":
			s.table[id] = info
		default:
			s.paragraph[id] = info
		}
	}
	return s
}

// FindParagraphStyleByID looks up a paragraph style by id.
func (s *Styles) FindParagraphStyleByID(id string) (StyleInfo, bool) {
	info, ok := s.paragraph[id]
	return info, ok
}

// FindCharacterStyleByID looks up a character (run) style by id.
func (s *Styles) FindCharacterStyleByID(id string) (StyleInfo, bool) {
	info, ok := s.character[id]
	return info, ok
}

// FindTableStyleByID looks up a table style by id.
func (s *Styles) FindTableStyleByID(id string) (StyleInfo, bool) {
	info, ok := s.table[id]
	return info, ok
}
