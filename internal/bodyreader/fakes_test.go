package bodyreader

import (
	"bytes"
	"io"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/lookup"
)

type fakeStyles struct {
	paragraph map[string]lookup.StyleInfo
	character map[string]lookup.StyleInfo
	table     map[string]lookup.StyleInfo
}

func newFakeStyles() *fakeStyles {
	return &fakeStyles{
		paragraph: map[string]lookup.StyleInfo{},
		character: map[string]lookup.StyleInfo{},
		table:     map[string]lookup.StyleInfo{},
	}
}

func (s *fakeStyles) FindParagraphStyleByID(id string) (lookup.StyleInfo, bool) {
	v, ok := s.paragraph[id]
	return v, ok
}

func (s *fakeStyles) FindCharacterStyleByID(id string) (lookup.StyleInfo, bool) {
	v, ok := s.character[id]
	return v, ok
}

func (s *fakeStyles) FindTableStyleByID(id string) (lookup.StyleInfo, bool) {
	v, ok := s.table[id]
	return v, ok
}

type fakeNumbering struct {
	byNumIlvl        map[[2]string]docmodel.NumberingLevel
	byParagraphStyle map[string]docmodel.NumberingLevel
}

func newFakeNumbering() *fakeNumbering {
	return &fakeNumbering{
		byNumIlvl:        map[[2]string]docmodel.NumberingLevel{},
		byParagraphStyle: map[string]docmodel.NumberingLevel{},
	}
}

func (n *fakeNumbering) FindLevel(numID, ilvl string) (docmodel.NumberingLevel, bool) {
	v, ok := n.byNumIlvl[[2]string{numID, ilvl}]
	return v, ok
}

func (n *fakeNumbering) FindLevelByParagraphStyleID(styleID string) (docmodel.NumberingLevel, bool) {
	v, ok := n.byParagraphStyle[styleID]
	return v, ok
}

type fakeRelationships struct {
	targets  map[string]string
	external map[string]bool
}

func newFakeRelationships() *fakeRelationships {
	return &fakeRelationships{targets: map[string]string{}, external: map[string]bool{}}
}

func (r *fakeRelationships) FindTargetByRelationshipID(id string) (string, bool, bool) {
	target, ok := r.targets[id]
	return target, r.external[id], ok
}

type fakeContentTypes struct {
	byPath map[string]string
}

func newFakeContentTypes() *fakeContentTypes {
	return &fakeContentTypes{byPath: map[string]string{}}
}

func (c *fakeContentTypes) FindContentType(path string) string {
	if v, ok := c.byPath[path]; ok {
		return v
	}
	return "application/octet-stream"
}

type fakePackage struct {
	parts map[string][]byte
}

func newFakePackage() *fakePackage {
	return &fakePackage{parts: map[string][]byte{}}
}

func (p *fakePackage) OpenPart(name string) (io.ReadCloser, error) {
	data, ok := p.parts[name]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type fakeFiles struct {
	files map[string][]byte
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: map[string][]byte{}}
}

func (f *fakeFiles) Open(path string) (io.ReadCloser, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func newTestOptions() (Options, *fakeStyles, *fakeNumbering, *fakeRelationships, *fakeContentTypes, *fakePackage, *fakeFiles) {
	styles := newFakeStyles()
	numbering := newFakeNumbering()
	rels := newFakeRelationships()
	contentTypes := newFakeContentTypes()
	pkg := newFakePackage()
	files := newFakeFiles()
	return Options{
		Styles:        styles,
		Numbering:     numbering,
		Relationships: rels,
		ContentTypes:  contentTypes,
		Package:       pkg,
		Files:         files,
	}, styles, numbering, rels, contentTypes, pkg, files
}
