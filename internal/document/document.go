// Package document assembles a docmodel.Document from an opened DOCX
// package: it parses the four lookup tables, reads the main body plus any
// footnote/endnote/comment parts, and threads a relationship-scoped
// PackageOpener/FileOpener pair through the body reader so embedded and
// linked images resolve relative to the part that referenced them.
package document

import (
	"fmt"

	"github.com/benjaminschreck/docx2html/internal/bodyreader"
	"github.com/benjaminschreck/docx2html/internal/docerr"
	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/docxpkg"
	"github.com/benjaminschreck/docx2html/internal/lookup"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

const (
	documentPart  = "word/document.xml"
	stylesPart    = "word/styles.xml"
	numberingPart = "word/numbering.xml"
	footnotesPart = "word/footnotes.xml"
	endnotesPart  = "word/endnotes.xml"
	commentsPart  = "word/comments.xml"
	contentTypes  = "[Content_Types].xml"
)

// Convert opens path as a DOCX package and reads it into a docmodel.Document
// plus the aggregated warning stream from every body (main, footnotes,
// endnotes, comments) it touched.
func Convert(path string, files lookup.Files) (*docmodel.Document, []docmodel.Message, error) {
	pkg, err := docxpkg.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer pkg.Close()

	styles, numbering, contentTypeTable, err := loadTables(pkg)
	if err != nil {
		return nil, nil, err
	}

	docRels, err := parseRelationshipsFor(pkg, documentPart)
	if err != nil {
		return nil, nil, err
	}

	opts := bodyreader.Options{
		Styles:        styles,
		Numbering:     numbering,
		Relationships: docRels,
		ContentTypes:  contentTypeTable,
		Package:       pkg,
		Files:         files,
	}

	var messages []docmodel.Message

	bodyChildren, err := readPartChildren(pkg, documentPart, "w:body")
	if err != nil {
		return nil, nil, err
	}
	mainReader := bodyreader.NewReader(opts)
	mainResult := mainReader.ReadBody(bodyChildren)
	messages = append(messages, mainResult.Messages...)

	doc := &docmodel.Document{Children: mainResult.Elements}

	notes, noteMessages, err := readNotes(pkg, opts, footnotesPart, "w:footnotes", "w:footnote", "footnote")
	if err != nil {
		return nil, nil, err
	}
	messages = append(messages, noteMessages...)

	endnotes, endnoteMessages, err := readNotes(pkg, opts, endnotesPart, "w:endnotes", "w:endnote", "endnote")
	if err != nil {
		return nil, nil, err
	}
	messages = append(messages, endnoteMessages...)

	if len(notes) > 0 || len(endnotes) > 0 {
		doc.Notes = make(map[string]*docmodel.Note, len(notes)+len(endnotes))
		for _, n := range notes {
			doc.Notes[n.NoteType+"-"+n.ID] = n
		}
		for _, n := range endnotes {
			doc.Notes[n.NoteType+"-"+n.ID] = n
		}
	}

	comments, commentMessages, err := readComments(pkg, opts)
	if err != nil {
		return nil, nil, err
	}
	messages = append(messages, commentMessages...)
	doc.Comments = comments

	return doc, messages, nil
}

func loadTables(pkg *docxpkg.Package) (*lookup.Styles, *lookup.Numbering, *lookup.ContentTypes, error) {
	stylesRoot, err := parsePartRoot(pkg, stylesPart)
	if err != nil {
		return nil, nil, nil, err
	}
	numberingRoot, err := parsePartRoot(pkg, numberingPart)
	if err != nil {
		return nil, nil, nil, err
	}
	contentTypesRoot, err := parsePartRoot(pkg, contentTypes)
	if err != nil {
		return nil, nil, nil, err
	}
	return lookup.ParseStyles(stylesRoot),
		lookup.ParseNumbering(numberingRoot),
		lookup.ParseContentTypes(contentTypesRoot),
		nil
}

// parsePartRoot parses an optional part, returning a nil root (not an
// error) when the part is absent — most of these tables are optional in a
// well-formed DOCX.
func parsePartRoot(pkg *docxpkg.Package, name string) (*xmlnode.Element, error) {
	if !pkg.HasPart(name) {
		return nil, nil
	}
	data, err := pkg.Part(name)
	if err != nil {
		return nil, docerr.NewPartError(name, err)
	}
	root, err := xmlnode.Document(data)
	if err != nil {
		return nil, docerr.NewPartError(name, err)
	}
	return root, nil
}

func parseRelationshipsFor(pkg *docxpkg.Package, partName string) (*lookup.Relationships, error) {
	data, err := pkg.RelationshipsFor(partName)
	if err != nil {
		return nil, docerr.NewPartError(partName, err)
	}
	if data == nil {
		return lookup.ParseRelationships(nil), nil
	}
	root, err := xmlnode.Document(data)
	if err != nil {
		return nil, docerr.NewPartError(partName, err)
	}
	return lookup.ParseRelationships(root), nil
}

// readPartChildren parses name and returns the direct children of its
// rootTag element (e.g. w:body inside w:document).
func readPartChildren(pkg *docxpkg.Package, name, rootTag string) ([]*xmlnode.Element, error) {
	root, err := parsePartRoot(pkg, name)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, docerr.NewDocumentError("locate "+rootTag, fmt.Errorf("part %q is missing", name))
	}
	body := root.FindChild(rootTag)
	if body == nil {
		return nil, docerr.NewDocumentError("locate "+rootTag, fmt.Errorf("%q has no %s element", name, rootTag))
	}
	return body.Children(), nil
}

func readNotes(pkg *docxpkg.Package, opts bodyreader.Options, partName, rootTag, noteTag, noteType string) ([]*docmodel.Note, []docmodel.Message, error) {
	root, err := parsePartRoot(pkg, partName)
	if err != nil {
		return nil, nil, err
	}
	if root == nil {
		return nil, nil, nil
	}
	container := root.FindChild(rootTag)
	if container == nil {
		return nil, nil, nil
	}
	rels, err := parseRelationshipsFor(pkg, partName)
	if err != nil {
		return nil, nil, err
	}
	opts.Relationships = rels

	var notes []*docmodel.Note
	var messages []docmodel.Message
	for _, el := range container.FindChildren(noteTag) {
		id, ok := el.Attr("w:id")
		if !ok {
			continue
		}
		// separator/continuationSeparator notes have no visible content and
		// are not addressable from the body; skip them.
		if noteKind := el.AttrOr("w:type", ""); noteKind == "separator" || noteKind == "continuationSeparator" {
			continue
		}
		reader := bodyreader.NewReader(opts)
		result := reader.ReadBody(el.Children())
		messages = append(messages, result.Messages...)
		notes = append(notes, &docmodel.Note{ID: id, NoteType: noteType, Body: result.Elements})
	}
	return notes, messages, nil
}

func readComments(pkg *docxpkg.Package, opts bodyreader.Options) ([]*docmodel.Comment, []docmodel.Message, error) {
	root, err := parsePartRoot(pkg, commentsPart)
	if err != nil {
		return nil, nil, err
	}
	if root == nil {
		return nil, nil, nil
	}
	container := root.FindChild("w:comments")
	if container == nil {
		return nil, nil, nil
	}
	rels, err := parseRelationshipsFor(pkg, commentsPart)
	if err != nil {
		return nil, nil, err
	}
	opts.Relationships = rels

	var comments []*docmodel.Comment
	var messages []docmodel.Message
	for _, el := range container.FindChildren("w:comment") {
		id, ok := el.Attr("w:id")
		if !ok {
			continue
		}
		reader := bodyreader.NewReader(opts)
		result := reader.ReadBody(el.Children())
		messages = append(messages, result.Messages...)
		comments = append(comments, &docmodel.Comment{
			ID:     id,
			Author: el.AttrOr("w:author", ""),
			Date:   el.AttrOr("w:date", ""),
			Body:   result.Elements,
		})
	}
	return comments, messages, nil
}
