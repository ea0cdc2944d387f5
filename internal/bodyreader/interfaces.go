package bodyreader

import (
	"io"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/lookup"
)

// StyleLookup resolves style ids to names, independently for each of the
// three style namespaces OOXML defines.
type StyleLookup interface {
	FindParagraphStyleByID(id string) (lookup.StyleInfo, bool)
	FindCharacterStyleByID(id string) (lookup.StyleInfo, bool)
	FindTableStyleByID(id string) (lookup.StyleInfo, bool)
}

// NumberingLookup resolves a (numId, ilvl) pair, or a paragraph style's
// implied level, to a NumberingLevel.
type NumberingLookup interface {
	FindLevel(numID, ilvl string) (docmodel.NumberingLevel, bool)
	FindLevelByParagraphStyleID(styleID string) (docmodel.NumberingLevel, bool)
}

// RelationshipLookup resolves a relationship id to its target, scoped to
// whichever part the reader is currently processing.
type RelationshipLookup interface {
	FindTargetByRelationshipID(id string) (target string, external bool, ok bool)
}

// ContentTypeLookup resolves a package path to a MIME type.
type ContentTypeLookup interface {
	FindContentType(path string) string
}

// PackageOpener opens an embedded part by its zip entry name.
type PackageOpener interface {
	OpenPart(name string) (io.ReadCloser, error)
}

// FileOpener opens an externally linked resource by path.
type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// Options bundles everything read_body needs beyond the XML tree itself:
// the four lookups of spec.md §6 plus the package/file accessors images are
// resolved through.
type Options struct {
	Styles        StyleLookup
	Numbering     NumberingLookup
	Relationships RelationshipLookup
	ContentTypes  ContentTypeLookup
	Package       PackageOpener
	Files         FileOpener
}
