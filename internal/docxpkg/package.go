// Package docxpkg opens a DOCX file as a ZIP/OPC container and gives
// index-by-name access to its parts, hardened against zip-slip archives.
package docxpkg

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"github.com/benjaminschreck/docx2html/internal/docerr"
)

// Package is an opened DOCX container. It is read-only after construction
// and safe for concurrent Part/OpenPart calls.
type Package struct {
	reader *zip.ReadCloser
	files  map[string]*zip.File
}

// Open opens path as a ZIP archive and validates it carries a
// word/document.xml part.
func Open(path string) (*Package, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, docerr.NewPackageError("open", path, err)
	}

	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			r.Close()
			return nil, docerr.NewPackageError("open", f.Name, errUnsafePath)
		}
		files[f.Name] = f
	}

	if _, ok := files["word/document.xml"]; !ok {
		r.Close()
		return nil, docerr.NewPackageError("open", path, errMissingDocument)
	}

	return &Package{reader: r, files: files}, nil
}

// Close releases the underlying archive handle.
func (p *Package) Close() error {
	return p.reader.Close()
}

// Part reads a part fully into memory. Parts in a DOCX package are XML
// documents or small binaries, never worth streaming.
func (p *Package) Part(name string) ([]byte, error) {
	rc, err := p.OpenPart(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// OpenPart opens a part for streaming, for image parts the serializer reads
// lazily through an Image.Open thunk. Callers must Close the result.
func (p *Package) OpenPart(name string) (io.ReadCloser, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, docerr.NewPartError(name, errPartNotFound)
	}
	return f.Open()
}

// HasPart reports whether name exists in the package, without reading it.
func (p *Package) HasPart(name string) bool {
	_, ok := p.files[name]
	return ok
}

// RelationshipsFor resolves the conventional _rels/<base>.rels path for
// partName and returns its bytes, or nil if the part has no relationships
// file (which is normal, not an error).
func (p *Package) RelationshipsFor(partName string) ([]byte, error) {
	dir, base := path.Split(partName)
	relPath := dir + "_rels/" + base + ".rels"
	if !p.HasPart(relPath) {
		return nil, nil
	}
	return p.Part(relPath)
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
