package lookup

import (
	"io"
	"os"
	"path/filepath"
)

// Files abstracts reading externally linked resources (images whose
// relationship has TargetMode="External"), so the body reader never touches
// the filesystem directly.
type Files interface {
	Open(path string) (io.ReadCloser, error)
}

// DirFiles resolves paths relative to Root, the directory containing the
// input .docx file.
type DirFiles struct {
	Root string
}

// Open opens path relative to f.Root. Absolute paths and URLs are passed to
// os.Open as-is; os.Open will fail cleanly on anything it cannot resolve as
// a local file.
func (f DirFiles) Open(path string) (io.ReadCloser, error) {
	if filepath.IsAbs(path) {
		return os.Open(path)
	}
	return os.Open(filepath.Join(f.Root, path))
}
