package docxpkg

import "errors"

var (
	errUnsafePath      = errors.New("zip entry has an unsafe path (absolute or contains path traversal)")
	errMissingDocument = errors.New("not a valid DOCX file: missing word/document.xml")
	errPartNotFound    = errors.New("part not found in package")
)
