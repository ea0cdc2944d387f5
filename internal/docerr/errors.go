// Package docerr defines the fatal error types collaborators in this module
// raise: package opening, part reading, relationship and style-table
// parsing. Body-reading problems are never errors of this kind — spec.md's
// reader only ever produces warning messages (internal/bodyreader); docerr
// covers everything outside that contract.
package docerr

import "fmt"

// PackageError reports a failure opening or validating the DOCX ZIP
// container itself (missing word/document.xml, an unsafe zip entry path,
// a corrupt archive).
type PackageError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *PackageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("package error during %s of %q: %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("package error during %s: %v", e.Operation, e.Cause)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError builds a PackageError.
func NewPackageError(operation, path string, cause error) error {
	return &PackageError{Operation: operation, Path: path, Cause: cause}
}

// PartError reports a failure parsing a known XML part (styles.xml,
// numbering.xml, a .rels file, [Content_Types].xml).
type PartError struct {
	Part  string
	Cause error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("failed to parse part %q: %v", e.Part, e.Cause)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError builds a PartError.
func NewPartError(part string, cause error) error {
	return &PartError{Part: part, Cause: cause}
}

// DocumentError reports a failure at the whole-document level: the body
// element could not be located, or a required accessor could not be built.
type DocumentError struct {
	Operation string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError builds a DocumentError.
func NewDocumentError(operation string, cause error) error {
	return &DocumentError{Operation: operation, Cause: cause}
}

// RenderError reports a failure in the HTML or Markdown writer, typically
// an unopenable linked image encountered while embedding data URIs.
type RenderError struct {
	Stage string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error during %s: %v", e.Stage, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError builds a RenderError.
func NewRenderError(stage string, cause error) error {
	return &RenderError{Stage: stage, Cause: cause}
}
