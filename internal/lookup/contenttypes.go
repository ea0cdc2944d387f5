package lookup

import (
	"strings"

	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// ContentTypes resolves a package part path to a MIME type using
// [Content_Types].xml's two-tier rule: an Override for the exact part name
// wins, otherwise a Default keyed by file extension applies.
type ContentTypes struct {
	defaults  map[string]string // extension (no dot, lowercase) -> mime
	overrides map[string]string // part name (leading "/") -> mime
}

// ParseContentTypes builds a ContentTypes table from [Content_Types].xml's
// root Types element.
func ParseContentTypes(root *xmlnode.Element) *ContentTypes {
	c := &ContentTypes{defaults: map[string]string{}, overrides: map[string]string{}}
	if root == nil {
		return c
	}
	for _, el := range root.FindChildren("Default") {
		ext, ok := el.Attr("Extension")
		if !ok {
			continue
		}
		if mime, ok := el.Attr("ContentType"); ok {
			c.defaults[strings.ToLower(ext)] = mime
		}
	}
	for _, el := range root.FindChildren("Override") {
		name, ok := el.Attr("PartName")
		if !ok {
			continue
		}
		if mime, ok := el.Attr("ContentType"); ok {
			c.overrides[name] = mime
		}
	}
	return c
}

// FindContentType resolves path (e.g. "word/media/image1.png" or
// "/word/media/image1.png") to a MIME type. Unresolvable paths yield
// "application/octet-stream".
func (c *ContentTypes) FindContentType(path string) string {
	partName := path
	if !strings.HasPrefix(partName, "/") {
		partName = "/" + partName
	}
	if mime, ok := c.overrides[partName]; ok {
		return mime
	}
	ext := path
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		ext = path[idx+1:]
	}
	if mime, ok := c.defaults[strings.ToLower(ext)]; ok {
		return mime
	}
	return "application/octet-stream"
}
