package bodyreader

import (
	"path"
	"strconv"
	"strings"

	"github.com/benjaminschreck/docx2html/internal/docmodel"
	"github.com/benjaminschreck/docx2html/internal/xmlnode"
)

// webSafeImageMIME is the set of MIME types assumed to render in a browser;
// anything else still produces an Image, just with a warning attached.
var webSafeImageMIME = map[string]bool{
	"image/png":     true,
	"image/gif":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
	"image/tiff":    true,
}

// imageResult adapts a (*docmodel.Image, *docmodel.Message) pair — the
// shape every image entry point in this file resolves to — into a
// ReadResult. A nil image with a message is a dangling reference; a nil
// image with no message yields an empty result.
func imageResult(img *docmodel.Image, msg *docmodel.Message) ReadResult {
	if img == nil {
		if msg != nil {
			return EmptyWithMessage(*msg)
		}
		return Empty()
	}
	if msg != nil {
		return ElementsWithMessages([]docmodel.Node{img}, []docmodel.Message{*msg})
	}
	return Success(img)
}

func warningPtr(text string) *docmodel.Message {
	m := docmodel.Warning(text)
	return &m
}

// readDrawingImage reads a wp:inline or wp:anchor drawing: alt text and
// size from wp:docPr/wp:extent, then descends
// a:graphic/a:graphicData/pic:pic/pic:blipFill/a:blip to resolve the
// underlying image part.
func (r *Reader) readDrawingImage(el *xmlnode.Element) ReadResult {
	alt := ""
	if docPr := el.FindChild("wp:docPr"); docPr != nil {
		if descr, ok := docPr.Attr("descr"); ok && strings.TrimSpace(descr) != "" {
			alt = descr
		} else {
			alt = docPr.AttrOr("title", "")
		}
	}

	var size *docmodel.Size
	if extent := el.FindChild("wp:extent"); extent != nil {
		cx, _ := strconv.Atoi(extent.AttrOr("cx", "0"))
		cy, _ := strconv.Atoi(extent.AttrOr("cy", "0"))
		size = &docmodel.Size{
			Width:  strconv.Itoa(emuToPixels(cx)),
			Height: strconv.Itoa(emuToPixels(cy)),
		}
	}

	picEl := el.FindChildOrNil("a:graphic").FindChildOrNil("a:graphicData").FindChildOrNil("pic:pic")
	blip := picEl.FindChildOrNil("pic:blipFill").FindChild("a:blip")

	hasBorder := false
	if spPr := picEl.FindChild("pic:spPr"); spPr != nil {
		for _, c := range spPr.Children() {
			if c.Name() == "a:ln" {
				hasBorder = true
				break
			}
		}
	}

	img, msg := r.buildImageFromBlip(blip, alt, size, hasBorder)
	return imageResult(img, msg)
}

// readVMLShape reads a v:shape with a single v:imagedata child, parsing its
// inline CSS-like style attribute for width/height.
func (r *Reader) readVMLShape(el *xmlnode.Element) ReadResult {
	size := parseVMLStyleSize(el.AttrOr("style", ""))

	imagedata := el.FindChild("v:imagedata")
	if imagedata == nil {
		return Empty()
	}

	img, msg := r.readImagedata(imagedata, size)
	return imageResult(img, msg)
}

// readImagedata reads a v:imagedata element. Per the python-mammoth
// reference implementation this reader's behavior is grounded on, the VML
// imagedata path always reports "image/png" rather than resolving a MIME
// type from content-types: VML drawings are a legacy fallback path Word
// itself only ever populates with PNG data, so no lookup is attempted here
// either.
func (r *Reader) readImagedata(el *xmlnode.Element, size *docmodel.Size) (*docmodel.Image, *docmodel.Message) {
	relID, ok := el.Attr("r:id")
	if !ok {
		return nil, warningPtr("A v:imagedata element without a relationship ID was ignored")
	}

	target, _, ok := r.opts.Relationships.FindTargetByRelationshipID(relID)
	if !ok {
		return nil, warningPtr("Could not find image file for a:blip element")
	}

	partName := normalizeMediaPath(target)
	pkg := r.opts.Package
	open := func() (docmodel.ReadCloser, error) { return pkg.OpenPart(partName) }

	return &docmodel.Image{
		ContentType: "image/png",
		Open:        open,
		Size:        size,
		Attributes:  map[string]string{},
	}, nil
}

// buildImageFromBlip resolves an a:blip's embedded or linked image and
// assembles the final Image node, attaching the fr-bordered class and any
// MIME-risk warning.
func (r *Reader) buildImageFromBlip(blip *xmlnode.Element, alt string, size *docmodel.Size, hasBorder bool) (*docmodel.Image, *docmodel.Message) {
	open, contentType, msg := r.resolveBlipSource(blip)
	if msg != nil {
		return nil, msg
	}

	attrs := map[string]string{}
	if hasBorder {
		attrs["class"] = "fr-bordered"
	}

	img := &docmodel.Image{
		AltText:     alt,
		ContentType: contentType,
		Size:        size,
		Open:        open,
		Attributes:  attrs,
	}

	if !webSafeImageMIME[contentType] {
		return img, warningPtr("Image of type " + contentType + " is unlikely to display in web browsers")
	}
	return img, nil
}

// resolveBlipSource resolves an a:blip's r:embed (in-package) or r:link
// (external) reference to an opener thunk and a MIME type.
func (r *Reader) resolveBlipSource(blip *xmlnode.Element) (func() (docmodel.ReadCloser, error), string, *docmodel.Message) {
	if blip == nil {
		return nil, "", warningPtr("Could not find image file for a:blip element")
	}

	if embedID, ok := blip.Attr("r:embed"); ok {
		target, _, ok := r.opts.Relationships.FindTargetByRelationshipID(embedID)
		if !ok {
			return nil, "", warningPtr("Could not find image file for a:blip element")
		}
		partName := normalizeMediaPath(target)
		contentType := r.opts.ContentTypes.FindContentType(partName)
		pkg := r.opts.Package
		open := func() (docmodel.ReadCloser, error) { return pkg.OpenPart(partName) }
		return open, contentType, nil
	}

	if linkID, ok := blip.Attr("r:link"); ok {
		target, _, ok := r.opts.Relationships.FindTargetByRelationshipID(linkID)
		if !ok {
			return nil, "", warningPtr("Could not find image file for a:blip element")
		}
		contentType := r.opts.ContentTypes.FindContentType(target)
		files := r.opts.Files
		open := func() (docmodel.ReadCloser, error) { return files.Open(target) }
		return open, contentType, nil
	}

	return nil, "", warningPtr("Could not find image file for a:blip element")
}

// normalizeMediaPath resolves a relationship target (relative to word/)
// into a package-rooted zip entry name, collapsing any ".." segments.
func normalizeMediaPath(target string) string {
	return path.Join("word", target)
}

// parseVMLStyleSize extracts width/height from a v:shape's inline
// CSS-like style attribute (e.g. "width:75pt;height:75pt;visibility:visible").
func parseVMLStyleSize(style string) *docmodel.Size {
	var width, height string
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		switch key {
		case "width":
			width = value
		case "height":
			height = value
		}
	}
	if width == "" && height == "" {
		return nil
	}
	return &docmodel.Size{Width: width, Height: height}
}
