package docwriter

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/fumiama/imgsz"
)

// imageExtension maps sniffed formats to media-part file extensions.
// Formats outside this table are rejected.
var imageExtension = map[string]string{
	"png":  "png",
	"jpeg": "jpeg",
	"gif":  "gif",
	"bmp":  "bmp",
}

// AddPicture appends an inline picture scaled to the given width in inches,
// with height derived from the image's aspect ratio. Returns an error when
// the bytes cannot be sniffed or the format has no DOCX mapping; the
// document is unchanged in that case.
func (d *Document) AddPicture(data []byte, widthInches float64) error {
	sz, format, err := imgsz.DecodeSize(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image size: %w", err)
	}
	ext, ok := imageExtension[format]
	if !ok {
		return fmt.Errorf("unsupported image format %q", format)
	}
	if sz.Width <= 0 || sz.Height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", sz.Width, sz.Height)
	}

	if widthInches <= 0 {
		widthInches = 0.1
	}
	cx := int64(widthInches * emuPerInch)
	cy := cx * int64(sz.Height) / int64(sz.Width)

	n := len(d.media) + 1
	part := mediaPart{
		name:  fmt.Sprintf("image%d.%s", n, ext),
		relID: fmt.Sprintf("rId%d", n+2), // rId1/rId2 are styles and numbering
		data:  data,
	}
	d.media = append(d.media, part)

	d.body.AddChild(buildDrawingParagraph(part, n, cx, cy))
	return nil
}

// buildDrawingParagraph assembles the DrawingML boilerplate for one inline
// picture referencing a media relationship.
func buildDrawingParagraph(part mediaPart, id int, cx, cy int64) *etree.Element {
	p := etree.NewElement("w:p")
	drawing := p.CreateElement("w:r").CreateElement("w:drawing")

	inline := drawing.CreateElement("wp:inline")
	for _, attr := range []string{"distT", "distB", "distL", "distR"} {
		inline.CreateAttr(attr, "0")
	}

	extent := inline.CreateElement("wp:extent")
	extent.CreateAttr("cx", fmt.Sprintf("%d", cx))
	extent.CreateAttr("cy", fmt.Sprintf("%d", cy))

	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", fmt.Sprintf("%d", id))
	docPr.CreateAttr("name", fmt.Sprintf("Picture %d", id))

	graphic := inline.CreateElement("a:graphic")
	graphicData := graphic.CreateElement("a:graphicData")
	graphicData.CreateAttr("uri", nsPic)

	picEl := graphicData.CreateElement("pic:pic")

	nvPicPr := picEl.CreateElement("pic:nvPicPr")
	cNvPr := nvPicPr.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", fmt.Sprintf("%d", id))
	cNvPr.CreateAttr("name", part.name)
	nvPicPr.CreateElement("pic:cNvPicPr")

	blipFill := picEl.CreateElement("pic:blipFill")
	blipFill.CreateElement("a:blip").CreateAttr("r:embed", part.relID)
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := picEl.CreateElement("pic:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", cx))
	ext.CreateAttr("cy", fmt.Sprintf("%d", cy))
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")

	return p
}
