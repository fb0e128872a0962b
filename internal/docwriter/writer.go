// Package docwriter builds DOCX files from an append-only block sequence.
//
// A DOCX is a ZIP archive of XML parts. The Document type assembles
// word/document.xml as an etree DOM while collecting media parts, then
// serializes the whole package on save. Blocks are emitted in call order
// and never reordered.
package docwriter

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/beevik/etree"
)

const (
	// maxHeadingLevel is Word's heading-style ceiling.
	maxHeadingLevel = 9

	emuPerInch   = 914400
	twipsPerInch = 1440
)

// mediaPart is one embedded image awaiting serialization.
type mediaPart struct {
	name  string // ZIP entry name under word/media/
	relID string
	data  []byte
}

// Document is an in-progress DOCX. Create with New, populate with the Add
// methods, then Save or WriteTo exactly once per destination.
type Document struct {
	doc   *etree.Document
	body  *etree.Element
	title string
	media []mediaPart
}

// New creates an empty document with the given core-properties title.
func New(title string) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:wp", nsWP)
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:pic", nsPic)

	return &Document{
		doc:   doc,
		body:  root.CreateElement("w:body"),
		title: title,
	}
}

// AddHeading appends a heading paragraph. Levels outside 1..9 are clamped.
func (d *Document) AddHeading(text string, level int) {
	if level < 1 {
		level = 1
	}
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}

	p := buildParagraph(text)
	setParagraphStyle(p, fmt.Sprintf("Heading%d", level))
	d.body.AddChild(p)
}

// AddParagraph appends a plain body paragraph.
func (d *Document) AddParagraph(text string) {
	d.body.AddChild(buildParagraph(text))
}

// AddBullet appends a bulleted paragraph with a left indent in inches.
// The error return exists for sinks that can reject an indent; this writer
// always applies it (negative indents collapse to zero) and returns nil.
func (d *Document) AddBullet(text string, indentInches float64) error {
	p := buildParagraph(text)
	setParagraphStyle(p, "ListBullet")

	pPr := p.ChildElements()[0] // created by setParagraphStyle
	numPr := pPr.CreateElement("w:numPr")
	numPr.CreateElement("w:ilvl").CreateAttr("w:val", "0")
	numPr.CreateElement("w:numId").CreateAttr("w:val", "1")

	if indentInches > 0 {
		ind := pPr.CreateElement("w:ind")
		ind.CreateAttr("w:left", fmt.Sprintf("%d", int(indentInches*twipsPerInch)))
	}

	d.body.AddChild(p)
	return nil
}

// AddTOCField appends a table-of-contents field instruction covering heading
// levels 1..maxLevel. The field is a placeholder: the consuming word
// processor computes the outline and page numbers when the user refreshes
// fields.
func (d *Document) AddTOCField(maxLevel int) {
	if maxLevel < 1 {
		maxLevel = 1
	}
	if maxLevel > maxHeadingLevel {
		maxLevel = maxHeadingLevel
	}

	p := etree.NewElement("w:p")
	fld := p.CreateElement("w:fldSimple")
	fld.CreateAttr("w:instr", fmt.Sprintf(`TOC \o "1-%d" \h \z \u`, maxLevel))
	d.body.AddChild(p)
}

// BlockCount returns the number of body blocks emitted so far.
func (d *Document) BlockCount() int {
	return len(d.body.ChildElements())
}

// WriteTo serializes the full DOCX package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name string
		data func() ([]byte, error)
	}{
		{"[Content_Types].xml", staticPart(contentTypesXML)},
		{"_rels/.rels", staticPart(packageRelsXML)},
		{"docProps/core.xml", docPart(buildCoreProps(d.title))},
		{"docProps/app.xml", staticPart(appPropsXML)},
		{"word/document.xml", docPart(d.finalizedDocument())},
		{"word/styles.xml", docPart(buildStyles())},
		{"word/numbering.xml", staticPart(numberingXML)},
		{"word/_rels/document.xml.rels", docPart(d.buildDocumentRels())},
	}
	for _, m := range d.media {
		data := m.data
		parts = append(parts, struct {
			name string
			data func() ([]byte, error)
		}{"word/media/" + m.name, func() ([]byte, error) { return data, nil }})
	}

	for _, part := range parts {
		data, err := part.data()
		if err != nil {
			return cw.n, fmt.Errorf("serialize %s: %w", part.name, err)
		}
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("create zip entry %s: %w", part.name, err)
		}
		if _, err := f.Write(data); err != nil {
			return cw.n, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close zip writer: %w", err)
	}
	return cw.n, nil
}

// Save writes the DOCX to path. Parent directories are created as needed,
// and the write is atomic: temp file in the target directory, then rename.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".docx-save-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := d.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// finalizedDocument returns a copy of the document DOM with section
// properties appended. The working DOM stays untouched so WriteTo can be
// called more than once.
func (d *Document) finalizedDocument() *etree.Document {
	doc := d.doc.Copy()

	body := findBody(doc)
	if body == nil {
		return doc
	}

	sectPr := body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "12240")
	pgSz.CreateAttr("w:h", "15840")
	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", "1440")
	pgMar.CreateAttr("w:right", "1440")
	pgMar.CreateAttr("w:bottom", "1440")
	pgMar.CreateAttr("w:left", "1440")
	pgMar.CreateAttr("w:header", "720")
	pgMar.CreateAttr("w:footer", "720")
	pgMar.CreateAttr("w:gutter", "0")

	return doc
}

// buildDocumentRels generates word/_rels/document.xml.rels: styles,
// numbering, and one image relationship per media part.
func (d *Document) buildDocumentRels() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	add := func(id, relType, target string) {
		rel := rels.CreateElement("Relationship")
		rel.CreateAttr("Id", id)
		rel.CreateAttr("Type", relType)
		rel.CreateAttr("Target", target)
	}
	add("rId1", relTypeStyles, "styles.xml")
	add("rId2", relTypeNumbering, "numbering.xml")
	for _, m := range d.media {
		add(m.relID, relTypeImage, "media/"+m.name)
	}

	return doc
}

// findBody locates the w:body element, a direct child of the root.
func findBody(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	for _, child := range root.ChildElements() {
		if child.Tag == "body" {
			return child
		}
	}
	return nil
}

// buildParagraph creates a w:p with a single run holding the given text.
func buildParagraph(text string) *etree.Element {
	p := etree.NewElement("w:p")
	r := p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	t.SetText(text)

	if edgeWhitespace(text) {
		t.CreateAttr("xml:space", "preserve")
	}

	return p
}

// edgeWhitespace reports whether text starts or ends with whitespace, which
// XML processors would otherwise strip from the run.
func edgeWhitespace(text string) bool {
	if text == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// setParagraphStyle inserts a w:pPr/w:pStyle as the paragraph's first child.
func setParagraphStyle(p *etree.Element, styleName string) {
	pPr := etree.NewElement("w:pPr")
	if len(p.ChildElements()) == 0 {
		p.AddChild(pPr)
	} else {
		p.InsertChildAt(p.ChildElements()[0].Index(), pPr)
	}
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", styleName)
}

func staticPart(content string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(content), nil }
}

func docPart(doc *etree.Document) func() ([]byte, error) {
	return doc.WriteToBytes
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
