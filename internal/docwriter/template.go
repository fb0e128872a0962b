package docwriter

import (
	"fmt"

	"github.com/beevik/etree"
)

// Static package parts. Image extensions are always declared so media can be
// appended without touching content types again.
const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Default Extension="png" ContentType="image/png"/>
<Default Extension="jpeg" ContentType="image/jpeg"/>
<Default Extension="gif" ContentType="image/gif"/>
<Default Extension="bmp" ContentType="image/bmp"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

const appPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
<Application>mindconv</Application>
</Properties>`

// One single-level bullet list; every bulleted paragraph references numId 1.
const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:multiLevelType w:val="singleLevel"/>
<w:lvl w:ilvl="0">
<w:start w:val="1"/>
<w:numFmt w:val="bullet"/>
<w:lvlText w:val="&#8226;"/>
<w:lvlJc w:val="left"/>
<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr>
</w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

// OOXML namespace URIs used across generated parts.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// headingSizes holds run sizes (half-points) for Heading1..Heading9.
var headingSizes = [maxHeadingLevel]int{32, 28, 26, 24, 22, 22, 22, 22, 22}

// buildStyles generates word/styles.xml: Normal, Heading1..Heading9 (each
// carrying the outline level Word's navigation pane and TOC field key off),
// and the ListBullet paragraph style.
func buildStyles() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsW)

	normal := styles.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:default", "1")
	normal.CreateAttr("w:styleId", "Normal")
	normal.CreateElement("w:name").CreateAttr("w:val", "Normal")

	for i := 0; i < maxHeadingLevel; i++ {
		level := i + 1
		style := styles.CreateElement("w:style")
		style.CreateAttr("w:type", "paragraph")
		style.CreateAttr("w:styleId", fmt.Sprintf("Heading%d", level))
		style.CreateElement("w:name").CreateAttr("w:val", fmt.Sprintf("heading %d", level))
		style.CreateElement("w:basedOn").CreateAttr("w:val", "Normal")
		style.CreateElement("w:qFormat")

		pPr := style.CreateElement("w:pPr")
		pPr.CreateElement("w:keepNext")
		pPr.CreateElement("w:outlineLvl").CreateAttr("w:val", fmt.Sprintf("%d", i))
		spacing := pPr.CreateElement("w:spacing")
		spacing.CreateAttr("w:before", "240")
		spacing.CreateAttr("w:after", "120")

		rPr := style.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		rPr.CreateElement("w:sz").CreateAttr("w:val", fmt.Sprintf("%d", headingSizes[i]))
	}

	bullet := styles.CreateElement("w:style")
	bullet.CreateAttr("w:type", "paragraph")
	bullet.CreateAttr("w:styleId", "ListBullet")
	bullet.CreateElement("w:name").CreateAttr("w:val", "List Bullet")
	bullet.CreateElement("w:basedOn").CreateAttr("w:val", "Normal")
	bullet.CreateElement("w:qFormat")
	numPr := bullet.CreateElement("w:pPr").CreateElement("w:numPr")
	numPr.CreateElement("w:ilvl").CreateAttr("w:val", "0")
	numPr.CreateElement("w:numId").CreateAttr("w:val", "1")

	return doc
}

// buildCoreProps generates docProps/core.xml carrying the document title.
func buildCoreProps(title string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	props := doc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	props.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	props.CreateElement("dc:title").SetText(title)

	return doc
}
