// Package project walks a mind-map topic tree and emits a linear document:
// one heading or bulleted paragraph per topic, optional inline images and
// note paragraphs, in depth-first order.
package project

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/mindconv/internal/mindmap"
	"github.com/fumiama/imgsz"
)

const (
	// maxHeadingLevel caps heading depth; deeper topics keep their nesting
	// order but share level-9 styling.
	maxHeadingLevel = 9

	// bulletIndentStep is the per-level left indent of leaf bullets, inches.
	bulletIndentStep = 0.25

	// minImageWidth is the floor for embedded picture width, inches.
	minImageWidth = 0.1
)

// supportedImageFormats are the raster kinds the document sink can embed.
// Everything else (svg, tiff, webp, ...) is silently skipped.
var supportedImageFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"bmp":  true,
	"gif":  true,
}

// Sink receives document blocks in emission order.
//
// AddBullet implementations that cannot apply the indent must still add the
// paragraph unindented and report the error; the projector treats indent
// failures as cosmetic. AddPicture failures leave the document unchanged.
type Sink interface {
	AddHeading(text string, level int)
	AddParagraph(text string)
	AddBullet(text string, indentInches float64) error
	AddPicture(data []byte, widthInches float64) error
}

// Projector emits a topic tree into a Sink. Zero value is not usable; set
// Sink, and Assets when images should resolve.
type Projector struct {
	Sink   Sink
	Assets mindmap.Resources

	// ImageWidth is the embedded picture width in inches. Values below the
	// 0.1 floor (including zero) are raised to it.
	ImageWidth float64

	// Notes controls whether topic notes are emitted as body paragraphs.
	Notes bool

	// Log receives records for skipped images and swallowed per-node
	// failures. Nil discards them.
	Log *slog.Logger
}

// Project walks the tree rooted at root, starting at heading level 1.
// A topic failing to embed its image or notes never aborts the walk.
func (p *Projector) Project(root *mindmap.Topic) {
	if p.Log == nil {
		p.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.ImageWidth < minImageWidth {
		p.ImageWidth = minImageWidth
	}
	p.walk(root, 1)
}

func (p *Projector) walk(topic *mindmap.Topic, level int) {
	title := sanitizeTitle(topic.Title)
	children := topic.Children()

	// The root and every interior node become headings; only leaves below
	// the root become bullets. This keeps the Word navigation pane equal to
	// the branch structure of the map.
	if level == 1 || len(children) > 0 {
		p.Sink.AddHeading(title, min(level, maxHeadingLevel))
	} else {
		indent := bulletIndentStep * float64(level-1)
		if err := p.Sink.AddBullet(title, indent); err != nil {
			p.Log.Debug("bullet indent not applied", "title", title, "error", err)
		}
	}

	p.emitImage(topic)
	if p.Notes {
		p.emitNotes(topic)
	}

	for _, child := range children {
		p.walk(child, level+1)
	}
}

// emitImage resolves, sniffs, and embeds a topic's image. Every failure mode
// (missing resource, unsupported format, corrupt bytes, sink rejection) is
// local to this topic.
func (p *Projector) emitImage(topic *mindmap.Topic) {
	src := topic.ImageSrc()
	if src == "" {
		return
	}

	data, ok := p.Assets.Lookup(src)
	if !ok {
		p.Log.Debug("image resource not found", "src", src)
		return
	}

	_, format, err := imgsz.DecodeSize(bytes.NewReader(data))
	if err != nil {
		p.Log.Debug("image sniff failed", "src", src, "error", err)
		return
	}
	if !supportedImageFormats[format] {
		p.Log.Debug("image format not embeddable", "src", src, "format", format)
		return
	}

	if err := p.Sink.AddPicture(data, p.ImageWidth); err != nil {
		p.Log.Debug("image embedding failed", "src", src, "error", err)
	}
}

// emitNotes appends a topic's note body as plain paragraphs.
func (p *Projector) emitNotes(topic *mindmap.Topic) {
	note := topic.NoteText()
	if note == "" {
		return
	}
	for _, block := range noteBlocks(note) {
		p.Sink.AddParagraph(block)
	}
}

// sanitizeTitle strips control characters below U+0020 except TAB, LF and
// CR, trims surrounding whitespace, and falls back to "." when nothing
// remains: the sink must never receive an empty heading or bullet string.
func sanitizeTitle(raw string) string {
	var b strings.Builder
	for _, ch := range raw {
		if ch >= ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			b.WriteRune(ch)
		}
	}
	title := strings.TrimSpace(b.String())
	if title == "" {
		return "."
	}
	return title
}
