// Package convert ties the readers, projector and document writer together.
package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/mindconv/internal/docwriter"
	"github.com/dgallion1/mindconv/internal/mindmap"
	"github.com/dgallion1/mindconv/internal/project"
)

// tocDepth is the deepest heading level the table-of-contents field covers.
const tocDepth = 3

// fallbackTitle is used when the root topic has no usable title.
const fallbackTitle = "Mind Map"

// Options controls a single conversion.
type Options struct {
	ImageWidth float64 // embedded picture width, inches
	TOC        bool    // insert a table-of-contents field
	Notes      bool    // emit topic notes as body paragraphs
	Log        *slog.Logger
}

// DefaultOptions mirrors the CLI defaults.
func DefaultOptions() Options {
	return Options{
		ImageWidth: 6.0,
		TOC:        true,
		Notes:      true,
	}
}

// File converts the mind-map at sourcePath into a DOCX at outputPath.
func File(sourcePath, outputPath string, opts Options) error {
	root, assets, err := mindmap.Load(sourcePath)
	if err != nil {
		return err
	}
	return Tree(root, assets, opts).Save(outputPath)
}

// Bytes converts an in-memory mind-map archive and returns the DOCX bytes.
func Bytes(data []byte, opts Options) ([]byte, error) {
	root, assets, err := mindmap.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := Tree(root, assets, opts).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Tree projects a parsed topic tree into a new document.
func Tree(root *mindmap.Topic, assets mindmap.Resources, opts Options) *docwriter.Document {
	doc := docwriter.New(documentTitle(root))
	if opts.TOC {
		doc.AddTOCField(tocDepth)
	}

	p := &project.Projector{
		Sink:       doc,
		Assets:     assets,
		ImageWidth: opts.ImageWidth,
		Notes:      opts.Notes,
		Log:        opts.Log,
	}
	p.Project(root)

	return doc
}

func documentTitle(root *mindmap.Topic) string {
	if title := strings.TrimSpace(root.Title); title != "" {
		return title
	}
	return fallbackTitle
}
