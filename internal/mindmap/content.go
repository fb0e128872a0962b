package mindmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"archive/zip"
)

// contentEntry is the structured-content filename of the modern format.
const contentEntry = "content.json"

var errNoContentEntry = errors.New("no content.json entry in archive")

// sheet is one canvas of a modern file. Only the first sheet is converted.
type sheet struct {
	Title     string `json:"title"`
	RootTopic *Topic `json:"rootTopic"`
}

// readContent parses the modern format from an opened archive: the first
// entry whose name ends in content.json yields the root topic, and every
// file under resources/ is loaded into the resource mapping.
func readContent(zr *zip.Reader) (*Topic, Resources, error) {
	var entry *zip.File
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, contentEntry) {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, nil, errNoContentEntry
	}

	assets, err := readResources(zr)
	if err != nil {
		return nil, nil, err
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", entry.Name, err)
	}
	defer rc.Close()

	var sheets []sheet
	if err := json.NewDecoder(rc).Decode(&sheets); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", entry.Name, err)
	}
	if len(sheets) == 0 || sheets[0].RootTopic == nil {
		return nil, nil, fmt.Errorf("parse %s: no root topic", entry.Name)
	}

	return sheets[0].RootTopic, assets, nil
}

// readResources extracts everything under resources/ into memory.
// Directory entries are skipped.
func readResources(zr *zip.Reader) (Resources, error) {
	assets := Resources{}
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, ResourcePrefix) {
			continue
		}
		if strings.HasSuffix(f.Name, "/") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open resource %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read resource %s: %w", f.Name, err)
		}

		assets.Add(f.Name, data)
	}
	return assets, nil
}
