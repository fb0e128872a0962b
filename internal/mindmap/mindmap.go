package mindmap

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotMindMap reports that a file could be read in neither container
// format. It is the only error the readers surface to callers: individual
// format failures degrade to the next strategy, never to a hard stop.
var ErrNotMindMap = errors.New("not a recognized mind-map file")

// Load opens a mind-map file from disk. See Read.
func Load(path string) (*Topic, Resources, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	root, assets, err := Read(f, info.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, assets, nil
}

// Read parses a mind-map archive: the modern structured content is tried
// first, then the legacy XML container. The legacy path yields an empty
// resource mapping (embedded images are only addressable in the modern
// format). Returns ErrNotMindMap when both strategies fail.
func Read(r io.ReaderAt, size int64) (*Topic, Resources, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: not a zip archive", ErrNotMindMap)
	}

	if root, assets, err := readContent(zr); err == nil {
		return root, assets, nil
	}

	if root, err := readLegacy(zr); err == nil {
		return root, Resources{}, nil
	}

	return nil, nil, ErrNotMindMap
}
