package mindmap

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildZip assembles an in-memory archive for fixtures.
func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const modernContent = `[{"title":"Sheet 1","rootTopic":{
	"title":"Root",
	"children":{"attached":[
		{"title":"First","image":{"src":"xap:resources/pic.png"}},
		{"title":"Second","children":{"attached":[{"title":"Nested"}]}}
	]}
}}]`

const legacyContentXML = `<?xml version="1.0" encoding="UTF-8"?>
<xmap-content xmlns="urn:xmind:xmap:xmlns:content:2.0">
<sheet id="s1">
<topic id="t1">
<title>Legacy Root</title>
<children>
<topics type="attached">
<topic id="t2"><title>A</title>
<notes><plain>a note</plain></notes>
</topic>
</topics>
<topics type="detached">
<topic id="t3"><title>Floating</title></topic>
</topics>
</children>
</topic>
</sheet>
</xmap-content>`

func readBytes(t *testing.T, data []byte) (*Topic, Resources, error) {
	t.Helper()
	return Read(bytes.NewReader(data), int64(len(data)))
}

func TestRead_ModernContent(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"content.json":       []byte(modernContent),
		"resources/pic.png":  {1, 2, 3},
		"resources/sub/":     nil, // directory entry, skipped
		"metadata.json":      []byte(`{}`),
		"Thumbnails/th.png":  {9},
		"resources/more.gif": {4, 5},
	})

	root, assets, err := readBytes(t, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "Root" {
		t.Errorf("expected root title %q, got %q", "Root", root.Title)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Title != "First" || children[1].Title != "Second" {
		t.Errorf("unexpected child order: %q, %q", children[0].Title, children[1].Title)
	}
	if len(children[1].Children()) != 1 {
		t.Errorf("expected nested child under Second")
	}

	// Only files under resources/ are mapped, each under two keys.
	if len(assets) != 4 {
		t.Errorf("expected 4 resource keys, got %d", len(assets))
	}
}

func TestResources_RawAndAliasKeys(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"content.json":      []byte(modernContent),
		"resources/pic.png": {0xAA, 0xBB},
	})

	_, assets, err := readBytes(t, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, ok := assets.Lookup("resources/pic.png")
	if !ok {
		t.Fatal("expected lookup by raw path to succeed")
	}
	aliased, ok := assets.Lookup("xap:resources/pic.png")
	if !ok {
		t.Fatal("expected lookup by aliased path to succeed")
	}
	if !bytes.Equal(raw, aliased) {
		t.Error("raw and aliased lookups returned different bytes")
	}
	if !bytes.Equal(raw, []byte{0xAA, 0xBB}) {
		t.Errorf("unexpected resource bytes %v", raw)
	}
}

func TestRead_ContentEntryInSubdirectory(t *testing.T) {
	// Any entry whose name ends in content.json qualifies.
	data := buildZip(t, map[string][]byte{
		"some/dir/content.json": []byte(modernContent),
	})
	root, _, err := readBytes(t, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "Root" {
		t.Errorf("expected root title %q, got %q", "Root", root.Title)
	}
}

func TestRead_LegacyContent(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"content.xml": []byte(legacyContentXML),
	})

	root, assets, err := readBytes(t, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "Legacy Root" {
		t.Errorf("expected root title %q, got %q", "Legacy Root", root.Title)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Title != "A" || children[1].Title != "Floating" {
		t.Errorf("unexpected child order: %q, %q", children[0].Title, children[1].Title)
	}
	if children[0].NoteText() != "a note" {
		t.Errorf("expected legacy note to survive, got %q", children[0].NoteText())
	}

	// Legacy path cannot extract embedded images.
	if len(assets) != 0 {
		t.Errorf("expected empty resource mapping, got %d entries", len(assets))
	}
}

func TestRead_CorruptModernFallsBackToLegacy(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"content.json": []byte(`{not json`),
		"content.xml":  []byte(legacyContentXML),
	})

	root, _, err := readBytes(t, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "Legacy Root" {
		t.Errorf("expected fallback to legacy root, got %q", root.Title)
	}
}

func TestRead_NotAZip(t *testing.T) {
	_, _, err := readBytes(t, []byte("plain text, not an archive"))
	if !errors.Is(err, ErrNotMindMap) {
		t.Fatalf("expected ErrNotMindMap, got %v", err)
	}
}

func TestRead_NoRecognizedEntry(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"README.txt": []byte("nothing useful"),
	})
	_, _, err := readBytes(t, data)
	if !errors.Is(err, ErrNotMindMap) {
		t.Fatalf("expected ErrNotMindMap, got %v", err)
	}
}

func TestLoad_FromDisk(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"content.json": []byte(modernContent),
	})
	path := filepath.Join(t.TempDir(), "map.xmind")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	root, _, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Title != "Root" {
		t.Errorf("expected root title %q, got %q", "Root", root.Title)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.xmind"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
