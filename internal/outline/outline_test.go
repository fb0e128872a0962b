package outline

import (
	"path/filepath"
	"testing"

	"github.com/dgallion1/mindconv/internal/docwriter"
)

func TestRead_Roundtrip(t *testing.T) {
	doc := docwriter.New("outline test")
	doc.AddHeading("Root", 1)
	if err := doc.AddBullet("leaf", 0.25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.AddHeading("Child", 2)
	doc.AddParagraph("plain body text")

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := doc.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{
		{Title: "Root", Level: 1},
		{Title: "Child", Level: 2},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d headings, got %v", len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry[%d]: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.docx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
