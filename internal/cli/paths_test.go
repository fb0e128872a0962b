package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeSourcePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cases := []struct {
		in   string
		want string
	}{
		{`"map.xmind"`, "map.xmind"},
		{`'map.xmind'`, "map.xmind"},
		{`C:\maps\plan.xmind`, "C:/maps/plan.xmind"},
		{"~/maps/plan.xmind", filepath.Join(home, "maps/plan.xmind")},
		{"plain.xmind", "plain.xmind"},
	}
	for _, tc := range cases {
		if got := normalizeSourcePath(tc.in); got != tc.want {
			t.Errorf("normalizeSourcePath(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestResolveOutputPath_Derived(t *testing.T) {
	got, err := resolveOutputPath("/maps/plan.xmind", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/maps/plan.docx" {
		t.Errorf("expected /maps/plan.docx, got %q", got)
	}
}

func TestResolveOutputPath_Explicit(t *testing.T) {
	got, err := resolveOutputPath("/maps/plan.xmind", "/out/result.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/out/result.docx" {
		t.Errorf("expected /out/result.docx, got %q", got)
	}
}

func TestResolveOutputPath_BareFilename(t *testing.T) {
	got, err := resolveOutputPath("plan.xmind", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(cwd, "plan.docx") {
		t.Errorf("expected bare filename to resolve against cwd, got %q", got)
	}
}

func TestResolveOutputPath_SourceWithoutExtension(t *testing.T) {
	got, err := resolveOutputPath("/maps/plan", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/maps/plan.docx" {
		t.Errorf("expected /maps/plan.docx, got %q", got)
	}
}

func TestResolveOutputPath_RelativeDirKept(t *testing.T) {
	got, err := resolveOutputPath("plan.xmind", "out/result.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "out/result.docx" {
		t.Errorf("expected relative path with directory kept as-is, got %q", got)
	}
	if strings.Contains(got, "~") {
		t.Errorf("unexpanded home marker in %q", got)
	}
}
