package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// normalizeSourcePath cleans up a source argument as typed by a user:
// surrounding quotes (common when dragging files into a terminal),
// backslash separators, and a leading ~.
func normalizeSourcePath(raw string) string {
	s := strings.Trim(raw, `"'`)
	s = strings.ReplaceAll(s, `\`, "/")
	return expandHome(s)
}

// resolveOutputPath derives the output location: explicit flag value, or
// the source path with its extension replaced by .docx. A bare filename
// resolves against the working directory.
func resolveOutputPath(source, explicit string) (string, error) {
	out := explicit
	if out == "" {
		ext := filepath.Ext(source)
		out = strings.TrimSuffix(source, ext) + ".docx"
	} else {
		out = expandHome(out)
	}

	if !filepath.IsAbs(out) && filepath.Dir(out) == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		out = filepath.Join(cwd, out)
	}
	return out, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
