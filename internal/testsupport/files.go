// Package testsupport holds shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTree materializes a directory tree under root. Keys are relative
// slash-separated paths; values become file contents. A value keyed with a
// trailing slash creates an empty directory instead.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", rel, err)
			}
			continue
		}
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
}

// ListTree returns every regular file under root as a sorted slice of
// slash-separated relative paths.
func ListTree(t testing.TB, root string) []string {
	t.Helper()

	var out []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}
