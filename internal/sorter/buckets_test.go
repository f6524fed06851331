package sorter_test

import (
	"os"
	"path/filepath"
	"testing"

	"extsort/internal/sorter"
)

func TestBucketFor(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"report.txt", "txt"},
		{"PHOTO.JPG", "jpg"},
		{"mixed.TxT", "txt"},
		{"archive.tar.gz", "gz"},
		{"README", "_no_ext"},
		{".bashrc", "_no_ext"},
		{"trailing.", "_no_ext"},
		{"noise.MP3", "mp3"},
		{"straße.TXT", "txt"},
	}
	for _, tc := range cases {
		if got := sorter.BucketFor(tc.name); got != tc.want {
			t.Errorf("BucketFor(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUniqueTargetFirstNameFree(t *testing.T) {
	dir := t.TempDir()
	got := sorter.UniqueTarget(dir, "same.txt", nil)
	if got != filepath.Join(dir, "same.txt") {
		t.Fatalf("UniqueTarget = %q, want untouched name", got)
	}
}

func TestUniqueTargetNumbersCollisions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"same.txt", "same (1).txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	got := sorter.UniqueTarget(dir, "same.txt", nil)
	if got != filepath.Join(dir, "same (2).txt") {
		t.Fatalf("UniqueTarget = %q, want third variant", got)
	}
}

func TestUniqueTargetNoExtensionName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got := sorter.UniqueTarget(dir, "README", nil)
	if got != filepath.Join(dir, "README (1)") {
		t.Fatalf("UniqueTarget = %q, want numbered bare name", got)
	}
}

func TestUniqueTargetHonorsReservations(t *testing.T) {
	dir := t.TempDir()
	reserved := map[string]struct{}{
		filepath.Join(dir, "a.md"):     {},
		filepath.Join(dir, "a (1).md"): {},
	}

	got := sorter.UniqueTarget(dir, "a.md", reserved)
	if got != filepath.Join(dir, "a (2).md") {
		t.Fatalf("UniqueTarget = %q, want reservation-aware variant", got)
	}
}
