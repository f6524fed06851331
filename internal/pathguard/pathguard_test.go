package pathguard_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"extsort/internal/pathguard"
)

func TestIsNestedDirectChild(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "sub")
	if err := os.Mkdir(child, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if !pathguard.IsNested(child, parent) {
		t.Fatal("expected child to be nested in parent")
	}
	if pathguard.IsNested(parent, child) {
		t.Fatal("parent must not be nested in its child")
	}
}

func TestIsNestedSamePath(t *testing.T) {
	dir := t.TempDir()
	if !pathguard.IsNested(dir, dir) {
		t.Fatal("a path nests in itself")
	}
}

func TestIsNestedSiblings(t *testing.T) {
	base := t.TempDir()
	a := filepath.Join(base, "a")
	b := filepath.Join(base, "ab")
	for _, dir := range []string{a, b} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	// "ab" shares a name prefix with "a" but is not inside it.
	if pathguard.IsNested(b, a) {
		t.Fatal("sibling with shared name prefix must not count as nested")
	}
}

func TestIsNestedNonexistentCandidate(t *testing.T) {
	parent := t.TempDir()
	missing := filepath.Join(parent, "not", "created", "yet")

	if !pathguard.IsNested(missing, parent) {
		t.Fatal("a path that would be created under parent is nested")
	}
	if pathguard.IsNested(missing, filepath.Join(parent, "other")) {
		t.Fatal("unrelated missing path must not be nested")
	}
}

func TestIsNestedThroughSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	base := t.TempDir()
	real := filepath.Join(base, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	inside := filepath.Join(link, "deep")
	if err := os.Mkdir(inside, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if !pathguard.IsNested(inside, real) {
		t.Fatal("path reached through a symlink resolves into the real tree")
	}
	if !pathguard.IsNested(link, real) {
		t.Fatal("symlink to the reference itself counts as nested")
	}
}

func TestCanonicalResolvesMissingSuffix(t *testing.T) {
	base := t.TempDir()
	got, err := pathguard.Canonical(filepath.Join(base, "missing", "leaf"))
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	resolvedBase, err := pathguard.Canonical(base)
	if err != nil {
		t.Fatalf("Canonical base: %v", err)
	}
	want := filepath.Join(resolvedBase, "missing", "leaf")
	if got != want {
		t.Fatalf("Canonical = %q, want %q", got, want)
	}
}

func TestCheckNestedPropagatesResolutionFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission test requires an unprivileged unix user")
	}
	base := t.TempDir()
	locked := filepath.Join(base, "locked")
	if err := os.Mkdir(locked, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	candidate := filepath.Join(locked, "inner", "leaf")
	if _, err := pathguard.CheckNested(candidate, base); err == nil {
		t.Fatal("expected resolution failure for unreadable ancestor")
	}
	if pathguard.IsNested(candidate, base) {
		t.Fatal("permissive variant must report not nested on failure")
	}
}
