package preflight_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"extsort/internal/preflight"
	"extsort/internal/testsupport"
)

func TestCheckSourcePasses(t *testing.T) {
	result := preflight.CheckSource(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestCheckSourceMissing(t *testing.T) {
	result := preflight.CheckSource(filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatalf("expected failure, got %+v", result)
	}
}

func TestCheckSourceRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	testsupport.WriteFile(t, path, "x")

	result := preflight.CheckSource(path)
	if result.Passed {
		t.Fatalf("expected failure for non-directory, got %+v", result)
	}
}

func TestCheckSourceUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission test requires an unprivileged unix user")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	result := preflight.CheckSource(dir)
	if result.Passed {
		t.Fatalf("expected failure for unreadable directory, got %+v", result)
	}
}

func TestCheckDestinationExisting(t *testing.T) {
	result := preflight.CheckDestination(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}
}

func TestCheckDestinationMissingUsesAncestor(t *testing.T) {
	base := t.TempDir()
	result := preflight.CheckDestination(filepath.Join(base, "not", "yet", "created"))
	if !result.Passed {
		t.Fatalf("expected pass through existing ancestor, got %+v", result)
	}
}

func TestCheckDestinationReadOnlyAncestor(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission test requires an unprivileged unix user")
	}
	base := t.TempDir()
	readonly := filepath.Join(base, "ro")
	if err := os.Mkdir(readonly, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(readonly, 0o755) })

	result := preflight.CheckDestination(filepath.Join(readonly, "dist"))
	if result.Passed {
		t.Fatalf("expected failure for read-only ancestor, got %+v", result)
	}
}

func TestRunAndFailed(t *testing.T) {
	src := t.TempDir()
	results := preflight.Run(src, filepath.Join(t.TempDir(), "dist"))
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if preflight.Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	bad := preflight.Run(filepath.Join(src, "absent"), src)
	if !preflight.Failed(bad) {
		t.Fatalf("expected failure for missing source: %+v", bad)
	}
}
