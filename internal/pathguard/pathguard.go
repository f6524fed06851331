// Package pathguard decides whether one path lives inside another.
//
// The classifier uses it to refuse a destination that contains the source and
// to skip the destination tree when it is discovered during traversal, which
// is what keeps a run from copying its own output forever.
package pathguard

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// Canonical resolves path to an absolute form with symlinks evaluated.
// When the path does not exist yet, the longest existing ancestor is resolved
// and the remaining segments are reattached, so a destination that will only
// be created later still canonicalizes.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	remainder := ""
	current := abs
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		remainder = filepath.Join(filepath.Base(current), remainder)
		current = parent

		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(resolved, remainder), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
}

// IsNested reports whether candidate equals reference or sits anywhere below
// it, comparing canonical forms. Resolution failures are treated as not
// nested; use CheckNested where the answer must not be guessed.
func IsNested(candidate, reference string) bool {
	nested, err := CheckNested(candidate, reference)
	if err != nil {
		return false
	}
	return nested
}

// CheckNested is the fail-closed variant of IsNested: it propagates
// canonicalization failures instead of defaulting to "not nested". The
// top-level source/destination precondition uses this so a permission problem
// on either path rejects the run rather than silently passing the guard.
func CheckNested(candidate, reference string) (bool, error) {
	resolvedCandidate, err := Canonical(candidate)
	if err != nil {
		return false, err
	}
	resolvedReference, err := Canonical(reference)
	if err != nil {
		return false, err
	}
	if resolvedCandidate == resolvedReference {
		return true, nil
	}

	rel, err := filepath.Rel(resolvedReference, resolvedCandidate)
	if err != nil {
		// Different volumes cannot nest.
		return false, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	return !filepath.IsAbs(rel), nil
}
