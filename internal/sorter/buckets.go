package sorter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// NoExtensionBucket is the destination subdirectory for files whose name
// carries no extension. The leading underscore keeps it from colliding with
// any real extension, which never starts with one after the dot is stripped.
const NoExtensionBucket = "_no_ext"

// BucketFor returns the destination subdirectory name for a file. Extensions
// are case-folded so B.TXT and a.txt share one bucket regardless of alphabet.
func BucketFor(filename string) string {
	ext := extensionOf(filename)
	if ext == "" {
		return NoExtensionBucket
	}
	return cases.Fold().String(ext)
}

func extensionOf(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	// Dotfiles like .bashrc are all "extension" to filepath.Ext; treat them
	// as extensionless, as a trailing bare dot is too.
	if ext == base || ext == "." || ext == "" {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// UniqueTarget returns a path inside dir that no existing file occupies,
// trying name first and then "stem (1)suffix", "stem (2)suffix", and so on.
// Names in reserved are also avoided; dry runs record planned placements
// there since nothing lands on disk.
func UniqueTarget(dir, name string, reserved map[string]struct{}) string {
	stem, suffix := splitName(name)
	candidate := filepath.Join(dir, name)
	for counter := 1; targetTaken(candidate, reserved); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, suffix))
	}
	return candidate
}

func splitName(name string) (stem, suffix string) {
	suffix = filepath.Ext(name)
	if suffix == name || suffix == "." {
		return name, ""
	}
	return strings.TrimSuffix(name, suffix), suffix
}

func targetTaken(path string, reserved map[string]struct{}) bool {
	if _, ok := reserved[path]; ok {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}
