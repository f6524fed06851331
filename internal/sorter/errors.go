package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrPrecondition marks failures detected before any traversal begins.
	ErrPrecondition = errors.New("precondition failed")
	// ErrPermission marks placements rejected by filesystem permissions.
	ErrPermission = errors.New("permission denied")
	// ErrNotFound marks entries that vanished between listing and placement.
	ErrNotFound = errors.New("file missing or inaccessible")
	// ErrIO marks any other filesystem failure.
	ErrIO = errors.New("filesystem error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps a raw filesystem error onto the placement failure taxonomy.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	default:
		return ErrIO
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "sorter failure"
	}
	return strings.Join(parts, ": ")
}
