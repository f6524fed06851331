package sorter_test

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"testing"

	"extsort/internal/sorter"
)

func TestWrapTagsMarker(t *testing.T) {
	err := sorter.Wrap(sorter.ErrPrecondition, "validate source", "missing", nil)
	if !errors.Is(err, sorter.ErrPrecondition) {
		t.Fatalf("expected precondition marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "validate source: missing") {
		t.Fatalf("detail missing from %q", err.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := os.ErrPermission
	err := sorter.Wrap(sorter.ErrPermission, "place", "copy failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost from %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&os.PathError{Op: "open", Path: "/x", Err: syscall.EACCES}, sorter.ErrPermission},
		{&os.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, sorter.ErrNotFound},
		{fs.ErrPermission, sorter.ErrPermission},
		{fs.ErrNotExist, sorter.ErrNotFound},
		{errors.New("disk on fire"), sorter.ErrIO},
		{syscall.EIO, sorter.ErrIO},
	}
	for _, tc := range cases {
		if got := sorter.Classify(tc.err); !errors.Is(got, tc.want) {
			t.Errorf("Classify(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
	if sorter.Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}
