package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"extsort/internal/sorter"
)

func TestConsoleSinkRendersLifecycle(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := newConsoleSink(&out, &errOut, false)

	sink.RunStarted(sorter.RunStart{Mode: sorter.ModeCopy, Source: "/src", Destination: "/dest"})
	sink.FilePlaced(sorter.Placement{Source: "/src/a.txt", Target: "/dest/txt/a.txt", Bucket: "txt", Mode: sorter.ModeCopy})
	sink.EntryFailed(sorter.Failure{Kind: sorter.FailPermission, Path: "/src/b.txt", Err: errors.New("denied")})
	sink.RunCompleted(sorter.Summary{Files: 1, Errors: 1})

	stdout := out.String()
	wantLines := []string{
		"Starting copy operation",
		"Source: /src",
		"Destination: /dest",
		"Copied: /src/a.txt -> /dest/txt/a.txt",
		"=== SUMMARY ===",
		"Files processed: 1",
		"Errors:          1",
	}
	for _, want := range wantLines {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	if got := errOut.String(); !strings.Contains(got, "[ERROR] No permission for file: /src/b.txt -> denied") {
		t.Fatalf("stderr = %q", got)
	}
}

func TestConsoleSinkDryRunVerb(t *testing.T) {
	var out bytes.Buffer
	sink := newConsoleSink(&out, &out, false)

	sink.RunStarted(sorter.RunStart{Mode: sorter.ModeMove, Source: "/s", Destination: "/d", DryRun: true})
	sink.FilePlaced(sorter.Placement{Source: "/s/x.jpg", Target: "/d/jpg/x.jpg", Mode: sorter.ModeMove, DryRun: true})

	got := out.String()
	if !strings.Contains(got, "Starting move operation (dry run)") {
		t.Fatalf("banner = %q", got)
	}
	if !strings.Contains(got, "Would move: /s/x.jpg -> /d/jpg/x.jpg") {
		t.Fatalf("confirmation = %q", got)
	}
}

func TestFailureMessages(t *testing.T) {
	cases := map[sorter.FailureKind]string{
		sorter.FailListDir:      "Could not read directory",
		sorter.FailCreateBucket: "Could not create directory",
		sorter.FailPermission:   "No permission for file",
		sorter.FailMissing:      "File missing or inaccessible",
		sorter.FailDepth:        "Directory tree too deep",
		sorter.FailIO:           "File system error",
	}
	for kind, want := range cases {
		if got := failureMessage(kind); got != want {
			t.Errorf("failureMessage(%v) = %q, want %q", kind, got, want)
		}
	}
}
