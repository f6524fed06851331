package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"extsort/internal/sorter"
)

// consoleSink renders run progress for a human: a start banner and one
// confirmation line per placed file on stdout, error lines on stderr, and a
// closing summary. It is the only component that writes to the console.
type consoleSink struct {
	out      io.Writer
	errOut   io.Writer
	quiet    bool
	colorize bool
	verb     func(a ...any) string
	marker   func(a ...any) string
}

var _ sorter.EventSink = (*consoleSink)(nil)

func newConsoleSink(out, errOut io.Writer, quiet bool) *consoleSink {
	sink := &consoleSink{
		out:      out,
		errOut:   errOut,
		quiet:    quiet,
		colorize: isTerminal(out),
		verb:     fmt.Sprint,
		marker:   fmt.Sprint,
	}
	if sink.colorize {
		sink.verb = color.New(color.FgGreen).SprintFunc()
	}
	if isTerminal(errOut) {
		sink.marker = color.New(color.FgRed).SprintFunc()
	}
	return sink
}

func (s *consoleSink) RunStarted(e sorter.RunStart) {
	suffix := ""
	if e.DryRun {
		suffix = " (dry run)"
	}
	fmt.Fprintf(s.out, "Starting %s operation%s\n", e.Mode, suffix)
	fmt.Fprintf(s.out, "Source: %s\n", e.Source)
	fmt.Fprintf(s.out, "Destination: %s\n", e.Destination)
}

func (s *consoleSink) FilePlaced(e sorter.Placement) {
	if s.quiet {
		return
	}
	verb := e.Mode.Verb()
	if e.DryRun {
		verb = "Would " + e.Mode.String()
	}
	fmt.Fprintf(s.out, "%s: %s -> %s\n", s.verb(verb), e.Source, e.Target)
}

func (s *consoleSink) EntryFailed(e sorter.Failure) {
	fmt.Fprintf(s.errOut, "%s %s: %s -> %v\n", s.marker("[ERROR]"), failureMessage(e.Kind), e.Path, e.Err)
}

func (s *consoleSink) DirectorySkipped(string) {}

func (s *consoleSink) RunCompleted(summary sorter.Summary) {
	fmt.Fprintf(s.out, "\n=== SUMMARY ===\n")
	if s.colorize {
		fmt.Fprintln(s.out, renderSummaryTable(summary))
		return
	}
	fmt.Fprintf(s.out, "Files processed: %d\n", summary.Files)
	fmt.Fprintf(s.out, "Errors:          %d\n", summary.Errors)
}

func failureMessage(kind sorter.FailureKind) string {
	switch kind {
	case sorter.FailListDir:
		return "Could not read directory"
	case sorter.FailCreateBucket:
		return "Could not create directory"
	case sorter.FailPermission:
		return "No permission for file"
	case sorter.FailMissing:
		return "File missing or inaccessible"
	case sorter.FailDepth:
		return "Directory tree too deep"
	default:
		return "File system error"
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
