package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"extsort/internal/logging"
	"extsort/internal/pathguard"
)

// LockFileName is the flock target held inside the destination root while a
// locking run is in flight, and removed again when it finishes. It enforces
// the single-writer assumption the collision-naming scheme depends on.
const LockFileName = ".extsort.lock"

// Options configures a single classification run.
type Options struct {
	Source          string
	Destination     string
	Move            bool
	Verify          bool
	DryRun          bool
	MaxDepth        int
	LockDestination bool
}

// Run validates the source and destination, then walks the source tree and
// relocates every regular file into extension buckets under the destination.
//
// A non-nil error is always a precondition failure detected before any
// traversal (and tagged ErrPrecondition); per-entry failures never surface
// here, they only raise the summary's error count.
func Run(opts Options, logger *slog.Logger, sink EventSink) (Summary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if sink == nil {
		sink = NopSink{}
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 64
	}

	source := strings.TrimSpace(opts.Source)
	destination := strings.TrimSpace(opts.Destination)
	if source == "" || destination == "" {
		return Summary{}, Wrap(ErrPrecondition, "validate arguments", "source and destination must be set", nil)
	}

	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, Wrap(ErrPrecondition, "validate source", fmt.Sprintf("source directory does not exist: %s", source), nil)
		}
		return Summary{}, Wrap(ErrPrecondition, "validate source", source, err)
	}
	if !info.IsDir() {
		return Summary{}, Wrap(ErrPrecondition, "validate source", fmt.Sprintf("source path is not a directory: %s", source), nil)
	}

	// Fail closed here: an unresolvable path must reject the run, not slip
	// past the guard. Traversal-time skip decisions stay permissive.
	nested, err := pathguard.CheckNested(source, destination)
	if err != nil {
		return Summary{}, Wrap(ErrPrecondition, "resolve paths", "", err)
	}
	if nested {
		return Summary{}, Wrap(ErrPrecondition, "validate destination", "source directory cannot be inside the destination directory", nil)
	}

	resolvedSource, err := pathguard.Canonical(source)
	if err != nil {
		return Summary{}, Wrap(ErrPrecondition, "resolve source", source, err)
	}
	resolvedDest, err := pathguard.Canonical(destination)
	if err != nil {
		return Summary{}, Wrap(ErrPrecondition, "resolve destination", destination, err)
	}

	if !opts.DryRun {
		if err := os.MkdirAll(resolvedDest, 0o755); err != nil {
			return Summary{}, Wrap(ErrPrecondition, "create destination", resolvedDest, err)
		}
		if opts.LockDestination {
			lock := flock.New(filepath.Join(resolvedDest, LockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return Summary{}, Wrap(ErrPrecondition, "lock destination", resolvedDest, err)
			}
			if !locked {
				return Summary{}, Wrap(ErrPrecondition, "lock destination", "another run holds the destination lock", nil)
			}
			defer func() {
				_ = lock.Unlock()
				_ = os.Remove(lock.Path())
			}()
		}
	}

	run := newSorter(opts, resolvedDest, logger, sink)

	sink.RunStarted(RunStart{Mode: run.mode, Source: resolvedSource, Destination: resolvedDest, DryRun: opts.DryRun})
	run.logger.Info("run starting",
		logging.String("mode", run.mode.String()),
		logging.String("source", resolvedSource),
		logging.String("destination", resolvedDest),
		logging.Bool("dry_run", opts.DryRun),
	)

	summary := run.walk(resolvedSource, 0)

	sink.RunCompleted(summary)
	run.logger.Info("run complete",
		logging.Int("files", summary.Files),
		logging.Int("errors", summary.Errors),
	)
	return summary, nil
}
