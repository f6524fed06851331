package sorter

import (
	"log/slog"
	"os"
	"path/filepath"

	"extsort/internal/fileutil"
	"extsort/internal/logging"
	"extsort/internal/pathguard"
)

// Sorter carries the per-run state of one traversal: the resolved destination
// root, the placement mode, and the buckets created so far.
type Sorter struct {
	destRoot string
	mode     Mode
	verify   bool
	dryRun   bool
	maxDepth int
	logger   *slog.Logger
	sink     EventSink

	buckets  map[string]struct{}
	reserved map[string]struct{}
}

func newSorter(opts Options, destRoot string, logger *slog.Logger, sink EventSink) *Sorter {
	mode := ModeCopy
	if opts.Move {
		mode = ModeMove
	}
	return &Sorter{
		destRoot: destRoot,
		mode:     mode,
		verify:   opts.Verify,
		dryRun:   opts.DryRun,
		maxDepth: opts.MaxDepth,
		logger:   logging.NewComponentLogger(logger, "sorter"),
		sink:     sink,
		buckets:  make(map[string]struct{}),
		reserved: make(map[string]struct{}),
	}
}

// walk enumerates dir and routes every child: subdirectories recurse unless
// they resolve into the destination, regular files are placed, and anything
// else is ignored. The returned summary covers the whole subtree.
func (s *Sorter) walk(dir string, depth int) Summary {
	var sum Summary

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.fail(&sum, Failure{Kind: FailListDir, Path: dir, Err: err})
		return sum
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if pathguard.IsNested(path, s.destRoot) {
				s.sink.DirectorySkipped(path)
				s.logger.Debug("skipping destination subtree", logging.String("path", path))
				continue
			}
			if depth+1 > s.maxDepth {
				s.fail(&sum, Failure{
					Kind: FailDepth,
					Path: path,
					Err:  Wrap(ErrIO, "descend", "directory tree exceeds depth bound", nil),
				})
				continue
			}
			child := s.walk(path, depth+1)
			sum.Files += child.Files
			sum.Errors += child.Errors
		case entry.Type().IsRegular():
			s.placeFile(&sum, path, entry.Name())
		default:
			// Symlinks, sockets, and devices are neither plain files nor
			// directories; they contribute to neither count.
		}
	}

	return sum
}

func (s *Sorter) placeFile(sum *Summary, path, name string) {
	bucket := BucketFor(name)
	bucketDir := filepath.Join(s.destRoot, bucket)

	if err := s.ensureBucket(bucketDir); err != nil {
		s.fail(sum, Failure{Kind: FailCreateBucket, Path: bucketDir, Err: err})
		return
	}

	target := UniqueTarget(bucketDir, name, s.reserved)
	if s.dryRun {
		s.reserved[target] = struct{}{}
	} else if err := s.place(path, target); err != nil {
		s.fail(sum, Failure{Kind: placementKind(err), Path: path, Err: err})
		return
	}

	sum.Files++
	s.sink.FilePlaced(Placement{Source: path, Target: target, Bucket: bucket, Mode: s.mode, DryRun: s.dryRun})
	s.logger.Info("placed file",
		logging.String("source", path),
		logging.String("target", target),
		logging.String("bucket", bucket),
		logging.String("mode", s.mode.String()),
		logging.Bool("dry_run", s.dryRun),
	)
}

func (s *Sorter) ensureBucket(dir string) error {
	if _, ok := s.buckets[dir]; ok {
		return nil
	}
	if !s.dryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	s.buckets[dir] = struct{}{}
	return nil
}

func (s *Sorter) place(src, dst string) error {
	switch {
	case s.mode == ModeMove:
		return fileutil.MoveFile(src, dst)
	case s.verify:
		return fileutil.CopyFileVerified(src, dst)
	default:
		return fileutil.CopyFile(src, dst)
	}
}

func (s *Sorter) fail(sum *Summary, failure Failure) {
	sum.Errors++
	s.sink.EntryFailed(failure)
	s.logger.Error("entry failed",
		logging.String("path", failure.Path),
		logging.String("kind", failure.Kind.String()),
		logging.Error(failure.Err),
	)
}

func placementKind(err error) FailureKind {
	switch Classify(err) {
	case ErrPermission:
		return FailPermission
	case ErrNotFound:
		return FailMissing
	default:
		return FailIO
	}
}
