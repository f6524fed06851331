package sorter

// Mode identifies the placement primitive used for a run.
type Mode int

const (
	ModeCopy Mode = iota
	ModeMove
)

// String returns the mode as a lowercase noun for banners and logs.
func (m Mode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "copy"
}

// Verb returns the past-tense confirmation verb for placed files.
func (m Mode) Verb() string {
	if m == ModeMove {
		return "Moved"
	}
	return "Copied"
}

// FailureKind tells a sink which operation produced a failure.
type FailureKind int

const (
	// FailListDir means a directory's contents could not be enumerated.
	FailListDir FailureKind = iota
	// FailCreateBucket means an extension bucket directory could not be created.
	FailCreateBucket
	// FailPermission means a placement was rejected by permissions.
	FailPermission
	// FailMissing means the source file vanished before placement.
	FailMissing
	// FailIO covers any other placement failure.
	FailIO
	// FailDepth means a subtree exceeded the traversal depth bound.
	FailDepth
)

func (k FailureKind) String() string {
	switch k {
	case FailListDir:
		return "list_dir"
	case FailCreateBucket:
		return "create_bucket"
	case FailPermission:
		return "permission"
	case FailMissing:
		return "missing"
	case FailDepth:
		return "depth"
	default:
		return "io"
	}
}

// RunStart describes a run as it begins, with both paths canonicalized.
type RunStart struct {
	Mode        Mode
	Source      string
	Destination string
	DryRun      bool
}

// Placement describes one successfully relocated (or, in a dry run, planned)
// file.
type Placement struct {
	Source string
	Target string
	Bucket string
	Mode   Mode
	DryRun bool
}

// Failure describes one recovered per-entry error.
type Failure struct {
	Kind FailureKind
	Path string
	Err  error
}

// Summary aggregates per-run counters. Counts only ever grow; every entry
// contributes to at most one of them.
type Summary struct {
	Files  int
	Errors int
}

// EventSink receives progress events from a run, in traversal order. The
// engine never writes to stdout or stderr itself; rendering belongs to the
// sink installed by the caller.
type EventSink interface {
	RunStarted(RunStart)
	FilePlaced(Placement)
	EntryFailed(Failure)
	DirectorySkipped(path string)
	RunCompleted(Summary)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RunStarted(RunStart)     {}
func (NopSink) FilePlaced(Placement)    {}
func (NopSink) EntryFailed(Failure)     {}
func (NopSink) DirectorySkipped(string) {}
func (NopSink) RunCompleted(Summary)    {}
