package testsupport

import (
	"extsort/internal/sorter"
)

// RecorderSink captures every event a run emits, in order, so tests can
// assert on the sequence without scraping console output.
type RecorderSink struct {
	Starts     []sorter.RunStart
	Placements []sorter.Placement
	Failures   []sorter.Failure
	Skipped    []string
	Summaries  []sorter.Summary
	order      []string
}

var _ sorter.EventSink = (*RecorderSink)(nil)

func (r *RecorderSink) RunStarted(e sorter.RunStart) {
	r.Starts = append(r.Starts, e)
	r.order = append(r.order, "start")
}

func (r *RecorderSink) FilePlaced(e sorter.Placement) {
	r.Placements = append(r.Placements, e)
	r.order = append(r.order, "placed")
}

func (r *RecorderSink) EntryFailed(e sorter.Failure) {
	r.Failures = append(r.Failures, e)
	r.order = append(r.order, "failed")
}

func (r *RecorderSink) DirectorySkipped(path string) {
	r.Skipped = append(r.Skipped, path)
	r.order = append(r.order, "skipped")
}

func (r *RecorderSink) RunCompleted(s sorter.Summary) {
	r.Summaries = append(r.Summaries, s)
	r.order = append(r.order, "completed")
}

// Order returns the event kinds in emission order.
func (r *RecorderSink) Order() []string {
	return append([]string(nil), r.order...)
}

// Targets returns the resolved target path of every placement.
func (r *RecorderSink) Targets() []string {
	out := make([]string, 0, len(r.Placements))
	for _, p := range r.Placements {
		out = append(out, p.Target)
	}
	return out
}
