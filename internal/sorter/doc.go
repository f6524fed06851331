// Package sorter implements the recursive classification engine.
//
// A run walks a source tree and relocates every regular file into a
// destination subdirectory named after the file's case-folded extension,
// skipping the destination itself when it turns out to live inside the
// source. Placement never overwrites: occupied names get a numbered variant.
// Failures stay scoped to the entry that caused them so a single unreadable
// file or directory never aborts the traversal.
//
// Progress is reported through an injected EventSink rather than direct
// console writes, so callers decide how (and whether) to render it.
package sorter
