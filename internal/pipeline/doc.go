// Package pipeline applies sortn's line transforms to a buffered batch.
//
// A Pipeline is an ordered list of Steps. Each Step rewrites the batch's
// line sequence in place and records what it removed. The default pipeline
// built from a config.Config runs, in this fixed order:
//
//  1. BlankFilterStep, when blank lines are skipped
//  2. ShuffleStep when randomizing, otherwise SortStep
//  3. DedupeStep, when only unique lines are kept
//
// Deduplication runs after ordering, so which of several equal-key lines
// survives depends on the order the second stage produced.
//
// Ordering and deduplication derive a comparison key from each line with
// the same KeyFunc: the line itself, or its lower-cased form when case is
// ignored.
//
// Steps cannot fail: every transform is total over arbitrary line content.
// All I/O happens outside this package. The pipeline is single-threaded
// and a Pipeline value must not be executed concurrently.
package pipeline
