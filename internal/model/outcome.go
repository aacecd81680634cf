package model

import "fmt"

// FailedEntry records one source path that could not be processed, with the
// reason reported by the filesystem primitive.
type FailedEntry struct {
	Source string
	Reason string
}

// PasteOutcome aggregates the result of a single paste invocation. Vanished
// sources are counted as skipped, not failed.
type PasteOutcome struct {
	ID        string // batch ID for log correlation
	Succeeded int
	Skipped   int
	Failed    []FailedEntry
}

// AllSucceeded returns true if no entry failed.
func (o *PasteOutcome) AllSucceeded() bool {
	return len(o.Failed) == 0
}

// Summary returns a human-readable one-line result for the status bar.
func (o *PasteOutcome) Summary() string {
	if len(o.Failed) > 0 {
		return fmt.Sprintf("Paste partially completed (%d item(s), %d failed)", o.Succeeded, len(o.Failed))
	}
	return fmt.Sprintf("Paste completed (%d item(s))", o.Succeeded)
}

// DeleteOutcome aggregates the result of a delete invocation. Attempted
// counts every entry a removal was issued for, whether or not it succeeded;
// the Failed list carries the entries that reported an error.
type DeleteOutcome struct {
	ID        string
	Attempted int
	Skipped   int
	Failed    []FailedEntry
}

// Summary returns a human-readable one-line result for the status bar.
func (o *DeleteOutcome) Summary() string {
	if len(o.Failed) > 0 {
		return fmt.Sprintf("Deleted %d item(s), %d failed", o.Attempted, len(o.Failed))
	}
	return fmt.Sprintf("Deleted %d item(s)", o.Attempted)
}
