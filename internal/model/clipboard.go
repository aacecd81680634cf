package model

// ClipboardEntry holds the staged selection of the internal clipboard: an
// ordered set of absolute source paths plus the cut/copy mode. The entry is
// replaced wholesale on every copy/cut action and cleared in full only after
// a fully successful cut-paste.
type ClipboardEntry struct {
	Paths []string
	IsCut bool
}

// NewClipboardEntry builds an entry from a selection, removing duplicate
// path strings while preserving first-seen order.
func NewClipboardEntry(paths []string, cut bool) *ClipboardEntry {
	entry := &ClipboardEntry{IsCut: cut}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		entry.Paths = append(entry.Paths, p)
	}

	return entry
}

// IsEmpty returns true if nothing is staged.
func (e *ClipboardEntry) IsEmpty() bool {
	return e == nil || len(e.Paths) == 0
}

// Snapshot returns a copy of the staged paths so a paste batch can iterate
// safely while the entry itself is updated.
func (e *ClipboardEntry) Snapshot() []string {
	if e.IsEmpty() {
		return nil
	}
	paths := make([]string, len(e.Paths))
	copy(paths, e.Paths)
	return paths
}

// DropSucceeded removes the given paths from the entry, keeping order. Used
// after a cut-paste so only the entries that still need a retry remain; the
// cut flag is preserved.
func (e *ClipboardEntry) DropSucceeded(succeeded map[string]bool) {
	if e.IsEmpty() || len(succeeded) == 0 {
		return
	}

	remaining := e.Paths[:0]
	for _, p := range e.Paths {
		if !succeeded[p] {
			remaining = append(remaining, p)
		}
	}
	e.Paths = remaining
}

// Clear resets the entry to empty with the cut flag dropped.
func (e *ClipboardEntry) Clear() {
	e.Paths = nil
	e.IsCut = false
}
