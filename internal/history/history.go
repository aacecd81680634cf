// Package history tracks visited directories for back navigation: an
// append-only sequence with a current index, truncated on divergence.
package history

// History records visited directory paths.
type History struct {
	entries []string
	index   int
}

// New creates a history seeded with the starting directory.
func New(start string) *History {
	return &History{entries: []string{start}}
}

// Current returns the path at the current position.
func (h *History) Current() string {
	return h.entries[h.index]
}

// Visit records a newly visited path. Forward history beyond the current
// index is dropped before appending. Re-visiting the current path is a no-op.
func (h *History) Visit(path string) {
	if h.entries[h.index] == path {
		return
	}

	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, path)
	h.index = len(h.entries) - 1
}

// CanBack reports whether a back step is possible.
func (h *History) CanBack() bool {
	return h.index > 0
}

// Back steps to the previous path and returns it. The second return is false
// when there is nowhere to go back to.
func (h *History) Back() (string, bool) {
	if !h.CanBack() {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
