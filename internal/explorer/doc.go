package explorer

// Package explorer implements the explorer session and the clipboard
// reconciler: staging selections for copy/cut, pasting staged or
// externally-supplied sources into the current directory with conflict
// handling and per-entry fault isolation, deleting selections, and
// directory navigation with back history.
