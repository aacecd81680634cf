package explorer

import (
	"github.com/filepane/filepane/internal/model"
)

// Explorer defines the interface for the explorer session consumed by the UI.
type Explorer interface {
	CurrentPath() string
	Navigate(path string) error
	Back() (string, bool)
	Up() (string, bool)
	ListCurrent(showHidden bool) ([]model.FileEntry, error)

	// Stage replaces the internal clipboard with the selection and mirrors
	// it to the OS clipboard. Returns the number of staged entries.
	Stage(paths []string, cut bool) int

	// Paste reconciles the staged or externally-supplied sources into the
	// current directory. Returns ErrInvalidTarget or ErrEmptyClipboard for
	// pre-condition failures; per-entry failures land in the outcome.
	Paste() (*model.PasteOutcome, error)

	// Delete removes the given paths, directories recursively. The caller
	// is responsible for user confirmation.
	Delete(paths []string) *model.DeleteOutcome

	// ClipboardEntry exposes the internal clipboard state.
	ClipboardEntry() *model.ClipboardEntry
}
