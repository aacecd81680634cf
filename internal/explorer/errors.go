package explorer

import "errors"

var (
	// ErrInvalidTarget is returned when the paste destination does not
	// exist or is not a directory. No source is touched.
	ErrInvalidTarget = errors.New("current location is not a directory")

	// ErrEmptyClipboard is returned when neither the OS clipboard nor the
	// internal clipboard holds anything to paste. Informational, no-op.
	ErrEmptyClipboard = errors.New("nothing to paste")

	// ErrPathNotFound is returned when navigating to a path that does not
	// exist or is not a directory.
	ErrPathNotFound = errors.New("path does not exist")
)
