package fileops

// FS is the filesystem contract consumed by the clipboard reconciler.
type FS interface {
	// Exists reports whether the path exists at all.
	Exists(path string) bool

	// IsDir reports whether the path exists and is a directory.
	IsDir(path string) bool

	// Copy duplicates src at dst: directories recursively, files with
	// content and metadata.
	Copy(src, dst string) error

	// Move renames src to dst atomically. It may fail across devices and
	// callers are expected to fall back to Copy plus Delete.
	Move(src, dst string) error

	// Delete removes the path: directories recursively, files directly.
	Delete(path string) error
}
