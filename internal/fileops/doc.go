package fileops

// Package fileops wraps the filesystem primitives the explorer consumes:
// existence and directory checks, metadata-preserving file copy, recursive
// directory copy, atomic move, and removal. The FS interface lets the paste
// reconciliation policy be exercised against a faulty filesystem in tests.
