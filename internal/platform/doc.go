package platform

// Package platform contains OS integration glue: opening files with the
// default application, revealing paths in the system file manager, and
// resolving the user's home directory.
