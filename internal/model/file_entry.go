package model

import (
	"io/fs"
	"path/filepath"
	"time"
)

// FileEntry represents one row of the file list pane.
type FileEntry struct {
	Name    string
	Path    string // absolute path
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// NewFileEntry builds an entry from a directory listing item.
func NewFileEntry(dir string, info fs.FileInfo) FileEntry {
	return FileEntry{
		Name:    info.Name(),
		Path:    filepath.Join(dir, info.Name()),
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

// IsHidden reports whether the entry is a dotfile.
func (fe FileEntry) IsHidden() bool {
	return len(fe.Name) > 0 && fe.Name[0] == '.'
}
