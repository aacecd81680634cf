package fileops

import (
	"io"
	"os"
	"path/filepath"
)

// OSFS implements FS against the real filesystem.
type OSFS struct{}

// NewOSFS creates the default filesystem implementation.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Exists reports whether the path exists.
func (f *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func (f *OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Copy duplicates src at dst. Directories are copied recursively, files with
// content, permissions, and modification time.
func (f *OSFS) Copy(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if srcInfo.IsDir() {
		return copyDir(src, dst, srcInfo.Mode())
	}
	return copyFile(src, dst, srcInfo)
}

// Move renames src to dst. os.Rename fails across filesystems; callers fall
// back to Copy plus Delete in that case.
func (f *OSFS) Move(src, dst string) error {
	return os.Rename(src, dst)
}

// Delete removes the path, recursively for directories.
func (f *OSFS) Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

func copyFile(src, dst string, srcInfo os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, srcInfo.Mode()); err != nil {
		return err
	}
	// Preserve the modification time so copies look like the original.
	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath, info); err != nil {
				return err
			}
		}
	}
	return nil
}
