package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOSFS_ExistsAndIsDir(t *testing.T) {
	fs := NewOSFS()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "hello")

	assert.True(t, fs.Exists(dir))
	assert.True(t, fs.Exists(file))
	assert.False(t, fs.Exists(filepath.Join(dir, "missing")))

	assert.True(t, fs.IsDir(dir))
	assert.False(t, fs.IsDir(file))
	assert.False(t, fs.IsDir(filepath.Join(dir, "missing")))
}

func TestOSFS_CopyFile(t *testing.T) {
	fs := NewOSFS()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "payload")

	require.NoError(t, fs.Copy(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode(), dstInfo.Mode())
	assert.Equal(t, srcInfo.ModTime().Unix(), dstInfo.ModTime().Unix())
}

func TestOSFS_CopyDirRecursive(t *testing.T) {
	fs := NewOSFS()
	dir := t.TempDir()

	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	writeFile(t, filepath.Join(src, "top.txt"), "top")
	writeFile(t, filepath.Join(src, "nested", "deep.txt"), "deep")

	dst := filepath.Join(dir, "tree-copy")
	require.NoError(t, fs.Copy(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "nested", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(data))
}

func TestOSFS_Move(t *testing.T) {
	fs := NewOSFS()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "moved.txt")
	writeFile(t, src, "mv")

	require.NoError(t, fs.Move(src, dst))

	assert.False(t, fs.Exists(src))
	assert.True(t, fs.Exists(dst))
}

func TestOSFS_Delete(t *testing.T) {
	fs := NewOSFS()
	dir := t.TempDir()

	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "x")
	require.NoError(t, fs.Delete(file))
	assert.False(t, fs.Exists(file))

	tree := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(tree, "nested"), 0o755))
	writeFile(t, filepath.Join(tree, "nested", "deep.txt"), "x")
	require.NoError(t, fs.Delete(tree))
	assert.False(t, fs.Exists(tree))

	err := fs.Delete(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
