package explorer

import (
	"path/filepath"
	"strings"
)

// CopySuffix is inserted into a destination name when it collides with an
// existing entry.
const CopySuffix = "_copy"

// ResolveDestName renames a colliding destination: files get the suffix
// before the extension ("a.txt" -> "a_copy.txt"), directories get it
// appended to the whole name. The resolution is applied once and never
// increments; if the resolved name also exists, the copy primitive decides
// (files are overwritten, directory copies merge).
func ResolveDestName(name string, isDir bool) string {
	if isDir {
		return name + CopySuffix
	}

	ext := filepath.Ext(name)
	if ext == name {
		// Dotfiles like ".bashrc" have no stem to split.
		return name + CopySuffix
	}
	return strings.TrimSuffix(name, ext) + CopySuffix + ext
}

// CollectSelection normalizes a raw selection: duplicates removed by path
// string identity preserving first-seen order, every survivor resolved to an
// absolute path. An empty result is a valid "nothing selected" answer.
func CollectSelection(paths []string) []string {
	var collected []string

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		collected = append(collected, abs)
	}

	return collected
}
