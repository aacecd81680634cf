// Package clipboard bridges the internal path selection and the OS
// clipboard. The OS clipboard carries text only, so file references are
// exchanged as a newline-separated list of file:// URLs, the convention
// desktop file managers accept for cross-application paste.
package clipboard

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// FileURLScheme is the scheme used for local file references.
const FileURLScheme = "file"

// Board is the subset of fyne.Clipboard the explorer needs. Declared here so
// tests can substitute an in-memory implementation.
type Board interface {
	Content() string
	SetContent(content string)
}

// EncodeFileURLs serializes paths as a newline-separated file URL list.
func EncodeFileURLs(paths []string) string {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		u := url.URL{Scheme: FileURLScheme, Path: toURLPath(p)}
		urls = append(urls, u.String())
	}
	return strings.Join(urls, "\n")
}

// DecodeFileURLs parses clipboard text into local paths. Lines that are not
// file URLs are ignored, so arbitrary copied text never turns into a paste
// source.
func DecodeFileURLs(content string) []string {
	var paths []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), "\r")
		if line == "" || !strings.HasPrefix(line, FileURLScheme+"://") {
			continue
		}

		u, err := url.Parse(line)
		if err != nil || u.Scheme != FileURLScheme || u.Path == "" {
			continue
		}
		paths = append(paths, fromURLPath(u.Path))
	}

	return paths
}

// StagePaths writes the selection to the OS clipboard as file URLs so an
// external file manager can receive it.
func StagePaths(board Board, paths []string) {
	board.SetContent(EncodeFileURLs(paths))
}

// ReadPaths returns the local file references currently held by the OS
// clipboard, or nil if it carries none.
func ReadPaths(board Board) []string {
	return DecodeFileURLs(board.Content())
}

func toURLPath(p string) string {
	slashed := filepath.ToSlash(p)
	if !strings.HasPrefix(slashed, "/") {
		// Windows drive paths become /C:/...
		slashed = "/" + slashed
	}
	return slashed
}

func fromURLPath(p string) string {
	if runtime.GOOS == "windows" && len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p)
}
