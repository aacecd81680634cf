package explorer

import (
	"path/filepath"
	"testing"
)

func TestResolveDestName_File(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"a.txt", "a_copy.txt"},
		{"archive.tar.gz", "archive.tar_copy.gz"},
		{"noext", "noext_copy"},
		{".bashrc", ".bashrc_copy"},
	}

	for _, tc := range cases {
		if got := ResolveDestName(tc.name, false); got != tc.expected {
			t.Errorf("ResolveDestName(%q, false) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestResolveDestName_Directory(t *testing.T) {
	// Directories get the suffix on the whole name, dots included.
	if got := ResolveDestName("my.project", true); got != "my.project_copy" {
		t.Errorf("Expected my.project_copy, got %s", got)
	}
	if got := ResolveDestName("photos", true); got != "photos_copy" {
		t.Errorf("Expected photos_copy, got %s", got)
	}
}

func TestCollectSelection_DedupPreservesOrder(t *testing.T) {
	collected := CollectSelection([]string{"/b", "/a", "/b", "", "/c", "/a"})

	expected := []string{"/b", "/a", "/c"}
	if len(collected) != len(expected) {
		t.Fatalf("Expected %d paths, got %d: %v", len(expected), len(collected), collected)
	}
	for i, p := range expected {
		if collected[i] != p {
			t.Errorf("Expected path %d to be %s, got %s", i, p, collected[i])
		}
	}
}

func TestCollectSelection_ResolvesRelativePaths(t *testing.T) {
	collected := CollectSelection([]string{"relative/path"})

	if len(collected) != 1 {
		t.Fatalf("Expected 1 path, got %d", len(collected))
	}
	if !filepath.IsAbs(collected[0]) {
		t.Errorf("Expected an absolute path, got %s", collected[0])
	}
}

func TestCollectSelection_Empty(t *testing.T) {
	if collected := CollectSelection(nil); collected != nil {
		t.Errorf("Empty selection should collect to nil, got %v", collected)
	}
}
