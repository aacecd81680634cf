package model

import "testing"

func TestNewClipboardEntry_Dedup(t *testing.T) {
	entry := NewClipboardEntry([]string{"/a", "/b", "/a", "/c", "/b"}, false)

	if len(entry.Paths) != 3 {
		t.Fatalf("Expected 3 unique paths, got %d", len(entry.Paths))
	}

	expected := []string{"/a", "/b", "/c"}
	for i, p := range expected {
		if entry.Paths[i] != p {
			t.Errorf("Expected path %d to be %s, got %s", i, p, entry.Paths[i])
		}
	}
}

func TestClipboardEntry_IsEmpty(t *testing.T) {
	var nilEntry *ClipboardEntry
	if !nilEntry.IsEmpty() {
		t.Error("Nil entry should be empty")
	}

	entry := NewClipboardEntry(nil, true)
	if !entry.IsEmpty() {
		t.Error("Entry without paths should be empty")
	}

	entry = NewClipboardEntry([]string{"/a"}, true)
	if entry.IsEmpty() {
		t.Error("Entry with one path should not be empty")
	}
}

func TestClipboardEntry_DropSucceeded(t *testing.T) {
	entry := NewClipboardEntry([]string{"/a", "/b", "/c"}, true)

	entry.DropSucceeded(map[string]bool{"/a": true, "/c": true})

	if len(entry.Paths) != 1 || entry.Paths[0] != "/b" {
		t.Errorf("Expected only /b to remain, got %v", entry.Paths)
	}
	if !entry.IsCut {
		t.Error("Cut flag must be preserved after a partial drop")
	}
}

func TestClipboardEntry_Clear(t *testing.T) {
	entry := NewClipboardEntry([]string{"/a"}, true)
	entry.Clear()

	if !entry.IsEmpty() {
		t.Error("Cleared entry should be empty")
	}
	if entry.IsCut {
		t.Error("Cleared entry should reset the cut flag")
	}
}

func TestClipboardEntry_Snapshot(t *testing.T) {
	entry := NewClipboardEntry([]string{"/a", "/b"}, false)

	snap := entry.Snapshot()
	snap[0] = "/changed"

	if entry.Paths[0] != "/a" {
		t.Error("Mutating the snapshot must not affect the entry")
	}
}
