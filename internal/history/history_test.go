package history

import "testing"

func TestNew(t *testing.T) {
	h := New("/home")

	if h.Current() != "/home" {
		t.Errorf("Expected current to be /home, got %s", h.Current())
	}
	if h.CanBack() {
		t.Error("Fresh history should not allow back")
	}
}

func TestVisitAndBack(t *testing.T) {
	h := New("/home")
	h.Visit("/home/docs")
	h.Visit("/home/docs/work")

	if h.Current() != "/home/docs/work" {
		t.Errorf("Expected current to be /home/docs/work, got %s", h.Current())
	}

	path, ok := h.Back()
	if !ok || path != "/home/docs" {
		t.Errorf("Expected back to /home/docs, got %s (ok=%v)", path, ok)
	}

	path, ok = h.Back()
	if !ok || path != "/home" {
		t.Errorf("Expected back to /home, got %s (ok=%v)", path, ok)
	}

	if _, ok := h.Back(); ok {
		t.Error("Back past the first entry should fail")
	}
}

func TestVisitTruncatesForwardHistory(t *testing.T) {
	h := New("/a")
	h.Visit("/b")
	h.Visit("/c")

	h.Back() // now at /b
	h.Visit("/d")

	if h.Len() != 3 {
		t.Errorf("Expected 3 entries after truncation, got %d", h.Len())
	}
	if h.Current() != "/d" {
		t.Errorf("Expected current to be /d, got %s", h.Current())
	}

	path, _ := h.Back()
	if path != "/b" {
		t.Errorf("Expected back to /b, got %s", path)
	}
}

func TestVisitSamePathIsNoOp(t *testing.T) {
	h := New("/a")
	h.Visit("/a")

	if h.Len() != 1 {
		t.Errorf("Re-visiting the current path should not append, got %d entries", h.Len())
	}
}
