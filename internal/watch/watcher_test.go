package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filepane/filepane/internal/logging"
)

const changeTimeout = 3 * time.Second

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	dw, err := NewDirWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDirWatcher failed: %v", err)
	}
	defer dw.Stop()

	if err := dw.Watch(dir); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(changeTimeout):
		t.Error("Expected change callback, got none")
	}
}

func TestWatchSwitchesDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	changed := make(chan struct{}, 1)
	dw, err := NewDirWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDirWatcher failed: %v", err)
	}
	defer dw.Stop()

	if err := dw.Watch(first); err != nil {
		t.Fatalf("Watch first failed: %v", err)
	}
	if err := dw.Watch(second); err != nil {
		t.Fatalf("Watch second failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(second, "b.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(changeTimeout):
		t.Error("Expected change callback after switching directories, got none")
	}
}

func TestWatchSameDirectoryIsNoop(t *testing.T) {
	dir := t.TempDir()

	dw, err := NewDirWatcher(nil, logging.NewNop())
	if err != nil {
		t.Fatalf("NewDirWatcher failed: %v", err)
	}
	defer dw.Stop()

	if err := dw.Watch(dir); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := dw.Watch(dir); err != nil {
		t.Errorf("Re-watching the same directory should be a no-op, got %v", err)
	}
}
