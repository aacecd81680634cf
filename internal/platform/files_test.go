package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetHomeDir(t *testing.T) {
	homeDir, err := GetHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}

	if homeDir == "" {
		t.Fatal("Home directory is empty")
	}

	if !filepath.IsAbs(homeDir) {
		t.Errorf("Expected absolute home directory path, got: %s", homeDir)
	}
}

func TestOpenFileInManager_NonExistentPath(t *testing.T) {
	tempDir := t.TempDir()
	nonExistent := filepath.Join(tempDir, "nonexistent.txt")

	err := OpenFileInManager(nonExistent)
	if err == nil {
		t.Error("Expected error for non-existent path, got nil")
	}

	if !strings.Contains(err.Error(), "path does not exist:") {
		t.Errorf("Error message should contain 'path does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentPath(t *testing.T) {
	tempDir := t.TempDir()
	nonExistent := filepath.Join(tempDir, "nonexistent.txt")

	err := OpenFileWithDefaultApp(nonExistent)
	if err == nil {
		t.Error("Expected error for non-existent path, got nil")
	}

	if !strings.Contains(err.Error(), "path does not exist:") {
		t.Errorf("Error message should contain 'path does not exist:', got: %v", err)
	}
}
