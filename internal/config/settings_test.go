package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestStartDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetStartDirectory()
	if dir == "" {
		t.Error("Start directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/start"
	settings.SetStartDirectory(customDir)

	retrievedDir := settings.GetStartDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected start directory %s, got %s", customDir, retrievedDir)
	}
}

func TestShowHidden(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowHidden() != DefaultShowHidden {
		t.Errorf("Expected default show hidden %v, got %v", DefaultShowHidden, settings.GetShowHidden())
	}

	settings.SetShowHidden(true)
	if !settings.GetShowHidden() {
		t.Error("Expected show hidden to be true after setting")
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetConfirmDelete() != DefaultConfirmDelete {
		t.Errorf("Expected default confirm delete %v, got %v", DefaultConfirmDelete, settings.GetConfirmDelete())
	}

	settings.SetConfirmDelete(false)
	if settings.GetConfirmDelete() {
		t.Error("Expected confirm delete to be false after setting")
	}
}

func TestViewMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetViewMode() != DefaultViewMode {
		t.Errorf("Expected default view mode %s, got %s", DefaultViewMode, settings.GetViewMode())
	}

	settings.SetViewMode(ViewModeIcons)
	if settings.GetViewMode() != ViewModeIcons {
		t.Errorf("Expected view mode %s, got %s", ViewModeIcons, settings.GetViewMode())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
}
