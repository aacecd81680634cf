package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/filepane/filepane/internal/config"
	"github.com/filepane/filepane/internal/explorer"
	"github.com/filepane/filepane/internal/fileops"
	"github.com/filepane/filepane/internal/logging"
)

func newTestUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")

	svc := explorer.NewService(fileops.NewOSFS(), app.Clipboard(), t.TempDir(), logging.NewNop())
	ui := NewRootUI(window, app, svc, logging.NewNop())

	t.Cleanup(func() {
		if ui.watcher != nil {
			ui.watcher.Stop()
		}
	})
	return ui
}

func TestRevealWithNoSelectionShowsStatus(t *testing.T) {
	ui := newTestUI(t)

	ui.onReveal()

	expected := ui.localization.GetText(KeyNothingSelected)
	if ui.statusLabel.Text != expected {
		t.Errorf("Expected status %q, got %q", expected, ui.statusLabel.Text)
	}
}

func TestApplySettingsReappliesViewMode(t *testing.T) {
	ui := newTestUI(t)

	if ui.viewMode != config.ViewModeList {
		t.Fatalf("Expected initial view mode %s, got %s", config.ViewModeList, ui.viewMode)
	}

	ui.settings.SetViewMode(config.ViewModeIcons)
	ui.applySettings()

	if ui.viewMode != config.ViewModeIcons {
		t.Errorf("Expected view mode %s after applying settings, got %s", config.ViewModeIcons, ui.viewMode)
	}
	if !ui.fileGrid.Visible() {
		t.Error("Expected icons view to be visible after applying settings")
	}
	if ui.fileList.Visible() {
		t.Error("Expected list view to be hidden after applying settings")
	}
}

func TestApplySettingsSwitchesLanguage(t *testing.T) {
	ui := newTestUI(t)

	ui.settings.SetLanguage("ru")
	ui.applySettings()

	if ui.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru after applying settings, got %s", ui.localization.GetCurrentLanguage())
	}
}

func TestEscapeClosesSession(t *testing.T) {
	ui := newTestUI(t)

	handler := ui.window.Canvas().OnTypedKey()
	if handler == nil {
		t.Fatal("Expected a typed key handler to be registered")
	}

	handler(&fyne.KeyEvent{Name: fyne.KeyEscape})

	if ui.watcher != nil {
		t.Error("Expected watcher to be stopped when the window closes")
	}
}
