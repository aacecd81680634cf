package config

import (
	"fyne.io/fyne/v2"

	"github.com/filepane/filepane/internal/platform"
)

// ViewMode selects how the file pane renders entries.
type ViewMode string

const (
	ViewModeList  ViewMode = "list"
	ViewModeIcons ViewMode = "icons"
)

// Settings keys for Fyne preferences
const (
	KeyStartDirectory = "start_directory"
	KeyShowHidden     = "show_hidden_files"
	KeyConfirmDelete  = "confirm_delete"
	KeyViewMode       = "view_mode"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultShowHidden    = false
	DefaultConfirmDelete = true
	DefaultViewMode      = ViewModeList
	DefaultLanguage      = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStartDirectory returns the directory the explorer opens in
func (s *Settings) GetStartDirectory() string {
	dir := s.app.Preferences().String(KeyStartDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDir()
		if err != nil {
			defaultDir = "/"
		}
		s.SetStartDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetStartDirectory sets the directory the explorer opens in
func (s *Settings) SetStartDirectory(dir string) {
	s.app.Preferences().SetString(KeyStartDirectory, dir)
}

// GetShowHidden returns whether dotfiles are listed
func (s *Settings) GetShowHidden() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowHidden, DefaultShowHidden)
}

// SetShowHidden sets whether dotfiles are listed
func (s *Settings) SetShowHidden(show bool) {
	s.app.Preferences().SetBool(KeyShowHidden, show)
}

// GetConfirmDelete returns whether delete asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether delete asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetViewMode returns the configured file pane view mode
func (s *Settings) GetViewMode() ViewMode {
	mode := s.app.Preferences().String(KeyViewMode)
	if mode == "" {
		s.SetViewMode(DefaultViewMode)
		return DefaultViewMode
	}
	return ViewMode(mode)
}

// SetViewMode sets the file pane view mode
func (s *Settings) SetViewMode(mode ViewMode) {
	s.app.Preferences().SetString(KeyViewMode, string(mode))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
