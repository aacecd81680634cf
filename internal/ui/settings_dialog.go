package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/filepane/filepane/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	startDirEntry      *widget.Entry
	showHiddenCheck    *widget.Check
	confirmDeleteCheck *widget.Check
	viewModeSelect     *widget.Select
	languageSelect     *widget.Select
}

// ShowSettingsDialog builds and displays the settings dialog. onSaved runs
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Start directory selection
	sd.startDirEntry = widget.NewEntry()
	sd.startDirEntry.SetPlaceHolder(sd.localization.GetText(KeyStartDirectory))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	startDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.startDirEntry)

	// Listing behaviour
	sd.showHiddenCheck = widget.NewCheck(sd.localization.GetText(KeyShowHidden), nil)
	sd.confirmDeleteCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDelete), nil)

	// View mode selection
	sd.viewModeSelect = widget.NewSelect([]string{
		string(config.ViewModeList),
		string(config.ViewModeIcons),
	}, nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyStartDirectory)+":"),
		startDirRow,

		widget.NewSeparator(),
		sd.showHiddenCheck,
		sd.confirmDeleteCheck,

		widget.NewLabel(sd.localization.GetText(KeyViewMode)+":"),
		sd.viewModeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.startDirEntry.SetText(sd.settings.GetStartDirectory())
	sd.showHiddenCheck.SetChecked(sd.settings.GetShowHidden())
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.viewModeSelect.SetSelected(string(sd.settings.GetViewMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.startDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.startDirEntry.Text != "" {
		sd.settings.SetStartDirectory(sd.startDirEntry.Text)
	}

	sd.settings.SetShowHidden(sd.showHiddenCheck.Checked)
	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	if sd.viewModeSelect.Selected != "" {
		sd.settings.SetViewMode(config.ViewMode(sd.viewModeSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
