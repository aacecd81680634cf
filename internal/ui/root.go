package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/filepane/filepane/internal/config"
	"github.com/filepane/filepane/internal/explorer"
	"github.com/filepane/filepane/internal/model"
	"github.com/filepane/filepane/internal/platform"
	"github.com/filepane/filepane/internal/watch"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	svc          explorer.Explorer
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	// UI components
	titleBar     *TitleBar
	backBtn      *widget.Button
	upBtn        *widget.Button
	addressEntry *widget.Entry
	viewBtn      *widget.Button
	dirTree      *widget.Tree
	fileList     *widget.List
	fileGrid     *widget.GridWrap
	listPane     *fyne.Container
	statusLabel  *widget.Label

	// Session state
	entries  []model.FileEntry
	selected map[string]bool
	viewMode config.ViewMode
	treeRoot string

	watcher *watch.DirWatcher
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc explorer.Explorer, logger zerolog.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		settings:     settings,
		localization: localization,
		log:          logger,
		selected:     make(map[string]bool),
		viewMode:     settings.GetViewMode(),
		treeRoot:     treeRootFor(svc.CurrentPath()),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Watch the displayed directory so external changes refresh the list
	watcher, err := watch.NewDirWatcher(func() {
		fyne.Do(ui.refresh)
	}, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("directory watcher unavailable")
	} else {
		ui.watcher = watcher
	}

	ui.refresh()
	return ui
}

// treeRootFor resolves the filesystem root the directory tree hangs off
func treeRootFor(path string) string {
	root := path
	for {
		parent := filepath.Dir(root)
		if parent == root {
			return root
		}
		root = parent
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Custom-painted title strip for the frameless window
	ui.titleBar = NewTitleBar(ui.localization.GetText(KeyAppTitle), ui.onClose)

	// Navigation row: back, up, address bar
	ui.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), ui.onBack)
	ui.upBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), ui.onUp)

	ui.addressEntry = widget.NewEntry()
	ui.addressEntry.OnSubmitted = func(path string) {
		ui.onNavigate(path)
	}

	// Toolbar: clipboard actions, view toggle, settings
	copyBtn := widget.NewButtonWithIcon("", theme.ContentCopyIcon(), ui.onCopy)
	cutBtn := widget.NewButtonWithIcon("", theme.ContentCutIcon(), ui.onCut)
	pasteBtn := widget.NewButtonWithIcon("", theme.ContentPasteIcon(), ui.onPaste)
	deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), ui.onDelete)
	revealBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onReveal)

	ui.viewBtn = widget.NewButtonWithIcon("", theme.GridIcon(), ui.onToggleView)
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	navRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.backBtn, ui.upBtn),
		container.NewHBox(copyBtn, cutBtn, pasteBtn, deleteBtn, revealBtn, ui.viewBtn, settingsBtn),
		ui.addressEntry,
	)

	// Directory tree on the left, directories only
	ui.dirTree = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID { return ui.treeChildren(uid) },
		func(uid widget.TreeNodeID) bool { return true },
		func(branch bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel(""))
		},
		func(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			label := obj.(*fyne.Container).Objects[1].(*widget.Label)
			name := filepath.Base(uid)
			if uid == ui.treeRoot {
				name = uid
			}
			label.SetText(name)
		},
	)
	ui.dirTree.OnSelected = func(uid widget.TreeNodeID) {
		ui.onNavigate(uid)
	}

	// File pane: list and icons views share entries and selection
	ui.fileList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject {
			row := NewEntryRow()
			row.SetCallbacks(ui.onToggleSelect, ui.onActivate)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.entries) {
				return
			}
			if row, ok := obj.(*EntryRow); ok {
				row.SetCallbacks(ui.onToggleSelect, ui.onActivate)
				row.UpdateEntry(ui.entries[id], ui.selected[ui.entries[id].Path])
			}
		},
	)

	ui.fileGrid = widget.NewGridWrap(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject {
			cell := NewGridCell()
			cell.SetCallbacks(ui.onToggleSelect, ui.onActivate)
			return cell
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			if id >= len(ui.entries) {
				return
			}
			if cell, ok := obj.(*GridCell); ok {
				cell.SetCallbacks(ui.onToggleSelect, ui.onActivate)
				cell.UpdateEntry(ui.entries[id], ui.selected[ui.entries[id].Path])
			}
		},
	)

	ui.listPane = container.NewStack(ui.fileList, ui.fileGrid)
	ui.applyViewMode()

	split := container.NewHSplit(ui.dirTree, ui.listPane)
	split.Offset = float64(TreePaneWidth / WindowDefaultWidth)

	// Status line with the last operation summary
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(
		container.NewVBox(ui.titleBar, navRow), // top
		ui.statusLabel,                         // bottom
		nil,                                    // left
		nil,                                    // right
		split,                                  // center
	)

	ui.window.SetContent(content)
	ui.setupShortcuts()
}

// setupShortcuts registers clipboard and selection keyboard shortcuts
func (ui *RootUI) setupShortcuts() {
	canvas := ui.window.Canvas()

	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { ui.onCopy() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyX, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { ui.onCut() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyV, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { ui.onPaste() })

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete:
			ui.onDelete()
		case fyne.KeyEscape:
			ui.onClose()
		}
	})
}

// treeChildren lists the subdirectories shown under a tree node
func (ui *RootUI) treeChildren(uid widget.TreeNodeID) []widget.TreeNodeID {
	if uid == "" {
		return []widget.TreeNodeID{ui.treeRoot}
	}

	dirEntries, err := os.ReadDir(uid)
	if err != nil {
		return nil
	}

	showHidden := ui.settings.GetShowHidden()
	var children []widget.TreeNodeID
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		if !showHidden && len(de.Name()) > 0 && de.Name()[0] == '.' {
			continue
		}
		children = append(children, filepath.Join(uid, de.Name()))
	}
	return children
}

// refresh re-reads the current directory and updates every view
func (ui *RootUI) refresh() {
	entries, err := ui.svc.ListCurrent(ui.settings.GetShowHidden())
	if err != nil {
		ui.log.Warn().Err(err).Msg("listing current directory failed")
		ui.setStatus(ui.localization.GetText(KeyPathNotFound))
		entries = nil
	}
	ui.entries = entries

	// Drop selections that no longer point at a listed entry
	listed := make(map[string]bool, len(entries))
	for _, e := range entries {
		listed[e.Path] = true
	}
	for path := range ui.selected {
		if !listed[path] {
			delete(ui.selected, path)
		}
	}

	ui.addressEntry.SetText(ui.svc.CurrentPath())
	ui.refreshViews()

	if err == nil {
		ui.setStatus(fmt.Sprintf("%d %s", len(entries), ui.localization.GetText(KeyItems)))
	}

	if ui.watcher != nil {
		if werr := ui.watcher.Watch(ui.svc.CurrentPath()); werr != nil {
			ui.log.Warn().Err(werr).Str("dir", ui.svc.CurrentPath()).Msg("watching directory failed")
		}
	}
}

// refreshViews redraws the list and icons views
func (ui *RootUI) refreshViews() {
	ui.fileList.Refresh()
	ui.fileGrid.Refresh()
}

// setStatus updates the status line text
func (ui *RootUI) setStatus(msg string) {
	ui.statusLabel.SetText(msg)
}

// selectedPaths returns the selected entry paths in display order
func (ui *RootUI) selectedPaths() []string {
	var paths []string
	for _, e := range ui.entries {
		if ui.selected[e.Path] {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// onToggleSelect handles a row or cell selection toggle
func (ui *RootUI) onToggleSelect(path string, selected bool) {
	if selected {
		ui.selected[path] = true
	} else {
		delete(ui.selected, path)
	}
}

// onActivate handles a double click: directories navigate, files open with
// the default application
func (ui *RootUI) onActivate(entry model.FileEntry) {
	if entry.IsDir {
		ui.onNavigate(entry.Path)
		return
	}

	if err := platform.OpenFileWithDefaultApp(entry.Path); err != nil {
		ui.log.Warn().Err(err).Str("path", entry.Path).Msg("opening file failed")
		dialog.ShowInformation(
			ui.localization.GetText(KeyOpen),
			ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(),
			ui.window,
		)
	}
}

// onReveal shows the first selected entry in the system file manager
func (ui *RootUI) onReveal() {
	paths := ui.selectedPaths()
	if len(paths) == 0 {
		ui.setStatus(ui.localization.GetText(KeyNothingSelected))
		return
	}

	if err := platform.OpenFileInManager(paths[0]); err != nil {
		ui.log.Warn().Err(err).Str("path", paths[0]).Msg("reveal failed")
		dialog.ShowInformation(
			ui.localization.GetText(KeyReveal),
			err.Error(),
			ui.window,
		)
	}
}

// onNavigate switches the session to the given directory
func (ui *RootUI) onNavigate(path string) {
	if err := ui.svc.Navigate(path); err != nil {
		dialog.ShowInformation(
			ui.localization.GetText(KeyPathNotFound),
			path,
			ui.window,
		)
		// Restore the address bar to the directory actually shown
		ui.addressEntry.SetText(ui.svc.CurrentPath())
		return
	}

	ui.selected = make(map[string]bool)
	ui.refresh()
}

// onBack steps to the previously visited directory
func (ui *RootUI) onBack() {
	if _, ok := ui.svc.Back(); !ok {
		return
	}
	ui.selected = make(map[string]bool)
	ui.refresh()
}

// onUp navigates to the parent directory
func (ui *RootUI) onUp() {
	if _, ok := ui.svc.Up(); !ok {
		return
	}
	ui.selected = make(map[string]bool)
	ui.refresh()
}

// onCopy stages the selection for copying
func (ui *RootUI) onCopy() {
	ui.stageSelection(false, KeyCopied)
}

// onCut stages the selection for moving
func (ui *RootUI) onCut() {
	ui.stageSelection(true, KeyCutStaged)
}

func (ui *RootUI) stageSelection(cut bool, statusKey string) {
	paths := ui.selectedPaths()
	if len(paths) == 0 {
		ui.setStatus(ui.localization.GetText(KeyNothingSelected))
		return
	}

	n := ui.svc.Stage(paths, cut)
	if n > 0 {
		ui.setStatus(fmt.Sprintf("%s (%d)", ui.localization.GetText(statusKey), n))
	}
}

// onPaste reconciles staged sources into the current directory
func (ui *RootUI) onPaste() {
	outcome, err := ui.svc.Paste()
	switch {
	case errors.Is(err, explorer.ErrEmptyClipboard):
		dialog.ShowInformation(
			ui.localization.GetText(KeyPaste),
			ui.localization.GetText(KeyNothingToPaste),
			ui.window,
		)
		return
	case errors.Is(err, explorer.ErrInvalidTarget):
		dialog.ShowInformation(
			ui.localization.GetText(KeyPaste),
			ui.localization.GetText(KeyInvalidLocation),
			ui.window,
		)
		return
	case err != nil:
		ui.log.Error().Err(err).Msg("paste failed")
		ui.setStatus(err.Error())
		return
	}

	ui.setStatus(outcome.Summary())
	ui.refresh()
}

// onDelete removes the selection, optionally after confirmation
func (ui *RootUI) onDelete() {
	paths := ui.selectedPaths()
	if len(paths) == 0 {
		ui.setStatus(ui.localization.GetText(KeyNothingSelected))
		return
	}

	if !ui.settings.GetConfirmDelete() {
		ui.deleteNow(paths)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteConfirmTitle),
		ui.localization.GetText(KeyDeleteConfirmMsg),
		func(confirmed bool) {
			if confirmed {
				ui.deleteNow(paths)
			}
		},
		ui.window,
	)
}

func (ui *RootUI) deleteNow(paths []string) {
	outcome := ui.svc.Delete(paths)
	ui.setStatus(outcome.Summary())
	ui.selected = make(map[string]bool)
	ui.refresh()
}

// onToggleView flips between list and icons views and persists the choice
func (ui *RootUI) onToggleView() {
	if ui.viewMode == config.ViewModeList {
		ui.viewMode = config.ViewModeIcons
	} else {
		ui.viewMode = config.ViewModeList
	}
	ui.settings.SetViewMode(ui.viewMode)
	ui.applyViewMode()
	ui.refreshViews()
}

// applyViewMode shows the pane matching the configured view mode
func (ui *RootUI) applyViewMode() {
	if ui.viewMode == config.ViewModeIcons {
		ui.fileList.Hide()
		ui.fileGrid.Show()
		ui.viewBtn.SetIcon(theme.ListIcon())
	} else {
		ui.fileGrid.Hide()
		ui.fileList.Show()
		ui.viewBtn.SetIcon(theme.GridIcon())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings re-reads the persisted preferences after a settings save so
// language, view mode, and listing options take effect immediately
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.viewMode = ui.settings.GetViewMode()
	ui.applyViewMode()
	ui.refreshUITexts()
	ui.refresh()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	title := ui.localization.GetText(KeyAppTitle)
	ui.window.SetTitle(title)
	ui.titleBar.SetTitle(title)
	ui.refreshViews()
}

// onClose tears the session down and closes the window
func (ui *RootUI) onClose() {
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}
	ui.window.Close()
}
