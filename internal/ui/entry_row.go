package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/filepane/filepane/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// EntryRow represents one file or directory in the list pane: a selection
// check, a type icon, the name, and size/modified columns.
type EntryRow struct {
	widget.BaseWidget

	entry model.FileEntry

	// UI components
	check    *widget.Check
	icon     *widget.Icon
	nameLbl  *widget.Label
	sizeLbl  *widget.Label
	modLbl   *widget.Label
	selected bool

	// Callbacks
	onToggle   func(path string, selected bool)
	onActivate func(entry model.FileEntry)
}

// NewEntryRow creates a new file row widget
func NewEntryRow() *EntryRow {
	er := &EntryRow{}
	er.ExtendBaseWidget(er)
	er.createUI()
	return er
}

// SetCallbacks sets the selection and activation callbacks
func (er *EntryRow) SetCallbacks(
	onToggle func(path string, selected bool),
	onActivate func(entry model.FileEntry),
) {
	er.onToggle = onToggle
	er.onActivate = onActivate
}

// UpdateEntry updates the row with new entry data
func (er *EntryRow) UpdateEntry(entry model.FileEntry, selected bool) {
	er.entry = entry
	er.selected = selected
	er.updateFromEntry()
	er.Refresh()
}

// createUI creates the UI components
func (er *EntryRow) createUI() {
	er.check = widget.NewCheck("", func(checked bool) {
		er.selected = checked
		if er.onToggle != nil {
			er.onToggle(er.entry.Path, checked)
		}
	})

	er.icon = widget.NewIcon(theme.FileIcon())

	er.nameLbl = widget.NewLabel("")
	er.nameLbl.Alignment = fyne.TextAlignLeading
	er.nameLbl.Truncation = fyne.TextTruncateEllipsis

	er.sizeLbl = widget.NewLabel("")
	er.sizeLbl.Alignment = fyne.TextAlignTrailing

	er.modLbl = widget.NewLabel("")
	er.modLbl.Alignment = fyne.TextAlignTrailing
}

// updateFromEntry updates UI components based on entry state
func (er *EntryRow) updateFromEntry() {
	if er.entry.IsDir {
		er.icon.SetResource(theme.FolderIcon())
		er.sizeLbl.SetText(DashPlaceholder)
	} else {
		er.icon.SetResource(theme.FileIcon())
		er.sizeLbl.SetText(formatFileSize(er.entry.Size))
	}

	er.nameLbl.SetText(er.entry.Name)
	if er.entry.ModTime.IsZero() {
		er.modLbl.SetText("")
	} else {
		er.modLbl.SetText(er.entry.ModTime.Format(ModTimeFormat))
	}

	er.check.SetChecked(er.selected)
}

// Tapped toggles the row's selection state
func (er *EntryRow) Tapped(_ *fyne.PointEvent) {
	er.check.SetChecked(!er.selected)
}

// DoubleTapped activates the entry: directories navigate, files open
func (er *EntryRow) DoubleTapped(_ *fyne.PointEvent) {
	if er.onActivate != nil {
		er.onActivate(er.entry)
	}
}

// CreateRenderer creates the widget renderer
func (er *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	return &entryRowRenderer{row: er}
}

// entryRowRenderer renders the entry row widget
type entryRowRenderer struct {
	row    *EntryRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *entryRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *entryRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return fyne.NewSize(RowMinWidth, r.layout.MinSize().Height)
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *entryRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *entryRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *entryRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *entryRowRenderer) createLayout() {
	er := r.row

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	left := container.NewHBox(er.check, er.icon)
	right := container.NewHBox(
		fixedWidth(SizeLabelWidth, er.sizeLbl),
		fixedWidth(ModLabelWidth, er.modLbl),
	)

	r.layout = container.NewBorder(nil, nil, left, right, er.nameLbl)
}

// GridCell represents one file or directory in the icons view: a large type
// icon above the name. Selection is toggled by tapping.
type GridCell struct {
	widget.BaseWidget

	entry    model.FileEntry
	selected bool

	icon    *widget.Icon
	nameLbl *widget.Label

	onToggle   func(path string, selected bool)
	onActivate func(entry model.FileEntry)
}

// NewGridCell creates a new icons-view cell widget
func NewGridCell() *GridCell {
	gc := &GridCell{}
	gc.ExtendBaseWidget(gc)

	gc.icon = widget.NewIcon(theme.FileIcon())
	gc.nameLbl = widget.NewLabel("")
	gc.nameLbl.Alignment = fyne.TextAlignCenter
	gc.nameLbl.Truncation = fyne.TextTruncateEllipsis
	return gc
}

// SetCallbacks sets the selection and activation callbacks
func (gc *GridCell) SetCallbacks(
	onToggle func(path string, selected bool),
	onActivate func(entry model.FileEntry),
) {
	gc.onToggle = onToggle
	gc.onActivate = onActivate
}

// UpdateEntry updates the cell with new entry data
func (gc *GridCell) UpdateEntry(entry model.FileEntry, selected bool) {
	gc.entry = entry
	gc.selected = selected

	if entry.IsDir {
		gc.icon.SetResource(theme.FolderIcon())
	} else {
		gc.icon.SetResource(theme.FileIcon())
	}
	gc.nameLbl.SetText(entry.Name)
	if selected {
		gc.nameLbl.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		gc.nameLbl.TextStyle = fyne.TextStyle{}
	}
	gc.Refresh()
}

// Tapped toggles the cell's selection state
func (gc *GridCell) Tapped(_ *fyne.PointEvent) {
	gc.selected = !gc.selected
	if gc.onToggle != nil {
		gc.onToggle(gc.entry.Path, gc.selected)
	}
	gc.Refresh()
}

// DoubleTapped activates the entry: directories navigate, files open
func (gc *GridCell) DoubleTapped(_ *fyne.PointEvent) {
	if gc.onActivate != nil {
		gc.onActivate(gc.entry)
	}
}

// CreateRenderer creates the widget renderer
func (gc *GridCell) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, gc.nameLbl, nil, nil, gc.icon)
	return widget.NewSimpleRenderer(content)
}

// MinSize returns the minimum cell size for the grid layout
func (gc *GridCell) MinSize() fyne.Size {
	return fyne.NewSize(GridCellWidth, GridCellHeight)
}
