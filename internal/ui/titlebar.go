package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Title bar colors for the painted gradient background
var (
	TitleBarColorLeft  = color.RGBA{R: 38, G: 70, B: 110, A: 255}
	TitleBarColorRight = color.RGBA{R: 18, G: 32, B: 54, A: 255}
)

// TitleBar is the custom-painted title strip for the frameless window: a
// gradient background, the application title, and a close button.
type TitleBar struct {
	widget.BaseWidget

	title string

	titleLabel *widget.Label
	closeBtn   *widget.Button

	onClose func()
}

// NewTitleBar creates a title bar with the given title text. onClose is
// invoked when the close button is tapped.
func NewTitleBar(title string, onClose func()) *TitleBar {
	tb := &TitleBar{
		title:   title,
		onClose: onClose,
	}
	tb.ExtendBaseWidget(tb)
	tb.createUI()
	return tb
}

// SetTitle updates the displayed title text
func (tb *TitleBar) SetTitle(title string) {
	tb.title = title
	tb.titleLabel.SetText(title)
}

// createUI creates the UI components
func (tb *TitleBar) createUI() {
	tb.titleLabel = widget.NewLabel(tb.title)
	tb.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tb.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tb.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if tb.onClose != nil {
			tb.onClose()
		}
	})
	tb.closeBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the widget renderer
func (tb *TitleBar) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewHorizontalGradient(TitleBarColorLeft, TitleBarColorRight)

	return &titleBarRenderer{
		bar:        tb,
		background: background,
	}
}

// titleBarRenderer renders the title bar widget
type titleBarRenderer struct {
	bar        *TitleBar
	background *canvas.LinearGradient
}

// Layout arranges the components
func (r *titleBarRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	labelSize := r.bar.titleLabel.MinSize()
	r.bar.titleLabel.Resize(fyne.NewSize(size.Width-2*TitleBarButtonWidth, labelSize.Height))
	r.bar.titleLabel.Move(fyne.NewPos(TitleBarButtonWidth/2, (size.Height-labelSize.Height)/2))

	r.bar.closeBtn.Resize(fyne.NewSize(TitleBarButtonWidth, size.Height))
	r.bar.closeBtn.Move(fyne.NewPos(size.Width-TitleBarButtonWidth, 0))
}

// MinSize returns the minimum size
func (r *titleBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RowMinWidth, TitleBarHeight)
}

// Refresh refreshes the renderer
func (r *titleBarRenderer) Refresh() {
	r.background.Refresh()
	r.bar.titleLabel.Refresh()
	r.bar.closeBtn.Refresh()
}

// Objects returns the rendered objects
func (r *titleBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.bar.titleLabel, r.bar.closeBtn}
}

// Destroy cleans up the renderer
func (r *titleBarRenderer) Destroy() {}
