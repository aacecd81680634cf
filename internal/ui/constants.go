package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DashPlaceholder = "—"
	ModTimeFormat   = "2006-01-02 15:04"
)

// Window sizing
const (
	WindowDefaultWidth float32 = 900

	TreePaneWidth float32 = 220
)

// Title bar sizing
const (
	TitleBarHeight      float32 = 36
	TitleBarButtonWidth float32 = 40
)

// Layout sizing (file rows / lists)
const (
	RowMinWidth  float32 = 360
	RowMinHeight float32 = 32

	SizeLabelWidth float32 = 90
	ModLabelWidth  float32 = 130

	GridCellWidth  float32 = 96
	GridCellHeight float32 = 84
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)
