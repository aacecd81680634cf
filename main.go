package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/filepane/filepane/internal/clipboard"
	"github.com/filepane/filepane/internal/config"
	"github.com/filepane/filepane/internal/explorer"
	"github.com/filepane/filepane/internal/fileops"
	"github.com/filepane/filepane/internal/logging"
	"github.com/filepane/filepane/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.filepane.filepane"
	AppName = "File Pane"

	WindowWidth  = 900
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	logger := logging.New()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Frameless window when the desktop driver supports it; the custom
	// title bar stands in for the native decorations.
	var myWindow fyne.Window
	if drv, ok := myApp.Driver().(desktop.Driver); ok {
		myWindow = drv.CreateSplashWindow()
	} else {
		myWindow = myApp.NewWindow(AppName)
	}
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.SetMaster()

	// Initialize services
	settings := config.NewSettings(myApp)
	startDir := settings.GetStartDirectory()

	fs := fileops.NewOSFS()
	board := clipboard.Board(myApp.Clipboard())
	svc := explorer.NewService(fs, board, startDir, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, svc, logger)

	// Show and run
	myWindow.ShowAndRun()
}
