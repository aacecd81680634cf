package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the explorer service and renders the title bar,
// navigation row, directory tree, file pane, and settings. All UI strings are
// localized via Localization.
