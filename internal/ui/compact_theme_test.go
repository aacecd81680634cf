package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactThemeReducesSizes(t *testing.T) {
	ct := NewCompactTheme()

	if got := ct.Size(theme.SizeNamePadding); got >= theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Errorf("Expected compact padding below default, got %v", got)
	}
	if got := ct.Size(theme.SizeNameText); got >= theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Errorf("Expected compact text size below default, got %v", got)
	}
}

func TestCompactThemeDelegatesUnmappedColors(t *testing.T) {
	ct := NewCompactTheme()

	got := ct.Color(theme.ColorNameSuccess, theme.VariantLight)
	want := theme.DefaultTheme().Color(theme.ColorNameSuccess, theme.VariantLight)
	if got != want {
		t.Errorf("Expected success color to delegate to the default theme, got %v", got)
	}
}
