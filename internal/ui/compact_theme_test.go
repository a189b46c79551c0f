package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactThemeSizes(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("padding = %v, want 3", got)
	}
	if got := th.Size(theme.SizeNameText); got != 13 {
		t.Errorf("text size = %v, want 13", got)
	}
	if got, want := th.Size(theme.SizeNameInlineIcon), theme.DefaultTheme().Size(theme.SizeNameInlineIcon); got != want {
		t.Errorf("inline icon size = %v, want default %v", got, want)
	}
}

func TestCompactThemeBackground(t *testing.T) {
	th := NewCompactTheme()

	light := th.Color(theme.ColorNameBackground, theme.VariantLight)
	dark := th.Color(theme.ColorNameBackground, theme.VariantDark)
	if light == dark {
		t.Errorf("light and dark backgrounds are both %v", light)
	}
	if got, want := th.Color(theme.ColorNameForeground, theme.VariantLight), theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight); got != want {
		t.Errorf("foreground = %v, want default %v", got, want)
	}
}
