package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppIcon returns the window icon
func AppIcon() fyne.Resource {
	return theme.ListIcon()
}
