package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconInvalid = "❌"
	IconValid   = "✔"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640

	HeaderHeight     float32 = 32
	FooterHeight     float32 = 28
	PickerCellHeight float32 = 56

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileRowHeight    float32 = 52
)

// Estimated share of the screen covered by an on-screen keyboard
const (
	PortraitKeyboardRatio  float32 = 0.40
	LandscapeKeyboardRatio float32 = 0.55
)

// Validation summary toast
const (
	ToastAutoHide = 3 * time.Second
)
