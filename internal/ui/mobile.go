package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/former/internal/model"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	return IsLandscape(m.device.Orientation())
}

// RowHeight returns height raised to a comfortable touch target on mobile devices
func (m *MobileUI) RowHeight(height float32) float32 {
	if m.IsMobileDevice() && height < MobileRowHeight {
		return MobileRowHeight
	}
	return height
}

// KeyboardFrame estimates where the on-screen keyboard covers a canvas of size
func (m *MobileUI) KeyboardFrame(size fyne.Size) model.Rect {
	return EstimateKeyboardFrame(size, m.IsLandscape())
}

// IsLandscape returns true for the horizontal orientations
func IsLandscape(orientation fyne.DeviceOrientation) bool {
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// EstimateKeyboardFrame returns a keyboard frame anchored to the bottom of a canvas of size
func EstimateKeyboardFrame(size fyne.Size, landscape bool) model.Rect {
	ratio := PortraitKeyboardRatio
	if landscape {
		ratio = LandscapeKeyboardRatio
	}
	height := size.Height * ratio
	return model.NewRect(0, size.Height-height, size.Width, height)
}
