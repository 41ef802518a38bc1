package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides touch sizing for phones and tablets
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

// StarButton creates a square star button sized for touch
func (m *MobileUI) StarButton(text string, onTapped func()) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.LowImportance

	size := StarButtonSize
	if m.IsMobileDevice() && size < MinTouchTargetSize {
		size = MinTouchTargetSize
	}
	return btn, container.New(layout.NewGridWrapLayout(fyne.NewSize(size, size)), btn)
}

// ActionButton creates a primary button; on mobile it is laid out at least
// MobileButtonHeight tall
func (m *MobileUI) ActionButton(text string, onTapped func()) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance
	if !m.IsMobileDevice() {
		return btn, btn
	}
	return btn, container.NewStack(minHeight(MobileButtonHeight), btn)
}

// minHeight is an invisible spacer that forces a minimum height in a stack
func minHeight(h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(0, h))
	return r
}

// Spacing returns the vertical gap between screen sections
func (m *MobileUI) Spacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8
}

// Spacer returns a fixed height gap
func (m *MobileUI) Spacer() fyne.CanvasObject {
	return minHeight(m.Spacing())
}
