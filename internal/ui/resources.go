package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "feedback-widget.png"
)

// LoadLogoResource loads the logo from the working directory. The header
// omits the logo when it is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
