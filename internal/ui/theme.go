package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameStar is the fill colour of selected rating stars
const ColorNameStar fyne.ThemeColorName = "feedbackStar"

// FeedbackTheme is a compact theme pinned to the light or dark variant chosen
// by the user, independent of the OS setting
type FeedbackTheme struct {
	dark bool
}

// NewFeedbackTheme creates a theme for the given mode
func NewFeedbackTheme(dark bool) fyne.Theme {
	return &FeedbackTheme{dark: dark}
}

// IsDark reports the pinned variant
func (t *FeedbackTheme) IsDark() bool {
	return t.dark
}

func (t *FeedbackTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors; the variant argument is ignored
func (t *FeedbackTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.variant()

	switch name {
	case ColorNameStar:
		return color.RGBA{R: 250, G: 204, B: 21, A: 255} // Amber
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 37, G: 99, B: 235, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if t.dark {
			return color.RGBA{R: 17, G: 24, B: 39, A: 255} // Slate
		}
		return color.RGBA{R: 249, G: 250, B: 251, A: 255}
	case theme.ColorNameForeground:
		if t.dark {
			return color.RGBA{R: 243, G: 244, B: 246, A: 255}
		}
		return color.RGBA{R: 31, G: 41, B: 55, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *FeedbackTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FeedbackTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *FeedbackTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22 // Screen titles
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
