package ui

import "time"

// Icons (emojis/symbols)
const (
	IconStarFilled = "★"
	IconStarEmpty  = "☆"
	IconCopy       = "📋"
	IconCheck      = "✓"
	IconBack       = "←"
	IconForward    = "→"
	IconSun        = "☀"
	IconMoon       = "☾"
	IconLanguage   = "🌐"
)

// Window sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 640
)

// Layout sizing
const (
	StarButtonSize    float32 = 48
	LogoSize          float32 = 40
	LanguageSelectMin float32 = 150

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 52
)

// Swipe detection
const (
	SwipeThreshold float32 = 80
)

// Copy confirmation
const (
	CopiedIndicatorDuration = 2 * time.Second
)
