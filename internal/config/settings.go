package config

import (
	"github.com/ytget/feedback-widget/internal/model"
)

// Store is the key-value capability behind user preferences.
// fyne.Preferences satisfies it; an absent key reads as "".
type Store interface {
	String(key string) string
	SetString(key, value string)
}

// Settings keys for Fyne preferences
const (
	KeyLanguage = "feedback-language"
	KeyTheme    = "feedback-theme"
)

// Theme values stored under KeyTheme
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Default values
const (
	DefaultLanguage = model.DefaultLanguage
	DefaultDarkMode = false
)

// Settings manages persisted user preferences
type Settings struct {
	store Store
}

// NewSettings creates a new settings manager
func NewSettings(store Store) *Settings {
	return &Settings{store: store}
}

// Language returns the stored language, or the default when absent or unsupported
func (s *Settings) Language() model.Language {
	lang, ok := model.ParseLanguage(s.store.String(KeyLanguage))
	if !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage persists the language; unsupported codes are ignored
func (s *Settings) SetLanguage(lang model.Language) {
	if !lang.IsValid() {
		return
	}
	s.store.SetString(KeyLanguage, lang.String())
}

// DarkMode returns true only if "dark" is stored
func (s *Settings) DarkMode() bool {
	return s.store.String(KeyTheme) == ThemeDark
}

// SetDarkMode persists the theme choice
func (s *Settings) SetDarkMode(dark bool) {
	value := ThemeLight
	if dark {
		value = ThemeDark
	}
	s.store.SetString(KeyTheme, value)
}

// LanguageOptions returns available language options
func (s *Settings) LanguageOptions() []model.Language {
	return model.Languages()
}
