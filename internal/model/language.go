package model

// Language is a supported UI language code
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"

	// DefaultLanguage is used when no valid preference is stored
	DefaultLanguage = LanguageEnglish
)

// Direction is the text direction exposed to the renderer
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// ParseLanguage returns the language for a code and whether the code is supported
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LanguageEnglish, LanguageFrench, LanguageArabic:
		return Language(code), true
	default:
		return DefaultLanguage, false
	}
}

// Languages returns the supported languages in selector order
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageFrench, LanguageArabic}
}

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is one of the supported codes
func (l Language) IsValid() bool {
	_, ok := ParseLanguage(string(l))
	return ok
}

// Direction returns right-to-left for Arabic and left-to-right otherwise
func (l Language) Direction() Direction {
	if l == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// Label returns the language name in its own script
func (l Language) Label() string {
	switch l {
	case LanguageFrench:
		return "Français"
	case LanguageArabic:
		return "العربية"
	default:
		return "English"
	}
}

// Flag returns the flag emoji shown next to the label
func (l Language) Flag() string {
	switch l {
	case LanguageFrench:
		return "🇫🇷"
	case LanguageArabic:
		return "🇸🇦"
	default:
		return "🇺🇸"
	}
}

// DisplayName returns flag and label, e.g. "🇫🇷 Français"
func (l Language) DisplayName() string {
	return l.Flag() + " " + l.Label()
}
