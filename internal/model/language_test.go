package model

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected Language
		ok       bool
	}{
		{"en", LanguageEnglish, true},
		{"fr", LanguageFrench, true},
		{"ar", LanguageArabic, true},
		{"de", DefaultLanguage, false},
		{"", DefaultLanguage, false},
		{"EN", DefaultLanguage, false},
		{"system", DefaultLanguage, false},
	}

	for _, test := range tests {
		lang, ok := ParseLanguage(test.code)
		if lang != test.expected || ok != test.ok {
			t.Errorf("ParseLanguage(%q) = (%s, %v), expected (%s, %v)", test.code, lang, ok, test.expected, test.ok)
		}
	}
}

func TestLanguage_Direction(t *testing.T) {
	tests := []struct {
		lang     Language
		expected Direction
	}{
		{LanguageEnglish, DirectionLTR},
		{LanguageFrench, DirectionLTR},
		{LanguageArabic, DirectionRTL},
	}

	for _, test := range tests {
		if test.lang.Direction() != test.expected {
			t.Errorf("Language(%s).Direction() = %s, expected %s", test.lang, test.lang.Direction(), test.expected)
		}
	}
}

func TestLanguage_DisplayName(t *testing.T) {
	if LanguageFrench.DisplayName() != "🇫🇷 Français" {
		t.Errorf("Unexpected display name: %s", LanguageFrench.DisplayName())
	}
	for _, lang := range Languages() {
		if !lang.IsValid() {
			t.Errorf("Language %s from Languages() should be valid", lang)
		}
		if lang.Label() == "" || lang.Flag() == "" {
			t.Errorf("Language %s should have label and flag", lang)
		}
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		rating   Rating
		valid    bool
		positive bool
		index    int
	}{
		{0, false, false, -1},
		{1, true, false, 0},
		{2, true, false, 1},
		{3, true, false, 2},
		{4, true, true, 3},
		{5, true, true, 4},
		{6, false, true, -1},
	}

	for _, test := range tests {
		if test.rating.IsValid() != test.valid {
			t.Errorf("Rating(%d).IsValid() = %v, expected %v", test.rating, !test.valid, test.valid)
		}
		if test.rating.IsPositive() != test.positive {
			t.Errorf("Rating(%d).IsPositive() = %v, expected %v", test.rating, !test.positive, test.positive)
		}
		if test.rating.LabelIndex() != test.index {
			t.Errorf("Rating(%d).LabelIndex() = %d, expected %d", test.rating, test.rating.LabelIndex(), test.index)
		}
	}

	if RatingUnset.IsSet() {
		t.Error("RatingUnset should not be set")
	}
}
