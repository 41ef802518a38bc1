package model

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewFeedback(t *testing.T) {
	fb, err := NewFeedback(2, "food was cold", LanguageEnglish)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := uuid.Parse(fb.ID); err != nil {
		t.Errorf("Expected UUID id, got '%s'", fb.ID)
	}

	if fb.Rating != 2 {
		t.Errorf("Expected rating 2, got %d", fb.Rating)
	}

	if fb.Comment != "food was cold" {
		t.Errorf("Expected comment to be kept as typed, got '%s'", fb.Comment)
	}

	if fb.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestNewFeedback_Invalid(t *testing.T) {
	tests := []struct {
		rating  Rating
		comment string
		lang    Language
	}{
		{0, "slow service", LanguageEnglish},
		{6, "slow service", LanguageEnglish},
		{-1, "slow service", LanguageEnglish},
		{3, "", LanguageEnglish},
		{3, "   \n\t", LanguageEnglish},
		{3, "slow service", Language("de")},
	}

	for _, test := range tests {
		if _, err := NewFeedback(test.rating, test.comment, test.lang); err == nil {
			t.Errorf("NewFeedback(%d, %q, %q) expected error, got nil", test.rating, test.comment, test.lang)
		}
	}
}

func TestFeedback_ValidateBlankComment(t *testing.T) {
	_, err := NewFeedback(1, "  ", LanguageFrench)
	if !errors.Is(err, ErrBlankComment) {
		t.Errorf("Expected ErrBlankComment, got %v", err)
	}
}

func TestFeedback_RatingValue(t *testing.T) {
	fb := &Feedback{Rating: 3}
	if fb.RatingValue() != "3" {
		t.Errorf("RatingValue() = %s, expected 3", fb.RatingValue())
	}
}

func TestIsComplaintBlank(t *testing.T) {
	tests := []struct {
		comment  string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\n\t ", true},
		{"x", false},
		{"  the soup  ", false},
	}

	for _, test := range tests {
		if IsComplaintBlank(test.comment) != test.expected {
			t.Errorf("IsComplaintBlank(%q) = %v, expected %v", test.comment, !test.expected, test.expected)
		}
	}
}
