package model

// Screen identifies which of the four mutually exclusive views is active
type Screen string

const (
	// ScreenRating shows the five star selectors
	ScreenRating Screen = "rating"

	// ScreenFeedback shows the complaint form for ratings 1-3
	ScreenFeedback Screen = "feedback"

	// ScreenReview asks for a public review for ratings 4-5
	ScreenReview Screen = "review"

	// ScreenThankYou is the terminal screen
	ScreenThankYou Screen = "thankyou"
)

// String returns the string representation of Screen
func (s Screen) String() string {
	return string(s)
}

// IsTerminal returns true for the thank-you screen
func (s Screen) IsTerminal() bool {
	return s == ScreenThankYou
}

// HasRating returns true if the screen can only be reached with a rating set
func (s Screen) HasRating() bool {
	return s == ScreenFeedback || s == ScreenReview || s == ScreenThankYou
}

// Screens returns all screens in flow order
func Screens() []Screen {
	return []Screen{ScreenRating, ScreenFeedback, ScreenReview, ScreenThankYou}
}
