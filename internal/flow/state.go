// Package flow is the view state machine of the feedback widget. States and
// events are closed sets of variants, and Transition is the only function that
// moves between states. Machine binds it to preferences, the submission sink
// and the review link opener.
package flow

import (
	"github.com/ytget/feedback-widget/internal/model"
)

// State is one of RatingState, FeedbackState, ReviewState or ThankYouState.
// The rated variants keep their rating unexported, so only Transition can
// build them and a Feedback screen without a rating cannot exist.
type State interface {
	Screen() model.Screen
	Rating() model.Rating
	isState()
}

// RatingState is the initial screen, nothing rated yet
type RatingState struct{}

func (RatingState) Screen() model.Screen { return model.ScreenRating }
func (RatingState) Rating() model.Rating { return model.RatingUnset }
func (RatingState) isState()             {}

// FeedbackState collects a complaint for ratings 1-3
type FeedbackState struct{ rating model.Rating }

func (s FeedbackState) Screen() model.Screen { return model.ScreenFeedback }
func (s FeedbackState) Rating() model.Rating { return s.rating }
func (FeedbackState) isState()               {}

// ReviewState asks for a public review for ratings 4-5
type ReviewState struct{ rating model.Rating }

func (s ReviewState) Screen() model.Screen { return model.ScreenReview }
func (s ReviewState) Rating() model.Rating { return s.rating }
func (ReviewState) isState()               {}

// ThankYouState is terminal until reset
type ThankYouState struct{ rating model.Rating }

func (s ThankYouState) Screen() model.Screen { return model.ScreenThankYou }
func (s ThankYouState) Rating() model.Rating { return s.rating }
func (ThankYouState) isState()               {}

// IsPositive selects the positive thank-you copy
func (s ThankYouState) IsPositive() bool { return s.rating.IsPositive() }

// Initial returns the state a session starts in
func Initial() State {
	return RatingState{}
}
