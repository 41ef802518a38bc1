package flow

import (
	"errors"
	"fmt"

	"github.com/ytget/feedback-widget/internal/model"
)

var (
	// ErrRatingOutOfRange is a caller error: ratings come from five fixed controls
	ErrRatingOutOfRange = errors.New("rating out of range")

	// ErrEmptyComment rejects a submit whose comment is blank after trimming
	ErrEmptyComment = errors.New("comment is empty")

	// ErrInvalidTransition is returned for events the current screen does not accept
	ErrInvalidTransition = errors.New("invalid transition")
)

// Event is one of Rate, Back, Submit, OpenReview or Reset
type Event interface {
	isEvent()
}

// Rate selects n stars
type Rate struct{ N int }

// Back returns from the feedback or review screen to the rating screen
type Back struct{}

// Submit sends the complaint form
type Submit struct{ Comment string }

// OpenReview follows the external review link
type OpenReview struct{}

// Reset starts over from any screen
type Reset struct{}

func (Rate) isEvent()       {}
func (Back) isEvent()       {}
func (Submit) isEvent()     {}
func (OpenReview) isEvent() {}
func (Reset) isEvent()      {}

// Effect is work the caller must perform after committing a transition
type Effect interface {
	isEffect()
}

// SubmitEffect asks for one delivery of the complaint
type SubmitEffect struct {
	Rating  model.Rating
	Comment string
}

// OpenReviewEffect asks for the review link to be opened
type OpenReviewEffect struct{}

func (SubmitEffect) isEffect()     {}
func (OpenReviewEffect) isEffect() {}

// Transition computes the next state for an event. On error the returned state
// is the unchanged input and the effect is nil.
func Transition(state State, event Event) (State, Effect, error) {
	if _, ok := event.(Reset); ok {
		return RatingState{}, nil, nil
	}

	switch s := state.(type) {
	case RatingState:
		if e, ok := event.(Rate); ok {
			r := model.Rating(e.N)
			if !r.IsValid() {
				return state, nil, fmt.Errorf("%w: %d", ErrRatingOutOfRange, e.N)
			}
			if r.IsPositive() {
				return ReviewState{rating: r}, nil, nil
			}
			return FeedbackState{rating: r}, nil, nil
		}

	case FeedbackState:
		switch e := event.(type) {
		case Back:
			return RatingState{}, nil, nil
		case Submit:
			if model.IsComplaintBlank(e.Comment) {
				return state, nil, ErrEmptyComment
			}
			return ThankYouState{rating: s.rating}, SubmitEffect{Rating: s.rating, Comment: e.Comment}, nil
		}

	case ReviewState:
		switch event.(type) {
		case Back:
			return RatingState{}, nil, nil
		case OpenReview:
			return state, OpenReviewEffect{}, nil
		}
	}

	return state, nil, fmt.Errorf("%w: %T on %s", ErrInvalidTransition, event, state.Screen())
}
