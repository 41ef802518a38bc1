package submit

import (
	"time"

	"github.com/ytget/feedback-widget/internal/model"
)

// Submitter defines the interface for the submission sink.
type Submitter interface {
	// Submit starts delivery of one rating and comment and returns immediately
	Submit(rating model.Rating, comment string)
}

// Result describes the outcome of one delivery attempt
type Result struct {
	FeedbackID string
	Rating     model.Rating
	StatusCode int
	Err        error
	Duration   time.Duration
}

// OK returns true if the endpoint accepted the submission
func (r Result) OK() bool {
	return r.Err == nil
}
