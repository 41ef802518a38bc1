package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrBlankComment is returned for comments that are empty after trimming
var ErrBlankComment = errors.New("comment is blank")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Feedback is a single complaint submitted from the feedback screen
type Feedback struct {
	ID        string    `validate:"required,uuid"`
	Rating    Rating    `validate:"min=1,max=5"`
	Comment   string    `validate:"required"`
	Language  Language  `validate:"omitempty,oneof=en fr ar"`
	CreatedAt time.Time `validate:"required"`
}

// NewFeedback creates a validated feedback record
func NewFeedback(rating Rating, comment string, lang Language) (*Feedback, error) {
	fb := &Feedback{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		Language:  lang,
		CreatedAt: time.Now(),
	}
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return fb, nil
}

// Validate checks the record; the comment must contain non-whitespace text
func (f *Feedback) Validate() error {
	if strings.TrimSpace(f.Comment) == "" {
		return ErrBlankComment
	}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid feedback: %s failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid feedback: %w", err)
	}
	return nil
}

// RatingValue returns the rating as the decimal string sent to the form
func (f *Feedback) RatingValue() string {
	return strconv.Itoa(int(f.Rating))
}

// IsComplaintBlank reports whether a raw comment would be rejected
func IsComplaintBlank(comment string) bool {
	return strings.TrimSpace(comment) == ""
}
