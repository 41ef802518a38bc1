package model

// Rating is a star rating, 0 meaning not rated yet
type Rating int

const (
	RatingUnset Rating = 0
	RatingMin   Rating = 1
	RatingMax   Rating = 5

	// PositiveThreshold is the lowest rating routed to the review screen
	PositiveThreshold Rating = 4
)

// IsSet returns true once the user picked a star
func (r Rating) IsSet() bool {
	return r != RatingUnset
}

// IsValid returns true for ratings a user can select (1-5)
func (r Rating) IsValid() bool {
	return r >= RatingMin && r <= RatingMax
}

// IsPositive returns true for 4 and 5 stars
func (r Rating) IsPositive() bool {
	return r >= PositiveThreshold
}

// LabelIndex returns the index into the localized rating labels, or -1 if unset
func (r Rating) LabelIndex() int {
	if !r.IsValid() {
		return -1
	}
	return int(r) - 1
}
