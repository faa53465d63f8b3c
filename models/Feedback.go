package models

import "gorm.io/gorm"

// Feedback is a visitor rating submitted at the end of a badge session.
type Feedback struct {
	gorm.Model
	Rating   int `gorm:"not null"`
	Comments string
}

// ValidRating reports whether the rating falls in the accepted 1-5 range.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
