package models

import "gorm.io/gorm"

// BadgeRecord captures one successfully composed badge so the operator
// page can show print history.
type BadgeRecord struct {
	gorm.Model
	JobID          string `gorm:"uniqueIndex;not null"`
	AttendeeName   string
	EmployeeNumber string
	BadgePath      string
}
