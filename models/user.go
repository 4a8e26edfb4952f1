package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a nutritionist account. Patients belong to exactly one User.
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	CRN           string // professional registry number
	Phone         string
	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
