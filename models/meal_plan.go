package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPlan holds six meal slots. Each slot stores either a JSON-encoded
// array of food entries or legacy free text (one item per line); the
// parser in services handles both.
type MealPlan struct {
	gorm.Model
	PatientID uint `gorm:"index;not null"`
	UserID    uint `gorm:"index;not null"`
	Title     string
	StartDate *time.Time
	EndDate   *time.Time

	Breakfast      string `gorm:"type:text"`
	MorningSnack   string `gorm:"type:text"`
	Lunch          string `gorm:"type:text"`
	AfternoonSnack string `gorm:"type:text"`
	Dinner         string `gorm:"type:text"`
	EveningSnack   string `gorm:"type:text"`
}

// Slots returns the six meal slot contents in day order.
func (p *MealPlan) Slots() []string {
	return []string{
		p.Breakfast,
		p.MorningSnack,
		p.Lunch,
		p.AfternoonSnack,
		p.Dinner,
		p.EveningSnack,
	}
}
