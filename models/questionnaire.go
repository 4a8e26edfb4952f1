package models

import "gorm.io/gorm"

type Questionnaire struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	PatientID uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Questions string `gorm:"type:jsonb"`
	Answers   string `gorm:"type:jsonb"`
	Status    string `gorm:"size:20;default:'pending'"` // pending | answered
}
