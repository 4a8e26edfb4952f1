package models

import (
	"time"

	"gorm.io/gorm"
)

// Consultation records one visit. The alert analyzer only ever reads these;
// a consultation is never mutated after being analyzed.
type Consultation struct {
	gorm.Model
	PatientID         uint      `gorm:"index;not null"`
	UserID            uint      `gorm:"index;not null"`
	Date              time.Time `gorm:"index;not null"`
	Weight            float64
	BodyFatPct        float64
	MealPlanAdherence string `gorm:"size:100"` // free text, e.g. "boa", "baixa"
	Notes             string `gorm:"type:text"`
}
