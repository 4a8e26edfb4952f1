package models

import "time"

// Alert types emitted by the analyzer.
const (
	AlertInactivePatient      = "inactive_patient"
	AlertWeightGain           = "weight_gain"
	AlertWeightLoss           = "weight_loss"
	AlertLowAdherence         = "low_adherence"
	AlertMissedAppointment    = "missed_appointment"
	AlertNoRecentConsultation = "no_recent_consultation"
)

// Alert severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// PatientAlert rows are append-only: the analyzer creates them, the UI
// flips IsRead/IsDismissed, nothing ever deletes them.
type PatientAlert struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"` // nutritionist
	PatientID   uint      `gorm:"index;not null"`
	AlertType   string    `gorm:"size:30;index;not null"`
	Severity    string    `gorm:"size:10;not null"`
	Title       string    `gorm:"size:200"`
	Message     string    `gorm:"type:text"`
	Metadata    string    `gorm:"type:jsonb"`
	IsRead      bool      `gorm:"default:false"`
	IsDismissed bool      `gorm:"default:false;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}
