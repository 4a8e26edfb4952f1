package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

type Appointment struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	PatientID   uint      `gorm:"index;not null"`
	ScheduledAt time.Time `gorm:"index;not null"`
	DurationMin int       `gorm:"default:60"`
	Status      string    `gorm:"size:20;default:'scheduled'"`
	Notes       string    `gorm:"type:text"`
}
