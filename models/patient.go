package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"` // owning nutritionist
	Name          string `gorm:"not null"`
	Email         string
	Phone         string
	BirthDate     *time.Time
	HeightCm      float64
	CurrentWeight float64
	TargetWeight  float64
	Goal          string `gorm:"size:50"` // "weight_loss" | "weight_gain" | "maintenance"
	Status        string `gorm:"size:20;default:'active'"`
	Notes         string `gorm:"type:text"`
}
