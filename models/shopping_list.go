package models

import (
	"time"

	"gorm.io/gorm"
)

type ShoppingList struct {
	gorm.Model
	UserID     uint `gorm:"index;not null"`
	PatientID  uint `gorm:"index;not null"`
	MealPlanID uint `gorm:"index;not null"`
	StartDate  time.Time
	EndDate    time.Time
	Days       int    `gorm:"default:7"`
	Status     string `gorm:"size:20;default:'active'"`
	Items      []ShoppingListItem
}

type ShoppingListItem struct {
	gorm.Model
	ShoppingListID uint    `gorm:"index;not null"`
	FoodID         *string `gorm:"size:100"`
	FoodName       string  `gorm:"not null"`
	Quantity       float64
	Unit           string `gorm:"size:20"`
	Category       string `gorm:"size:50"`
	RawQuantity    *float64 // cooked→raw equivalent, when a factor applies
}
