package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Consultation{},
		&models.Appointment{},
		&models.Questionnaire{},
		&models.MealPlan{},
		&models.PatientAlert{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
		&models.UserDevice{},
	)
	if err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
}
