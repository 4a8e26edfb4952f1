package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

type ConsultationService struct {
	db *gorm.DB
}

func NewConsultationService(db *gorm.DB) *ConsultationService {
	return &ConsultationService{db: db}
}

type ConsultationInput struct {
	PatientID         uint      `json:"patient_id" binding:"required"`
	Date              time.Time `json:"date" binding:"required"`
	Weight            float64   `json:"weight"`
	BodyFatPct        float64   `json:"body_fat_pct"`
	MealPlanAdherence string    `json:"meal_plan_adherence"`
	Notes             string    `json:"notes"`
}

// Create records a visit and keeps the patient's current weight in sync
// when the consultation is the newest one.
func (s *ConsultationService) Create(ctx context.Context, userID uint, in ConsultationInput) (*models.Consultation, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.PatientID, userID).
		First(&patient).Error; err != nil {
		return nil, err
	}

	c := &models.Consultation{
		PatientID:         in.PatientID,
		UserID:            userID,
		Date:              in.Date,
		Weight:            in.Weight,
		BodyFatPct:        in.BodyFatPct,
		MealPlanAdherence: in.MealPlanAdherence,
		Notes:             in.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if in.Weight > 0 && isNewest(tx, in.PatientID, in.Date) {
			return tx.Model(&patient).Update("current_weight", in.Weight).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func isNewest(tx *gorm.DB, patientID uint, date time.Time) bool {
	var count int64
	tx.Model(&models.Consultation{}).
		Where("patient_id = ? AND date > ?", patientID, date).
		Count(&count)
	return count == 0
}

// ListByPatient returns a patient's consultations newest first, the order
// the alert analyzer expects.
func (s *ConsultationService) ListByPatient(ctx context.Context, userID, patientID uint) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND user_id = ?", patientID, userID).
		Order("date DESC").
		Find(&consultations).Error
	return consultations, err
}

func (s *ConsultationService) Get(ctx context.Context, userID, consultationID uint) (*models.Consultation, error) {
	var c models.Consultation
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", consultationID, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
