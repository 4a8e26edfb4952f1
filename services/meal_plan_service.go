package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type MealPlanInput struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`

	Breakfast      string `json:"breakfast"`
	MorningSnack   string `json:"morning_snack"`
	Lunch          string `json:"lunch"`
	AfternoonSnack string `json:"afternoon_snack"`
	Dinner         string `json:"dinner"`
	EveningSnack   string `json:"evening_snack"`
}

func (s *MealPlanService) Create(ctx context.Context, userID uint, in MealPlanInput) (*models.MealPlan, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.PatientID, userID).
		First(&patient).Error; err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		PatientID:      in.PatientID,
		UserID:         userID,
		Title:          in.Title,
		StartDate:      parseDate(in.StartDate),
		EndDate:        parseDate(in.EndDate),
		Breakfast:      in.Breakfast,
		MorningSnack:   in.MorningSnack,
		Lunch:          in.Lunch,
		AfternoonSnack: in.AfternoonSnack,
		Dinner:         in.Dinner,
		EveningSnack:   in.EveningSnack,
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) Update(ctx context.Context, userID, planID uint, in MealPlanInput) (*models.MealPlan, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	plan.Title = in.Title
	plan.StartDate = parseDate(in.StartDate)
	plan.EndDate = parseDate(in.EndDate)
	plan.Breakfast = in.Breakfast
	plan.MorningSnack = in.MorningSnack
	plan.Lunch = in.Lunch
	plan.AfternoonSnack = in.AfternoonSnack
	plan.Dinner = in.Dinner
	plan.EveningSnack = in.EveningSnack

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) Get(ctx context.Context, userID, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) ListByPatient(ctx context.Context, userID, patientID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND user_id = ?", patientID, userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) Delete(ctx context.Context, userID, planID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
