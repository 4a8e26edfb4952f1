package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

type PatientInput struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	BirthDate     string  `json:"birth_date"` // YYYY-MM-DD
	HeightCm      float64 `json:"height_cm"`
	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
	Goal          string  `json:"goal"`
	Notes         string  `json:"notes"`
}

func (s *PatientService) Create(ctx context.Context, userID uint, in PatientInput) (*models.Patient, error) {
	p := &models.Patient{
		UserID:        userID,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		HeightCm:      in.HeightCm,
		CurrentWeight: in.CurrentWeight,
		TargetWeight:  in.TargetWeight,
		Goal:          in.Goal,
		Status:        "active",
		Notes:         in.Notes,
	}
	if in.BirthDate != "" {
		if bd, err := time.Parse("2006-01-02", in.BirthDate); err == nil {
			p.BirthDate = &bd
		}
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PatientService) List(ctx context.Context, userID uint, status string) ([]models.Patient, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var patients []models.Patient
	err := q.Order("name ASC").Find(&patients).Error
	return patients, err
}

func (s *PatientService) Get(ctx context.Context, userID, patientID uint) (*models.Patient, error) {
	var p models.Patient
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", patientID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PatientService) Update(ctx context.Context, userID, patientID uint, in PatientInput) (*models.Patient, error) {
	p, err := s.Get(ctx, userID, patientID)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.HeightCm = in.HeightCm
	p.CurrentWeight = in.CurrentWeight
	p.TargetWeight = in.TargetWeight
	p.Goal = in.Goal
	p.Notes = in.Notes
	if in.BirthDate != "" {
		if bd, err := time.Parse("2006-01-02", in.BirthDate); err == nil {
			p.BirthDate = &bd
		}
	}

	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// SetStatus flips a patient between active and inactive. Patients are never
// hard-deleted; history stays queryable.
func (s *PatientService) SetStatus(ctx context.Context, userID, patientID uint, status string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ? AND user_id = ?", patientID, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
