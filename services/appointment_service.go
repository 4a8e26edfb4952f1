package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type AppointmentInput struct {
	PatientID   uint      `json:"patient_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	DurationMin int       `json:"duration_min"`
	Notes       string    `json:"notes"`
}

var validStatuses = map[string]bool{
	models.AppointmentScheduled: true,
	models.AppointmentConfirmed: true,
	models.AppointmentCompleted: true,
	models.AppointmentCancelled: true,
	models.AppointmentNoShow:    true,
}

func (s *AppointmentService) Create(ctx context.Context, userID uint, in AppointmentInput) (*models.Appointment, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.PatientID, userID).
		First(&patient).Error; err != nil {
		return nil, err
	}

	a := &models.Appointment{
		UserID:      userID,
		PatientID:   in.PatientID,
		ScheduledAt: in.ScheduledAt,
		DurationMin: in.DurationMin,
		Status:      models.AppointmentScheduled,
		Notes:       in.Notes,
	}
	if a.DurationMin <= 0 {
		a.DurationMin = 60
	}
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) List(ctx context.Context, userID uint, from, to *time.Time) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("scheduled_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("scheduled_at < ?", *to)
	}
	var appointments []models.Appointment
	err := q.Order("scheduled_at ASC").Find(&appointments).Error
	return appointments, err
}

func (s *AppointmentService) SetStatus(ctx context.Context, userID, appointmentID uint, status string) error {
	if !validStatuses[status] {
		return errors.New("invalid appointment status")
	}
	res := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, userID, appointmentID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
