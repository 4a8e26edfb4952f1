package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

type QuestionnaireService struct {
	db *gorm.DB
}

func NewQuestionnaireService(db *gorm.DB) *QuestionnaireService {
	return &QuestionnaireService{db: db}
}

type QuestionnaireInput struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Questions string `json:"questions"` // JSON array of question objects
}

func (s *QuestionnaireService) Create(ctx context.Context, userID uint, in QuestionnaireInput) (*models.Questionnaire, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.PatientID, userID).
		First(&patient).Error; err != nil {
		return nil, err
	}

	q := &models.Questionnaire{
		UserID:    userID,
		PatientID: in.PatientID,
		Title:     in.Title,
		Questions: in.Questions,
		Status:    "pending",
	}
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionnaireService) ListByPatient(ctx context.Context, userID, patientID uint) ([]models.Questionnaire, error) {
	var qs []models.Questionnaire
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND user_id = ?", patientID, userID).
		Order("created_at DESC").
		Find(&qs).Error
	return qs, err
}

// SubmitAnswers stores a patient's responses and marks the questionnaire
// answered.
func (s *QuestionnaireService) SubmitAnswers(ctx context.Context, userID, questionnaireID uint, answers string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Questionnaire{}).
		Where("id = ? AND user_id = ?", questionnaireID, userID).
		Updates(map[string]any{"answers": answers, "status": "answered"})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
