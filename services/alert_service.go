package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
	"github.com/Designdill/nutri-manager-pro-81-sub001/utils"
)

// AlertService scans one nutritionist's patient base and persists the
// resulting alerts. Runs are stateless: everything is fetched fresh at the
// start and the service only ever appends PatientAlert rows.
type AlertService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub, push *PushService) *AlertService {
	return &AlertService{db: db, hub: hub, push: push}
}

type AlertRunSummary struct {
	PatientsAnalyzed int `json:"patients_analyzed"`
	AlertsCreated    int `json:"alerts_created"`
}

// Run analyzes every active patient of the nutritionist and inserts the
// alerts that survive duplicate suppression. Any fetch failure aborts the
// whole run; partial data must not produce partial alerting.
func (s *AlertService) Run(ctx context.Context, userID uint) (*AlertRunSummary, error) {
	now := time.Now()

	var patients []models.Patient
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Find(&patients).Error; err != nil {
		return nil, err
	}

	history := make(map[uint][]models.Consultation, len(patients))
	if len(patients) > 0 {
		ids := make([]uint, 0, len(patients))
		for _, p := range patients {
			ids = append(ids, p.ID)
		}
		var consultations []models.Consultation
		if err := s.db.WithContext(ctx).
			Where("patient_id IN ?", ids).
			Order("date DESC").
			Find(&consultations).Error; err != nil {
			return nil, err
		}
		for _, c := range consultations {
			history[c.PatientID] = append(history[c.PatientID], c)
		}
	}

	var pending []models.Appointment
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_at < ? AND status IN ?",
			userID, now, []string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Find(&pending).Error; err != nil {
		return nil, err
	}

	candidates := AnalyzePatients(patients, history, now)
	candidates = append(candidates, AnalyzeMissedAppointments(pending, now)...)

	existing, err := s.recentAlertKeys(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	candidates = FilterRecentDuplicates(candidates, existing)

	summary := &AlertRunSummary{PatientsAnalyzed: len(patients)}
	if len(candidates) == 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"patients": len(patients),
		}).Info("alert run: nothing new to flag")
		return summary, nil
	}

	rows := make([]models.PatientAlert, 0, len(candidates))
	for _, c := range candidates {
		meta, _ := json.Marshal(c.Metadata)
		rows = append(rows, models.PatientAlert{
			UserID:    userID,
			PatientID: c.PatientID,
			AlertType: c.Type,
			Severity:  c.Severity,
			Title:     c.Title,
			Message:   c.Message,
			Metadata:  string(meta),
		})
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	summary.AlertsCreated = len(rows)

	s.notify(userID, rows)

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"patients": len(patients),
		"created":  summary.AlertsCreated,
	}).Info("alert run finished")

	return summary, nil
}

// recentAlertKeys lists the (patient, type) pairs of undismissed alerts
// created inside the dedup window.
func (s *AlertService) recentAlertKeys(ctx context.Context, userID uint, now time.Time) ([]AlertKey, error) {
	since := now.AddDate(0, 0, -DedupWindowDays)
	var rows []models.PatientAlert
	if err := s.db.WithContext(ctx).
		Select("patient_id", "alert_type").
		Where("user_id = ? AND is_dismissed = ? AND created_at > ?", userID, false, since).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	keys := make([]AlertKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, AlertKey{PatientID: r.PatientID, Type: r.AlertType})
	}
	return keys, nil
}

// notify is best-effort delivery of freshly created alerts: websocket
// broadcast for open dashboards, push for high-severity ones, one email
// digest per run. Failures here never fail the run.
func (s *AlertService) notify(userID uint, rows []models.PatientAlert) {
	if s.hub != nil {
		for i := range rows {
			s.hub.BroadcastAlert(userID, map[string]any{
				"kind":  "alert.created",
				"alert": rows[i],
			})
		}
	}
	if s.push != nil {
		for i := range rows {
			if rows[i].Severity == models.SeverityHigh || rows[i].Severity == models.SeverityCritical {
				s.push.PushAlert(userID, &rows[i])
			}
		}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return
	}
	if err := utils.SendAlertDigestEmail(user.Email, len(rows)); err != nil {
		logrus.WithError(err).Warn("alert digest email failed")
	}
}

// List returns a nutritionist's alerts, newest first. unreadOnly narrows to
// undismissed, unread ones.
func (s *AlertService) List(ctx context.Context, userID uint, unreadOnly bool) ([]models.PatientAlert, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ? AND is_dismissed = ?", false, false)
	}
	var alerts []models.PatientAlert
	err := q.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (s *AlertService) MarkRead(ctx context.Context, userID, alertID uint) error {
	return s.setFlag(ctx, userID, alertID, "is_read")
}

func (s *AlertService) Dismiss(ctx context.Context, userID, alertID uint) error {
	return s.setFlag(ctx, userID, alertID, "is_dismissed")
}

func (s *AlertService) setFlag(ctx context.Context, userID, alertID uint, column string) error {
	res := s.db.WithContext(ctx).
		Model(&models.PatientAlert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
