package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

func testPatient(id uint, name string) models.Patient {
	return models.Patient{
		Model:  gorm.Model{ID: id},
		UserID: 1,
		Name:   name,
		Status: "active",
	}
}

func consultation(patientID uint, daysAgo int, weight float64, adherence string, now time.Time) models.Consultation {
	return models.Consultation{
		PatientID:         patientID,
		Date:              now.AddDate(0, 0, -daysAgo),
		Weight:            weight,
		MealPlanAdherence: adherence,
	}
}

func alertsOfType(cands []AlertCandidate, alertType string) []AlertCandidate {
	var out []AlertCandidate
	for _, c := range cands {
		if c.Type == alertType {
			out = append(out, c)
		}
	}
	return out
}

func TestAnalyzePatients_NeverConsulted(t *testing.T) {
	now := time.Now()
	p := testPatient(1, "Ana")

	cands := AnalyzePatients([]models.Patient{p}, nil, now)

	inactive := alertsOfType(cands, models.AlertInactivePatient)
	if len(inactive) != 1 {
		t.Fatalf("expected 1 inactivity alert, got %d (%+v)", len(inactive), cands)
	}
	if inactive[0].Severity != models.SeverityMedium {
		t.Errorf("severity = %q, want medium", inactive[0].Severity)
	}
	if inactive[0].Metadata["days_inactive"] != nil {
		t.Errorf("days_inactive should be nil for never-consulted, got %v", inactive[0].Metadata["days_inactive"])
	}
}

func TestAnalyzePatients_InactivitySeverity(t *testing.T) {
	now := time.Now()
	tests := []struct {
		daysAgo      int
		wantAlert    bool
		wantSeverity string
	}{
		{59, false, ""},
		{60, true, models.SeverityMedium},
		{90, true, models.SeverityMedium},
		{91, true, models.SeverityHigh},
		{120, true, models.SeverityHigh},
	}
	for _, tt := range tests {
		p := testPatient(1, "Bruno")
		hist := map[uint][]models.Consultation{
			1: {consultation(1, tt.daysAgo, 80, "", now)},
		}

		cands := AnalyzePatients([]models.Patient{p}, hist, now)
		inactive := alertsOfType(cands, models.AlertInactivePatient)

		if !tt.wantAlert {
			if len(inactive) != 0 {
				t.Errorf("daysAgo=%d: unexpected inactivity alert", tt.daysAgo)
			}
			continue
		}
		if len(inactive) != 1 {
			t.Errorf("daysAgo=%d: expected 1 inactivity alert, got %d", tt.daysAgo, len(inactive))
			continue
		}
		if inactive[0].Severity != tt.wantSeverity {
			t.Errorf("daysAgo=%d: severity = %q, want %q", tt.daysAgo, inactive[0].Severity, tt.wantSeverity)
		}
		if inactive[0].Metadata["days_inactive"] != tt.daysAgo {
			t.Errorf("daysAgo=%d: metadata days_inactive = %v", tt.daysAgo, inactive[0].Metadata["days_inactive"])
		}
	}
}

func TestAnalyzePatients_WeightTrendThresholds(t *testing.T) {
	now := time.Now()
	tests := []struct {
		previous     float64
		recent       float64
		wantType     string // "" means no alert
		wantSeverity string
	}{
		{100, 102.9, "", ""}, // 2.9%: healthy fluctuation
		{100, 103, models.AlertWeightGain, models.SeverityMedium},
		{100, 105, models.AlertWeightGain, models.SeverityHigh},
		{100, 97, models.AlertWeightLoss, models.SeverityMedium},
		{100, 94.9, models.AlertWeightLoss, models.SeverityHigh},
	}
	for _, tt := range tests {
		p := testPatient(1, "Carla")
		hist := map[uint][]models.Consultation{
			1: {
				consultation(1, 5, tt.recent, "", now),
				consultation(1, 35, tt.previous, "", now),
			},
		}

		cands := AnalyzePatients([]models.Patient{p}, hist, now)
		gains := alertsOfType(cands, models.AlertWeightGain)
		losses := alertsOfType(cands, models.AlertWeightLoss)

		if tt.wantType == "" {
			if len(gains)+len(losses) != 0 {
				t.Errorf("%v->%v: unexpected weight alert", tt.previous, tt.recent)
			}
			continue
		}
		got := alertsOfType(cands, tt.wantType)
		if len(got) != 1 {
			t.Errorf("%v->%v: expected one %s alert, got %d", tt.previous, tt.recent, tt.wantType, len(got))
			continue
		}
		if got[0].Severity != tt.wantSeverity {
			t.Errorf("%v->%v: severity = %q, want %q", tt.previous, tt.recent, got[0].Severity, tt.wantSeverity)
		}
	}
}

// Worked example: 84 kg then 80 kg ten days later is a 4 kg drop, about
// -4.76%, flagged as medium weight loss.
func TestAnalyzePatients_WeightLossExample(t *testing.T) {
	now := time.Now()
	p := testPatient(7, "Diego")
	hist := map[uint][]models.Consultation{
		7: {
			consultation(7, 10, 80, "", now),
			consultation(7, 40, 84, "", now),
		},
	}

	cands := AnalyzePatients([]models.Patient{p}, hist, now)
	losses := alertsOfType(cands, models.AlertWeightLoss)
	if len(losses) != 1 {
		t.Fatalf("expected 1 weight loss alert, got %d (%+v)", len(losses), cands)
	}
	if losses[0].Severity != models.SeverityMedium {
		t.Errorf("severity = %q, want medium", losses[0].Severity)
	}
	if losses[0].Metadata["weight_change"] != -4.0 {
		t.Errorf("weight_change = %v, want -4", losses[0].Metadata["weight_change"])
	}
	pct, _ := losses[0].Metadata["percent_change"].(float64)
	if pct > -4.7 || pct < -4.8 {
		t.Errorf("percent_change = %v, want about -4.76", pct)
	}
}

func TestAnalyzePatients_SingleConsultationNoWeightAlert(t *testing.T) {
	now := time.Now()
	p := testPatient(1, "Elisa")
	hist := map[uint][]models.Consultation{
		1: {consultation(1, 5, 80, "", now)},
	}

	cands := AnalyzePatients([]models.Patient{p}, hist, now)
	if n := len(alertsOfType(cands, models.AlertWeightGain)) + len(alertsOfType(cands, models.AlertWeightLoss)); n != 0 {
		t.Errorf("expected no weight alerts with one consultation, got %d", n)
	}
}

func TestAnalyzePatients_LowAdherence(t *testing.T) {
	now := time.Now()
	tests := []struct {
		note string
		want bool
	}{
		{"Adesão baixa ao plano", true},
		{"RUIM", true},
		{"poor compliance", true},
		{"low energy, skipped meals", true},
		{"Excelente", false},
		{"", false},
	}
	for _, tt := range tests {
		p := testPatient(1, "Fábio")
		hist := map[uint][]models.Consultation{
			1: {consultation(1, 5, 80, tt.note, now)},
		}

		cands := AnalyzePatients([]models.Patient{p}, hist, now)
		got := alertsOfType(cands, models.AlertLowAdherence)
		if tt.want && (len(got) != 1 || got[0].Severity != models.SeverityHigh) {
			t.Errorf("note %q: expected one high-severity adherence alert, got %+v", tt.note, got)
		}
		if !tt.want && len(got) != 0 {
			t.Errorf("note %q: unexpected adherence alert", tt.note)
		}
	}
}

// The follow-up and inactivity windows must never overlap.
func TestAnalyzePatients_FollowUpInactivityExclusion(t *testing.T) {
	now := time.Now()
	tests := []struct {
		daysAgo      int
		wantFollowUp bool
		wantInactive bool
	}{
		{29, false, false},
		{30, true, false},
		{45, true, false},
		{59, true, false},
		{60, false, true},
		{61, false, true},
	}
	for _, tt := range tests {
		p := testPatient(1, "Gilda")
		hist := map[uint][]models.Consultation{
			1: {consultation(1, tt.daysAgo, 80, "", now)},
		}

		cands := AnalyzePatients([]models.Patient{p}, hist, now)
		followUps := alertsOfType(cands, models.AlertNoRecentConsultation)
		inactives := alertsOfType(cands, models.AlertInactivePatient)

		if (len(followUps) == 1) != tt.wantFollowUp {
			t.Errorf("daysAgo=%d: follow-up alerts = %d, want present=%v", tt.daysAgo, len(followUps), tt.wantFollowUp)
		}
		if (len(inactives) == 1) != tt.wantInactive {
			t.Errorf("daysAgo=%d: inactivity alerts = %d, want present=%v", tt.daysAgo, len(inactives), tt.wantInactive)
		}
		if len(followUps) == 1 && followUps[0].Severity != models.SeverityLow {
			t.Errorf("daysAgo=%d: follow-up severity = %q, want low", tt.daysAgo, followUps[0].Severity)
		}
	}
}

func TestAnalyzePatients_MultipleRulesSamePatient(t *testing.T) {
	now := time.Now()
	p := testPatient(3, "Helena")
	hist := map[uint][]models.Consultation{
		3: {
			consultation(3, 5, 88, "adesão ruim", now),
			consultation(3, 35, 80, "", now),
		},
	}

	cands := AnalyzePatients([]models.Patient{p}, hist, now)
	if len(alertsOfType(cands, models.AlertWeightGain)) != 1 {
		t.Error("expected weight gain alert")
	}
	if len(alertsOfType(cands, models.AlertLowAdherence)) != 1 {
		t.Error("expected low adherence alert")
	}
}

func TestAnalyzeMissedAppointments(t *testing.T) {
	now := time.Now()
	appointments := []models.Appointment{
		{Model: gorm.Model{ID: 1}, PatientID: 1, ScheduledAt: now.AddDate(0, 0, -3), Status: models.AppointmentScheduled},
		{Model: gorm.Model{ID: 2}, PatientID: 2, ScheduledAt: now.AddDate(0, 0, -3), Status: models.AppointmentCompleted},
		{Model: gorm.Model{ID: 3}, PatientID: 3, ScheduledAt: now.Add(-2 * time.Hour), Status: models.AppointmentScheduled}, // within grace
		{Model: gorm.Model{ID: 4}, PatientID: 4, ScheduledAt: now.AddDate(0, 0, -1), Status: models.AppointmentCancelled},
	}

	cands := AnalyzeMissedAppointments(appointments, now)
	if len(cands) != 1 {
		t.Fatalf("expected 1 missed appointment alert, got %d", len(cands))
	}
	if cands[0].PatientID != 1 || cands[0].Type != models.AlertMissedAppointment {
		t.Errorf("unexpected candidate: %+v", cands[0])
	}
	if cands[0].Severity != models.SeverityMedium {
		t.Errorf("severity = %q, want medium", cands[0].Severity)
	}
}

// A second run inside the dedup window produces nothing new.
func TestFilterRecentDuplicates_SecondRunIsEmpty(t *testing.T) {
	now := time.Now()
	p := testPatient(1, "Iris")
	hist := map[uint][]models.Consultation{
		1: {
			consultation(1, 5, 90, "baixa", now),
			consultation(1, 35, 80, "", now),
		},
	}

	first := FilterRecentDuplicates(AnalyzePatients([]models.Patient{p}, hist, now), nil)
	if len(first) == 0 {
		t.Fatal("first run should produce alerts")
	}

	existing := make([]AlertKey, 0, len(first))
	for _, c := range first {
		existing = append(existing, AlertKey{PatientID: c.PatientID, Type: c.Type})
	}

	second := FilterRecentDuplicates(AnalyzePatients([]models.Patient{p}, hist, now), existing)
	if len(second) != 0 {
		t.Errorf("second run produced %d alerts, want 0: %+v", len(second), second)
	}
}

func TestFilterRecentDuplicates_CollapsesWithinBatch(t *testing.T) {
	cands := []AlertCandidate{
		{PatientID: 1, Type: models.AlertMissedAppointment},
		{PatientID: 1, Type: models.AlertMissedAppointment}, // two missed slots, one alert
		{PatientID: 2, Type: models.AlertMissedAppointment},
	}
	out := FilterRecentDuplicates(cands, nil)
	if len(out) != 2 {
		t.Errorf("expected 2 after collapsing, got %d", len(out))
	}
}
