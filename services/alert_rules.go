package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Designdill/nutri-manager-pro-81-sub001/models"
)

// Thresholds driving the analyzer rules. Named so the boundary values are
// testable instead of buried in the rule bodies.
const (
	// InactivityDays is the age at which a patient's last consultation
	// makes them inactive; InactivityHighDays escalates the severity.
	InactivityDays     = 60
	InactivityHighDays = 90

	// FollowUpMinDays opens the follow-up window, which closes where the
	// inactivity rule takes over. The two rules never overlap.
	FollowUpMinDays = 30

	// WeightChangePct is the minimum percent swing between the two most
	// recent weigh-ins worth flagging; WeightChangeHighPct escalates it.
	WeightChangePct     = 3.0
	WeightChangeHighPct = 5.0

	// DedupWindowDays is how long an undismissed alert suppresses
	// re-creation of the same (patient, type) alert.
	DedupWindowDays = 7

	// missedAppointmentGrace is how far past its slot an unresolved
	// appointment must be before it counts as missed.
	missedAppointmentGrace = 24 * time.Hour
)

// Adherence free text containing any of these reads as a negative signal.
// Plans are recorded in Portuguese or English depending on the practice.
var lowAdherenceSignals = []string{"baixa", "ruim", "poor", "low"}

// AlertCandidate is a computed alert before duplicate filtering and
// persistence.
type AlertCandidate struct {
	PatientID uint
	Type      string
	Severity  string
	Title     string
	Message   string
	Metadata  map[string]any
}

// AlertKey identifies an alert for duplicate suppression.
type AlertKey struct {
	PatientID uint
	Type      string
}

// AnalyzePatients runs the consultation-history rules for every patient of
// one nutritionist. history maps patient id to that patient's consultations
// sorted by date descending; patients absent from the map have none. Rules
// are independent: one patient can collect several alerts in a run.
func AnalyzePatients(patients []models.Patient, history map[uint][]models.Consultation, now time.Time) []AlertCandidate {
	var out []AlertCandidate
	for _, p := range patients {
		hist := history[p.ID]
		if c := checkInactivity(p, hist, now); c != nil {
			out = append(out, *c)
		}
		if c := checkWeightTrend(p, hist); c != nil {
			out = append(out, *c)
		}
		if c := checkAdherence(p, hist); c != nil {
			out = append(out, *c)
		}
		if c := checkFollowUpDue(p, hist, now); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// checkInactivity fires when a patient has never been seen or their last
// consultation is at least InactivityDays old.
func checkInactivity(p models.Patient, hist []models.Consultation, now time.Time) *AlertCandidate {
	if len(hist) == 0 {
		return &AlertCandidate{
			PatientID: p.ID,
			Type:      models.AlertInactivePatient,
			Severity:  models.SeverityMedium,
			Title:     "Inactive patient",
			Message:   fmt.Sprintf("%s has never had a consultation", p.Name),
			Metadata: map[string]any{
				"days_inactive":     nil,
				"last_consultation": nil,
			},
		}
	}

	days := daysBetween(hist[0].Date, now)
	if days < InactivityDays {
		return nil
	}
	severity := models.SeverityMedium
	if days > InactivityHighDays {
		severity = models.SeverityHigh
	}
	return &AlertCandidate{
		PatientID: p.ID,
		Type:      models.AlertInactivePatient,
		Severity:  severity,
		Title:     "Inactive patient",
		Message:   fmt.Sprintf("%d days since %s's last consultation", days, p.Name),
		Metadata: map[string]any{
			"days_inactive":     days,
			"last_consultation": hist[0].Date.Format("2006-01-02"),
		},
	}
}

// checkWeightTrend compares the two most recent weigh-ins. Swings under
// WeightChangePct are healthy fluctuation and never flagged.
func checkWeightTrend(p models.Patient, hist []models.Consultation) *AlertCandidate {
	if len(hist) < 2 {
		return nil
	}
	recent, previous := hist[0], hist[1]
	if previous.Weight <= 0 {
		return nil
	}

	change := recent.Weight - previous.Weight
	pct := change / previous.Weight * 100
	if math.Abs(pct) < WeightChangePct {
		return nil
	}

	alertType := models.AlertWeightGain
	title := "Significant weight gain"
	if change < 0 {
		alertType = models.AlertWeightLoss
		title = "Significant weight loss"
	}
	severity := models.SeverityMedium
	if math.Abs(pct) >= WeightChangeHighPct {
		severity = models.SeverityHigh
	}
	return &AlertCandidate{
		PatientID: p.ID,
		Type:      alertType,
		Severity:  severity,
		Title:     title,
		Message: fmt.Sprintf("%s's weight changed %.1f kg (%.1f%%) between the last two consultations",
			p.Name, change, pct),
		Metadata: map[string]any{
			"weight_change":   round2(change),
			"percent_change":  round2(pct),
			"previous_weight": previous.Weight,
			"current_weight":  recent.Weight,
		},
	}
}

// checkAdherence is binary: any negative-signal word in the most recent
// consultation's adherence note fires at high severity.
func checkAdherence(p models.Patient, hist []models.Consultation) *AlertCandidate {
	if len(hist) == 0 || hist[0].MealPlanAdherence == "" {
		return nil
	}
	note := strings.ToLower(hist[0].MealPlanAdherence)
	for _, signal := range lowAdherenceSignals {
		if strings.Contains(note, signal) {
			return &AlertCandidate{
				PatientID: p.ID,
				Type:      models.AlertLowAdherence,
				Severity:  models.SeverityHigh,
				Title:     "Low meal plan adherence",
				Message:   fmt.Sprintf("%s reported low adherence to the meal plan: %q", p.Name, hist[0].MealPlanAdherence),
				Metadata: map[string]any{
					"adherence": hist[0].MealPlanAdherence,
				},
			}
		}
	}
	return nil
}

// checkFollowUpDue covers the window right before the inactivity rule takes
// over: last consultation at least FollowUpMinDays but under InactivityDays
// old.
func checkFollowUpDue(p models.Patient, hist []models.Consultation, now time.Time) *AlertCandidate {
	if len(hist) == 0 {
		return nil
	}
	days := daysBetween(hist[0].Date, now)
	if days < FollowUpMinDays || days >= InactivityDays {
		return nil
	}
	return &AlertCandidate{
		PatientID: p.ID,
		Type:      models.AlertNoRecentConsultation,
		Severity:  models.SeverityLow,
		Title:     "Follow-up due",
		Message:   fmt.Sprintf("%s's last consultation was %d days ago, consider scheduling a check-in", p.Name, days),
		Metadata: map[string]any{
			"days_since":        days,
			"last_consultation": hist[0].Date.Format("2006-01-02"),
		},
	}
}

// AnalyzeMissedAppointments flags appointments still marked scheduled or
// confirmed whose slot passed more than a day ago and was never resolved.
func AnalyzeMissedAppointments(appointments []models.Appointment, now time.Time) []AlertCandidate {
	var out []AlertCandidate
	for _, a := range appointments {
		if a.Status != models.AppointmentScheduled && a.Status != models.AppointmentConfirmed {
			continue
		}
		if now.Sub(a.ScheduledAt) < missedAppointmentGrace {
			continue
		}
		out = append(out, AlertCandidate{
			PatientID: a.PatientID,
			Type:      models.AlertMissedAppointment,
			Severity:  models.SeverityMedium,
			Title:     "Missed appointment",
			Message:   fmt.Sprintf("Appointment on %s was never confirmed as attended", a.ScheduledAt.Format("2006-01-02 15:04")),
			Metadata: map[string]any{
				"appointment_id": a.ID,
				"scheduled_at":   a.ScheduledAt.Format(time.RFC3339),
			},
		})
	}
	return out
}

// FilterRecentDuplicates drops candidates whose (patient, type) key matches
// an existing undismissed alert from the dedup window, and collapses
// duplicate keys within the batch itself.
func FilterRecentDuplicates(candidates []AlertCandidate, existing []AlertKey) []AlertCandidate {
	seen := make(map[AlertKey]struct{}, len(existing))
	for _, k := range existing {
		seen[k] = struct{}{}
	}

	out := make([]AlertCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := AlertKey{PatientID: c.PatientID, Type: c.Type}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
