package model

import "time"

// MedicalHistoryFlag marks a pre-existing condition relevant to risk scoring.
type MedicalHistoryFlag string

const (
	HistoryHypertension      MedicalHistoryFlag = "hypertension"
	HistoryDiabetes          MedicalHistoryFlag = "diabetes"
	HistoryPreviousCesarean  MedicalHistoryFlag = "previous_cesarean"
	HistoryAnemia            MedicalHistoryFlag = "anemia"
	HistoryThyroidDisorder   MedicalHistoryFlag = "thyroid_disorder"
	HistoryMultiplePregnancy MedicalHistoryFlag = "multiple_pregnancy"
	HistoryPriorMiscarriage  MedicalHistoryFlag = "prior_miscarriage"
)

// Profile holds what is known about a user across conversations.
type Profile struct {
	UserID         string
	Name           string
	Age            int                  // 0 when unknown
	LMPDate        *time.Time           // first day of last menstrual period, nil when unknown
	DeliveryDate   *time.Time           // actual delivery date, nil if not yet delivered
	MedicalHistory []MedicalHistoryFlag // deduplicated, order not significant
	Language       string               // preferred reply language, e.g. "en", "bn"
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PregnancyDurationDays is the standard gestation length used to derive
// the estimated due date from the last menstrual period.
const PregnancyDurationDays = 280

// DueDate returns the estimated due date (LMP + 280 days), or zero time
// when the LMP is unknown.
func (p *Profile) DueDate() time.Time {
	if p.LMPDate == nil {
		return time.Time{}
	}
	return p.LMPDate.AddDate(0, 0, PregnancyDurationDays)
}

// GestationalWeek returns the completed gestational week at the given time,
// and false when the LMP is unknown or the reference time precedes it.
func (p *Profile) GestationalWeek(at time.Time) (int, bool) {
	if p.LMPDate == nil || at.Before(*p.LMPDate) {
		return 0, false
	}
	return int(at.Sub(*p.LMPDate).Hours() / 24 / 7), true
}

// PostpartumWeek returns the completed week since delivery, and false when
// the delivery date is unknown or the reference time precedes it.
func (p *Profile) PostpartumWeek(at time.Time) (int, bool) {
	if p.DeliveryDate == nil || at.Before(*p.DeliveryDate) {
		return 0, false
	}
	return int(at.Sub(*p.DeliveryDate).Hours() / 24 / 7), true
}

// HasHistory reports whether the profile carries the given flag.
func (p *Profile) HasHistory(flag MedicalHistoryFlag) bool {
	for _, f := range p.MedicalHistory {
		if f == flag {
			return true
		}
	}
	return false
}
