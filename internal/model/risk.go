package model

// RiskLevel is the ordered outcome of a risk assessment.
type RiskLevel string

const (
	RiskNone      RiskLevel = "none"
	RiskWatch     RiskLevel = "watch"
	RiskUrgent    RiskLevel = "urgent"
	RiskEmergency RiskLevel = "emergency"
)

var riskSeverity = map[RiskLevel]int{
	RiskNone:      0,
	RiskWatch:     1,
	RiskUrgent:    2,
	RiskEmergency: 3,
}

// Severity returns the numeric rank of the level. Unknown levels rank as none.
func (r RiskLevel) Severity() int {
	return riskSeverity[r]
}

// MaxRisk returns the more severe of two levels. Session risk only ever moves
// up through this function; it comes back down only via an explicit
// acknowledgment action.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// SymptomReport is the structured symptom input extracted from a user message.
type SymptomReport struct {
	Codes    []string // normalized symptom codes, e.g. "severe_bleeding"
	RawText  string   // original user wording, kept for the turn record
	Severity int      // optional 1-5 self rating, 0 when absent
}

// RiskAssessment is the output of the risk assessor.
type RiskAssessment struct {
	Level           RiskLevel
	Score           int      // aggregate weighted score, 0 for absolute triggers
	TriggeredBy     []string // symptom codes that contributed
	AbsoluteTrigger string   // non-empty when a single code forced emergency
}
