package risk

import (
	"context"
	"sort"

	"maatricare/internal/model"
	pkgLog "maatricare/pkg/log"
)

// Assessor maps a symptom report to a risk level. Assess is deterministic:
// the same (report, profile, stage) inputs always yield the same assessment.
type Assessor struct {
	l   pkgLog.Logger
	cfg Config
}

// New creates a risk assessor.
func New(l pkgLog.Logger, cfg Config) *Assessor {
	cfg.Validate()
	return &Assessor{l: l, cfg: cfg}
}

// Assess evaluates a symptom report against the profile and stage.
// Absolute triggers are checked first; the remaining codes are scored by
// weight with stage and history modifiers, then thresholded. Unknown symptom
// codes are logged and excluded rather than failing the assessment, so the
// error return is reserved for rule-table problems.
func (a *Assessor) Assess(ctx context.Context, report model.SymptomReport, profile *model.Profile, st model.Stage) (model.RiskAssessment, error) {
	for _, code := range report.Codes {
		if absoluteTriggers[code] {
			return model.RiskAssessment{
				Level:           model.RiskEmergency,
				TriggeredBy:     []string{code},
				AbsoluteTrigger: code,
			}, nil
		}
	}

	score := 0
	var contributing []string
	for _, code := range report.Codes {
		weight, known := baseWeights[code]
		if override, ok := a.cfg.WeightOverrides[code]; ok {
			weight, known = override, true
		}
		if !known {
			a.l.Warnf(ctx, "risk: unknown symptom code %q excluded from scoring", code)
			continue
		}

		if mods, ok := stageModifiers[st]; ok {
			weight += mods[code]
		}
		if profile != nil {
			for _, flag := range profile.MedicalHistory {
				if mods, ok := historyModifiers[flag]; ok {
					weight += mods[code]
				}
			}
		}

		score += weight
		contributing = append(contributing, code)
	}
	sort.Strings(contributing)

	level := model.RiskNone
	switch {
	case score >= a.cfg.UrgentThreshold:
		level = model.RiskUrgent
	case score >= a.cfg.WatchThreshold:
		level = model.RiskWatch
	}

	return model.RiskAssessment{
		Level:       level,
		Score:       score,
		TriggeredBy: contributing,
	}, nil
}
