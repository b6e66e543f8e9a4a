package risk

import "maatricare/internal/model"

const (
	DefaultWatchThreshold  = 3
	DefaultUrgentThreshold = 7
)

// absoluteTriggers force an emergency assessment on their own, regardless of
// anything else in the report. Checked before aggregate scoring.
var absoluteTriggers = map[string]bool{
	"severe_bleeding":             true,
	"convulsions":                 true,
	"loss_of_consciousness":       true,
	"severe_breathing_difficulty": true,
	"severe_abdominal_pain":       true,
}

// baseWeights are the per-symptom scores summed during aggregate scoring.
var baseWeights = map[string]int{
	"headache":               2,
	"blurred_vision":         3,
	"swelling":               2,
	"fever":                  3,
	"spotting":               3,
	"abdominal_pain":         3,
	"reduced_fetal_movement": 4,
	"contractions":           3,
	"vomiting":               2,
	"dizziness":              2,
	"back_pain":              1,
	"fatigue":                1,
	"breast_pain":            1,
	"low_mood":               2,
}

// stageModifiers add to a symptom's weight when it is more concerning at a
// particular stage.
var stageModifiers = map[model.Stage]map[string]int{
	model.StageFirstTrimester: {
		"spotting":       1,
		"abdominal_pain": 1,
	},
	model.StageThirdTrimester: {
		"reduced_fetal_movement": 2,
		"contractions":           1,
		"headache":               1,
	},
	model.StagePostpartumEarly: {
		"fever":    1,
		"low_mood": 2,
	},
}

// historyModifiers add to a symptom's weight when the profile carries a
// related condition.
var historyModifiers = map[model.MedicalHistoryFlag]map[string]int{
	model.HistoryHypertension: {
		"headache":       1,
		"blurred_vision": 2,
		"swelling":       1,
	},
	model.HistoryDiabetes: {
		"dizziness": 1,
		"fatigue":   1,
	},
	model.HistoryPriorMiscarriage: {
		"spotting":       2,
		"abdominal_pain": 1,
	},
	model.HistoryAnemia: {
		"fatigue":   1,
		"dizziness": 1,
	},
}
