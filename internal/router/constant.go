package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Confidence levels reported per match strength.
const (
	ConfidenceEmergency = 95
	ConfidenceKeyword   = 80
	ConfidenceFallback  = 50
)

// emergencyKeywords short-circuit all other routing. Matching is substring
// on the lowercased message.
var emergencyKeywords = []string{
	"emergency",
	"bleeding heavily",
	"heavy bleeding",
	"severe bleeding",
	"severe pain",
	"can't breathe",
	"cannot breathe",
	"chest pain",
	"water broke",
	"seizure",
	"convulsion",
	"unconscious",
	"fainted",
	"baby not moving",
	"999",
}

var schedulingKeywords = []string{
	"appointment",
	"schedule",
	"next visit",
	"checkup",
	"check-up",
	"anc visit",
	"book a visit",
}

var nutritionKeywords = []string{
	"nutrition",
	"food",
	"eat",
	"diet",
	"meal",
	"vitamin",
	"iron",
	"folic",
}

var profileUpdateKeywords = []string{
	"my last period",
	"my lmp",
	"last menstrual",
	"i am pregnant",
	"i'm pregnant",
	"weeks pregnant",
	"gave birth",
	"i delivered",
	"my due date",
	"update my profile",
	"my age is",
}

// symptomKeywords map message phrases to normalized symptom codes. Phrases
// are checked longest-first so "severe headache" is not shadowed by
// "headache".
var symptomKeywords = []struct {
	Phrase string
	Code   string
}{
	{"bleeding heavily", "severe_bleeding"},
	{"heavy bleeding", "severe_bleeding"},
	{"severe bleeding", "severe_bleeding"},
	{"baby not moving", "reduced_fetal_movement"},
	{"baby isn't moving", "reduced_fetal_movement"},
	{"less movement", "reduced_fetal_movement"},
	{"can't breathe", "severe_breathing_difficulty"},
	{"cannot breathe", "severe_breathing_difficulty"},
	{"severe abdominal pain", "severe_abdominal_pain"},
	{"severe stomach pain", "severe_abdominal_pain"},
	{"severe pain", "severe_abdominal_pain"},
	{"convulsion", "convulsions"},
	{"seizure", "convulsions"},
	{"unconscious", "loss_of_consciousness"},
	{"fainted", "loss_of_consciousness"},
	{"blurred vision", "blurred_vision"},
	{"blurry vision", "blurred_vision"},
	{"back pain", "back_pain"},
	{"stomach pain", "abdominal_pain"},
	{"abdominal pain", "abdominal_pain"},
	{"cramping", "abdominal_pain"},
	{"spotting", "spotting"},
	{"bleeding", "spotting"},
	{"headache", "headache"},
	{"swelling", "swelling"},
	{"swollen", "swelling"},
	{"fever", "fever"},
	{"contraction", "contractions"},
	{"vomit", "vomiting"},
	{"nausea", "vomiting"},
	{"dizzy", "dizziness"},
	{"dizziness", "dizziness"},
	{"exhausted", "fatigue"},
	{"fatigue", "fatigue"},
	{"so tired", "fatigue"},
	{"depressed", "low_mood"},
	{"anxious", "low_mood"},
	{"crying", "low_mood"},
	{"feeling sad", "low_mood"},
	{"feel sad", "low_mood"},
	{"hopeless", "low_mood"},
}
