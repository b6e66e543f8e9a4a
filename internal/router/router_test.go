package router_test

import (
	"context"
	"reflect"
	"testing"

	"maatricare/internal/model"
	"maatricare/internal/router"
	pkgLog "maatricare/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(_ context.Context, _ ...interface{})            {}
func (mockLogger) Debugf(_ context.Context, _ string, _ ...interface{}) {}
func (mockLogger) Info(_ context.Context, _ ...interface{})             {}
func (mockLogger) Infof(_ context.Context, _ string, _ ...interface{})  {}
func (mockLogger) Warn(_ context.Context, _ ...interface{})             {}
func (mockLogger) Warnf(_ context.Context, _ string, _ ...interface{})  {}
func (mockLogger) Error(_ context.Context, _ ...interface{})            {}
func (mockLogger) Errorf(_ context.Context, _ string, _ ...interface{}) {}

var _ pkgLog.Logger = mockLogger{}

func TestClassify(t *testing.T) {
	r := router.New(mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    model.Intent
	}{
		{"Emergency Keyword", "this is an emergency, I am bleeding heavily", model.IntentEmergencyKeyword},
		{"Water Broke", "I think my water broke!", model.IntentEmergencyKeyword},
		{"Symptom Report", "I've had a headache and some swelling since yesterday", model.IntentSymptomReport},
		{"Mild Spotting", "I noticed light spotting this morning", model.IntentSymptomReport},
		{"Nutrition Question", "what food should I eat this month?", model.IntentNutritionQuestion},
		{"Scheduling Request", "can I book an appointment for next week?", model.IntentSchedulingRequest},
		{"Profile Update", "my last period was on January 15", model.IntentProfileUpdate},
		{"Delivered", "I gave birth two weeks ago", model.IntentProfileUpdate},
		{"General Question", "is it normal to feel the baby hiccup?", model.IntentGeneralQuestion},
		{"Ambiguous", "hello there", model.IntentGeneralQuestion},
		{"Empty Message", "", model.IntentGeneralQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(ctx, tt.message)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got.Intent, tt.want)
			}
		})
	}
}

// The router must always return one of the six defined intents.
func TestClassifyClosedSet(t *testing.T) {
	valid := map[model.Intent]bool{
		model.IntentSymptomReport:     true,
		model.IntentNutritionQuestion: true,
		model.IntentSchedulingRequest: true,
		model.IntentGeneralQuestion:   true,
		model.IntentEmergencyKeyword:  true,
		model.IntentProfileUpdate:     true,
	}

	r := router.New(mockLogger{})
	messages := []string{
		"random words without meaning",
		"!!!",
		"appointment food bleeding",
		"我不舒服",
	}
	for _, msg := range messages {
		got := r.Classify(context.Background(), msg)
		if !valid[got.Intent] {
			t.Errorf("Classify(%q) returned intent %q outside the defined set", msg, got.Intent)
		}
	}
}

func TestExtractSymptoms(t *testing.T) {
	r := router.New(mockLogger{})

	t.Run("Multiple Codes", func(t *testing.T) {
		report := r.ExtractSymptoms("I have a headache, blurred vision and my feet are swollen")
		want := []string{"blurred_vision", "headache", "swelling"}
		got := map[string]bool{}
		for _, c := range report.Codes {
			got[c] = true
		}
		for _, c := range want {
			if !got[c] {
				t.Errorf("missing code %q in %v", c, report.Codes)
			}
		}
	})

	t.Run("Severe Bleeding Not Double Counted", func(t *testing.T) {
		report := r.ExtractSymptoms("I am bleeding heavily")
		if !reflect.DeepEqual(report.Codes, []string{"severe_bleeding"}) {
			t.Errorf("expected only severe_bleeding, got %v", report.Codes)
		}
	})

	t.Run("No Symptoms", func(t *testing.T) {
		report := r.ExtractSymptoms("what should I eat today?")
		if len(report.Codes) != 0 {
			t.Errorf("expected no codes, got %v", report.Codes)
		}
	})

	t.Run("Raw Text Preserved", func(t *testing.T) {
		report := r.ExtractSymptoms("I have a Fever")
		if report.RawText != "I have a Fever" {
			t.Errorf("raw text not preserved: %q", report.RawText)
		}
	})
}
