package router

import (
	"context"
	"strings"

	"maatricare/internal/model"
)

// Classify determines the user intent from a message. The returned intent is
// always one of the six defined intents; anything unmatched resolves to the
// general-question intent rather than an error.
// Convention: Method accepts context.Context as first parameter
func (r *KeywordRouter) Classify(ctx context.Context, message string) Output {
	lowered := strings.ToLower(message)

	if phrase := matchAny(lowered, emergencyKeywords); phrase != "" {
		out := Output{
			Intent:     model.IntentEmergencyKeyword,
			Confidence: ConfidenceEmergency,
			Reasoning:  "matched emergency keyword: " + phrase,
		}
		r.logResult(ctx, out)
		return out
	}

	if phrase := matchAny(lowered, profileUpdateKeywords); phrase != "" {
		out := Output{
			Intent:     model.IntentProfileUpdate,
			Confidence: ConfidenceKeyword,
			Reasoning:  "matched profile keyword: " + phrase,
		}
		r.logResult(ctx, out)
		return out
	}

	if phrase := matchAny(lowered, schedulingKeywords); phrase != "" {
		out := Output{
			Intent:     model.IntentSchedulingRequest,
			Confidence: ConfidenceKeyword,
			Reasoning:  "matched scheduling keyword: " + phrase,
		}
		r.logResult(ctx, out)
		return out
	}

	if codes := extractSymptoms(lowered); len(codes) > 0 {
		out := Output{
			Intent:     model.IntentSymptomReport,
			Confidence: ConfidenceKeyword,
			Reasoning:  "matched symptom keywords: " + strings.Join(codes, ", "),
		}
		r.logResult(ctx, out)
		return out
	}

	if phrase := matchAny(lowered, nutritionKeywords); phrase != "" {
		out := Output{
			Intent:     model.IntentNutritionQuestion,
			Confidence: ConfidenceKeyword,
			Reasoning:  "matched nutrition keyword: " + phrase,
		}
		r.logResult(ctx, out)
		return out
	}

	out := Output{
		Intent:     model.IntentGeneralQuestion,
		Confidence: ConfidenceFallback,
		Reasoning:  "no keyword match, routing to general guidance",
	}
	r.logResult(ctx, out)
	return out
}

// ExtractSymptoms returns the normalized symptom codes found in a message,
// deduplicated in match order.
func (r *KeywordRouter) ExtractSymptoms(message string) model.SymptomReport {
	return model.SymptomReport{
		Codes:   extractSymptoms(strings.ToLower(message)),
		RawText: message,
	}
}

func (r *KeywordRouter) logResult(ctx context.Context, out Output) {
	r.l.Infof(ctx, "%s: classified as %s (confidence: %d%%)", LogPrefixClassify, out.Intent, out.Confidence)
}

func matchAny(lowered string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return ""
}

func extractSymptoms(lowered string) []string {
	seen := make(map[string]bool)
	var codes []string
	remaining := lowered
	for _, entry := range symptomKeywords {
		if strings.Contains(remaining, entry.Phrase) {
			// Consume the phrase so "severe bleeding" does not also
			// register as plain "bleeding".
			remaining = strings.ReplaceAll(remaining, entry.Phrase, " ")
			if !seen[entry.Code] {
				seen[entry.Code] = true
				codes = append(codes, entry.Code)
			}
		}
	}
	return codes
}
