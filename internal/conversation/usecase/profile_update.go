package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"maatricare/internal/conversation"
	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/internal/stage"
)

// datePattern matches the date fragments users embed in profile updates:
// absolute dates and relative "N units ago" phrases.
var datePattern = regexp.MustCompile(
	`(?i)(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4}|\d+\s+(?:day|days|week|weeks|month|months)\s+ago|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})`)

var deliveryPhrases = []string{"gave birth", "delivered", "delivery was", "baby was born"}

// profileUpdateFlow parses a date delta out of the message, applies it to the
// profile, and recomputes the stage before composing the confirmation. An
// unparseable date yields a correction request, not an error.
func (uc *implUseCase) profileUpdateFlow(ctx context.Context, sc model.Scope, state *model.ConversationState, turn *model.Turn, prof *model.Profile, text string) conversation.StructuredReply {
	turn.HandlerUsed = HandlerProfileUpdate

	delta, ok := uc.parseProfileDelta(text)
	if !ok {
		return conversation.StructuredReply{Text: correctionRequest}
	}

	updated, err := uc.profileUC.Update(ctx, sc, delta)
	if err != nil {
		if errors.Is(err, profile.ErrValidation) {
			return conversation.StructuredReply{Text: correctionRequest}
		}
		uc.l.Errorf(ctx, "conversation: profile update failed for user %s: %v", sc.UserID, err)
		return uc.generalFlow(ctx, state, turn, text, "profile update unavailable")
	}

	*prof = updated
	state.Stage = stage.FromProfile(prof, uc.now())

	var replyText string
	switch {
	case delta.DeliveryDate != nil:
		replyText = fmt.Sprintf("Congratulations! I've recorded your delivery date. You are now in the %s stage.",
			stageLabel(state.Stage))
	case delta.LMPDate != nil:
		if weeks, ok := updated.GestationalWeek(uc.now()); ok {
			replyText = fmt.Sprintf("Thanks, I've updated your dates. You are around week %d (%s), with an estimated due date of %s.",
				weeks, stageLabel(state.Stage), updated.DueDate().Format("2 January 2006"))
		} else {
			replyText = "Thanks, I've updated your dates."
		}
	default:
		replyText = "Thanks, I've updated your profile."
	}

	return conversation.StructuredReply{
		Text:         replyText,
		QuickActions: []model.QuickAction{model.ActionAskNutrition},
	}
}

// parseProfileDelta extracts an LMP or delivery date from the message.
func (uc *implUseCase) parseProfileDelta(text string) (profile.UpdateInput, bool) {
	lowered := strings.ToLower(text)
	fragment := datePattern.FindString(text)
	if fragment == "" {
		return profile.UpdateInput{}, false
	}

	parsed, err := uc.dates.ParseDate(fragment, uc.now())
	if err != nil {
		return profile.UpdateInput{}, false
	}

	if containsAny(lowered, deliveryPhrases) {
		return profile.UpdateInput{DeliveryDate: timePtr(parsed)}, true
	}
	return profile.UpdateInput{LMPDate: timePtr(parsed)}, true
}

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

func timePtr(t time.Time) *time.Time { return &t }
