package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"maatricare/internal/conversation"
	"maatricare/internal/conversation/repository"
	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/internal/stage"
)

// HandleMessage processes one turn: classify the intent, dispatch to a flow,
// compose the reply, and persist the turn. Collaborator failures degrade the
// flow; a reply is always produced. The only error is a missing profile.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input conversation.HandleMessageInput) (conversation.StructuredReply, error) {
	unlock := uc.lockUser(sc.UserID)
	defer unlock()

	prof, err := uc.profileUC.Get(ctx, sc)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return conversation.StructuredReply{}, conversation.ErrCannotStartSession
		}
		return conversation.StructuredReply{}, fmt.Errorf("%w: %v", conversation.ErrCannotStartSession, err)
	}

	now := uc.now()
	state := uc.loadState(ctx, sc.UserID)
	state.Stage = stage.FromProfile(&prof, now)

	routed := uc.classify.Classify(ctx, input.Text)

	turn := model.Turn{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		UserText:  input.Text,
		Intent:    routed.Intent,
		CreatedAt: now,
	}

	var reply conversation.StructuredReply
	switch {
	case routed.Intent == model.IntentEmergencyKeyword:
		// Hard override: an emergency keyword wins regardless of state.
		reply = uc.emergencyFlow(ctx, &state, &turn)

	case state.ActiveRiskLevel == model.RiskEmergency:
		// Risk stays pinned until explicitly acknowledged; every turn
		// re-confirms care before normal routing resumes.
		reply = uc.emergencyFollowup(ctx, &state, &turn)

	case routed.Intent == model.IntentSymptomReport:
		reply = uc.riskTriageFlow(ctx, &state, &turn, &prof, input.Text)

	case routed.Intent == model.IntentSchedulingRequest:
		reply = uc.schedulingFlow(ctx, sc, &state, &turn, &prof, input.Text)

	case routed.Intent == model.IntentNutritionQuestion:
		reply = uc.nutritionFlow(ctx, &state, &turn, input.Text)

	case routed.Intent == model.IntentProfileUpdate:
		reply = uc.profileUpdateFlow(ctx, sc, &state, &turn, &prof, input.Text)

	default:
		reply = uc.generalFlow(ctx, &state, &turn, input.Text, "")
	}

	if banner := uc.riskBanner(state.ActiveRiskLevel); banner != nil {
		reply.RiskBanner = banner
	}

	turn.ReplyText = reply.Text
	turn.RiskLevelAtTurn = state.ActiveRiskLevel

	state.Turns = appendTurn(state.Turns, turn, uc.cfg.HistoryLimit)
	state.UpdatedAt = now
	if err := uc.repo.Save(ctx, state); err != nil {
		// The reply still goes out; losing one turn of context beats
		// dropping the response.
		uc.l.Errorf(ctx, "conversation: failed to persist state for user %s: %v", sc.UserID, err)
	}

	return reply, nil
}

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (model.ConversationState, error) {
	return uc.loadState(ctx, sc.UserID), nil
}

// loadState returns the stored state or a fresh one for first contact.
func (uc *implUseCase) loadState(ctx context.Context, userID string) model.ConversationState {
	state, err := uc.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "conversation: state load failed for user %s, starting fresh: %v", userID, err)
		}
		return model.ConversationState{
			UserID:          userID,
			ActiveRiskLevel: model.RiskNone,
		}
	}
	return state
}

func (uc *implUseCase) riskBanner(level model.RiskLevel) *conversation.RiskBanner {
	switch level {
	case model.RiskWatch:
		return &conversation.RiskBanner{Level: level, Message: "We're keeping an eye on your recent symptoms."}
	case model.RiskUrgent:
		return &conversation.RiskBanner{Level: level, Message: "Please contact your healthcare provider today."}
	case model.RiskEmergency:
		return &conversation.RiskBanner{Level: level, Message: "Emergency guidance active. Seek care immediately."}
	default:
		return nil
	}
}

func appendTurn(turns []model.Turn, turn model.Turn, limit int) []model.Turn {
	turns = append(turns, turn)
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns
}
