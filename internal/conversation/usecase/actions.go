package usecase

import (
	"context"
	"fmt"

	"maatricare/internal/conversation"
	"maatricare/internal/model"
)

// AcknowledgeRisk clears a pinned emergency back to watch. This is the only
// path by which the session risk level ever decreases.
func (uc *implUseCase) AcknowledgeRisk(ctx context.Context, sc model.Scope) (conversation.StructuredReply, error) {
	unlock := uc.lockUser(sc.UserID)
	defer unlock()

	state := uc.loadState(ctx, sc.UserID)
	if state.ActiveRiskLevel != model.RiskEmergency {
		return conversation.StructuredReply{}, conversation.ErrNoActiveEmergency
	}

	state.ActiveRiskLevel = model.RiskWatch
	state.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, state); err != nil {
		return conversation.StructuredReply{}, fmt.Errorf("conversation.AcknowledgeRisk: %w", err)
	}

	uc.l.Infof(ctx, "conversation: emergency acknowledged for user %s, risk now watch", sc.UserID)

	return conversation.StructuredReply{
		Text:       riskAcknowledgedText,
		RiskBanner: uc.riskBanner(state.ActiveRiskLevel),
	}, nil
}

// ConfirmAppointment confirms the user's proposed request.
func (uc *implUseCase) ConfirmAppointment(ctx context.Context, sc model.Scope, requestID string) (conversation.StructuredReply, error) {
	unlock := uc.lockUser(sc.UserID)
	defer unlock()

	state := uc.loadState(ctx, sc.UserID)
	if state.Appointment == nil || state.Appointment.ID != requestID {
		return conversation.StructuredReply{}, conversation.ErrUnknownAppointment
	}

	confirmed, err := uc.scheduler.Confirm(ctx, sc, *state.Appointment)
	if err != nil {
		return conversation.StructuredReply{}, fmt.Errorf("conversation.ConfirmAppointment: %w", err)
	}

	state.Appointment = &confirmed
	state.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, state); err != nil {
		return conversation.StructuredReply{}, fmt.Errorf("conversation.ConfirmAppointment: %w", err)
	}

	return conversation.StructuredReply{
		Text: fmt.Sprintf("Your visit in week %d on %s is confirmed. See you then!",
			confirmed.VisitWeek, confirmed.ProposedTime.Format("Monday, 2 January 2006")),
		Appointment: &confirmed,
	}, nil
}

// RejectAppointment rejects the user's proposed request. No new proposal is
// made automatically; the next scheduling message starts fresh.
func (uc *implUseCase) RejectAppointment(ctx context.Context, sc model.Scope, requestID string) (conversation.StructuredReply, error) {
	unlock := uc.lockUser(sc.UserID)
	defer unlock()

	state := uc.loadState(ctx, sc.UserID)
	if state.Appointment == nil || state.Appointment.ID != requestID {
		return conversation.StructuredReply{}, conversation.ErrUnknownAppointment
	}

	rejected, err := uc.scheduler.Reject(ctx, sc, *state.Appointment)
	if err != nil {
		return conversation.StructuredReply{}, fmt.Errorf("conversation.RejectAppointment: %w", err)
	}

	state.Appointment = &rejected
	state.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, state); err != nil {
		return conversation.StructuredReply{}, fmt.Errorf("conversation.RejectAppointment: %w", err)
	}

	return conversation.StructuredReply{
		Text: "No problem, I've cancelled that proposal. Ask me again whenever you want to schedule a visit.",
	}, nil
}
