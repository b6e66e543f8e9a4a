package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maatricare/internal/content"
	"maatricare/internal/conversation"
	"maatricare/internal/model"
	"maatricare/internal/scheduler"
	"maatricare/pkg/youtube"
)

// emergencyFlow pins the session risk to emergency and replies with
// deterministic guidance. The renderer is never involved: emergency replies
// cannot depend on a collaborator that may fail.
func (uc *implUseCase) emergencyFlow(ctx context.Context, state *model.ConversationState, turn *model.Turn) conversation.StructuredReply {
	turn.HandlerUsed = HandlerEmergency
	state.ActiveRiskLevel = model.RiskEmergency

	var b strings.Builder
	b.WriteString("🚨 This may be an emergency. Please act now:\n")
	for i, step := range content.EmergencySteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\nWarning signs at your stage: ")
	b.WriteString(strings.Join(content.WarningSignsFor(state.Stage), ", "))
	b.WriteString(".")

	uc.l.Warnf(ctx, "conversation: emergency flow entered for user %s", state.UserID)

	return conversation.StructuredReply{
		Text:              b.String(),
		QuickActions:      []model.QuickAction{model.ActionAcknowledgeRisk},
		EmergencyContacts: uc.contactCard(),
	}
}

// emergencyFollowup runs while the risk is pinned: every turn re-confirms
// whether care was sought before normal routing resumes.
func (uc *implUseCase) emergencyFollowup(_ context.Context, _ *model.ConversationState, turn *model.Turn) conversation.StructuredReply {
	turn.HandlerUsed = HandlerEmergencyFollowup

	return conversation.StructuredReply{
		Text:              emergencyFollowupText,
		QuickActions:      []model.QuickAction{model.ActionAcknowledgeRisk},
		EmergencyContacts: uc.contactCard(),
	}
}

// riskTriageFlow assesses reported symptoms. An emergency assessment routes
// to the emergency flow; an assessor failure degrades to a conservative
// watch level, never to none.
func (uc *implUseCase) riskTriageFlow(ctx context.Context, state *model.ConversationState, turn *model.Turn, prof *model.Profile, text string) conversation.StructuredReply {
	turn.HandlerUsed = HandlerRiskTriage

	report := uc.classify.ExtractSymptoms(text)
	assessment, err := uc.assessor.Assess(ctx, report, prof, state.Stage)
	if err != nil {
		uc.l.Errorf(ctx, "conversation: risk assessment failed for user %s: %v", state.UserID, err)
		state.ActiveRiskLevel = model.MaxRisk(state.ActiveRiskLevel, model.RiskWatch)
		return uc.generalFlow(ctx, state, turn, text, "risk assessment unavailable")
	}

	if assessment.Level == model.RiskEmergency {
		return uc.emergencyFlow(ctx, state, turn)
	}

	state.ActiveRiskLevel = model.MaxRisk(state.ActiveRiskLevel, assessment.Level)

	prompt := fmt.Sprintf(promptSymptom, strings.Join(report.Codes, ", "), assessment.Level, text)
	replyText, timedOut := uc.render(ctx, state, prompt, fallbackSymptom)
	turn.RendererTimedOut = timedOut

	reply := conversation.StructuredReply{
		Text:             replyText,
		RendererTimedOut: timedOut,
	}
	if assessment.Level.Severity() >= model.RiskUrgent.Severity() {
		reply.Text += "\n\nPlease contact your healthcare provider today. Warning signs to watch: " +
			strings.Join(content.WarningSignsFor(state.Stage), ", ") + "."
	}
	return reply
}

// nutritionFlow serves stage-keyed dietary guidance, optionally enriched by
// the renderer and a video suggestion. No state mutation beyond the turn.
func (uc *implUseCase) nutritionFlow(ctx context.Context, state *model.ConversationState, turn *model.Turn, text string) conversation.StructuredReply {
	turn.HandlerUsed = HandlerNutrition

	guidance := content.NutritionFor(state.Stage)
	prompt := fmt.Sprintf(promptNutrition,
		stageLabel(state.Stage),
		strings.Join(guidance.FocusAreas, ", "),
		strings.Join(guidance.RecommendedFoods, ", "),
		text)

	replyText, timedOut := uc.render(ctx, state, prompt, nutritionFallback(guidance))
	turn.RendererTimedOut = timedOut

	return conversation.StructuredReply{
		Text:             replyText,
		QuickActions:     []model.QuickAction{model.ActionReportSymptom},
		Videos:           uc.suggestVideos(ctx, state.Stage),
		RendererTimedOut: timedOut,
	}
}

// schedulingFlow proposes the next visit. Missing dates produce a correction
// request; an exhausted cadence produces a plain notice; anything else
// degrades to the general flow.
func (uc *implUseCase) schedulingFlow(ctx context.Context, sc model.Scope, state *model.ConversationState, turn *model.Turn, prof *model.Profile, text string) conversation.StructuredReply {
	turn.HandlerUsed = HandlerScheduling

	out, err := uc.scheduler.Propose(ctx, sc, scheduler.ProposeInput{
		Profile: *prof,
		Stage:   state.Stage,
		Current: state.Appointment,
		Now:     uc.now(),
	})
	switch {
	case errors.Is(err, scheduler.ErrCannotSchedule):
		return conversation.StructuredReply{Text: askForDates}
	case errors.Is(err, scheduler.ErrNoVisitDue):
		return conversation.StructuredReply{Text: noVisitDue}
	case err != nil:
		uc.l.Errorf(ctx, "conversation: scheduler failed for user %s: %v", state.UserID, err)
		return uc.generalFlow(ctx, state, turn, text, "scheduling unavailable")
	}

	proposed := out.Proposed
	state.Appointment = &proposed

	replyText := fmt.Sprintf("I suggest your next visit in week %d, on %s. Shall I confirm it?",
		proposed.VisitWeek, proposed.ProposedTime.Format("Monday, 2 January 2006"))
	if out.Superseded != nil {
		replyText = fmt.Sprintf("I've replaced your earlier pending request with a new one. %s", replyText)
	}

	return conversation.StructuredReply{
		Text:         replyText,
		QuickActions: []model.QuickAction{model.ActionConfirmAppointment, model.ActionRejectAppointment},
		Appointment:  &proposed,
	}
}

// generalFlow is the passthrough to the renderer with stage context only.
// A non-empty degradedReason marks the turn degraded after a collaborator
// failure.
func (uc *implUseCase) generalFlow(ctx context.Context, state *model.ConversationState, turn *model.Turn, text, degradedReason string) conversation.StructuredReply {
	if turn.HandlerUsed == "" || degradedReason != "" {
		turn.HandlerUsed = HandlerGeneral
	}
	turn.DegradedReason = degradedReason

	replyText, timedOut := uc.render(ctx, state, fmt.Sprintf(promptGeneral, text), fallbackGeneral)
	turn.RendererTimedOut = timedOut

	if degradedReason != "" {
		replyText = degradedNotice + replyText
	}

	return conversation.StructuredReply{
		Text:             replyText,
		QuickActions:     []model.QuickAction{model.ActionAskNutrition, model.ActionReportSymptom},
		RendererTimedOut: timedOut,
		Degraded:         degradedReason != "",
	}
}

func (uc *implUseCase) contactCard() *conversation.ContactCard {
	return &conversation.ContactCard{
		EmergencyNumber: uc.cfg.EmergencyNumber,
		MaternalHotline: uc.cfg.MaternalHotline,
	}
}

// suggestVideos attaches stage-appropriate videos, best effort.
func (uc *implUseCase) suggestVideos(ctx context.Context, st model.Stage) []conversation.VideoSuggestion {
	if uc.videos == nil {
		return nil
	}

	results, err := uc.videos.Search(ctx, youtube.SearchRequest{Query: content.VideoQueryFor(st)})
	if err != nil {
		uc.l.Warnf(ctx, "conversation: video search failed: %v", err)
		return nil
	}

	suggestions := make([]conversation.VideoSuggestion, 0, len(results))
	for _, v := range results {
		suggestions = append(suggestions, conversation.VideoSuggestion{
			Title:   v.Title,
			Channel: v.ChannelName,
			URL:     v.URL,
		})
	}
	return suggestions
}

func nutritionFallback(g content.NutritionGuidance) string {
	return fallbackNutrition + " Right now, focus on: " + strings.Join(g.FocusAreas, ", ") + "."
}
