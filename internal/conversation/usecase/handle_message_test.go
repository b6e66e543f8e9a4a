package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"maatricare/internal/conversation"
	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/pkg/llmprovider"
)

func TestHandleMessageNoProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.HandleMessage(context.Background(), model.Scope{UserID: "ghost"},
		conversation.HandleMessageInput{Text: "hello"})
	if !errors.Is(err, conversation.ErrCannotStartSession) {
		t.Errorf("expected ErrCannotStartSession, got %v", err)
	}
}

func TestEmergencyKeywordOverride(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "I have severe bleeding"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.EmergencyContacts == nil || reply.EmergencyContacts.EmergencyNumber != "999" {
		t.Errorf("expected emergency contact card, got %+v", reply.EmergencyContacts)
	}
	if len(reply.QuickActions) != 1 || reply.QuickActions[0] != model.ActionAcknowledgeRisk {
		t.Errorf("expected only the acknowledge action, got %v", reply.QuickActions)
	}
	if reply.RiskBanner == nil || reply.RiskBanner.Level != model.RiskEmergency {
		t.Errorf("expected emergency banner, got %+v", reply.RiskBanner)
	}

	state, _ := f.uc.State(ctx, sc)
	if state.ActiveRiskLevel != model.RiskEmergency {
		t.Errorf("expected pinned emergency risk, got %v", state.ActiveRiskLevel)
	}
	if state.Turns[len(state.Turns)-1].HandlerUsed != HandlerEmergency {
		t.Errorf("expected emergency handler recorded")
	}
}

// An absolute trigger found during triage must also end in the emergency
// flow, even when the router did not see an emergency keyword.
func TestRiskTriageAbsoluteTrigger(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "I have severe stomach pain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.RiskBanner == nil || reply.RiskBanner.Level != model.RiskEmergency {
		t.Errorf("expected emergency banner, got %+v", reply.RiskBanner)
	}

	state, _ := f.uc.State(ctx, sc)
	if state.ActiveRiskLevel != model.RiskEmergency {
		t.Errorf("expected emergency risk, got %v", state.ActiveRiskLevel)
	}
}

// activeRiskLevel never decreases across turns except through an explicit
// acknowledgment.
func TestRiskMonotonicity(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)

	messages := []string{
		"I have a fever",                    // watch
		"what should I eat?",                // no risk change
		"I have slight back pain",           // scores below watch, must not lower
		"fever, headache and blurry vision", // urgent
		"is walking ok?",                    // no risk change
	}

	prev := model.RiskNone
	for _, msg := range messages {
		if _, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: msg}); err != nil {
			t.Fatalf("unexpected error on %q: %v", msg, err)
		}
		state, _ := f.uc.State(ctx, sc)
		if state.ActiveRiskLevel.Severity() < prev.Severity() {
			t.Fatalf("risk decreased from %v to %v after %q", prev, state.ActiveRiskLevel, msg)
		}
		prev = state.ActiveRiskLevel
	}

	if prev != model.RiskUrgent {
		t.Errorf("expected urgent after the sequence, got %v", prev)
	}
}

func TestEmergencyPinnedUntilAcknowledged(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	if _, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "emergency, heavy bleeding"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Any next turn re-confirms care instead of normal routing.
	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "what food should I eat?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Text, "seek medical care") {
		t.Errorf("expected care re-confirmation, got %q", reply.Text)
	}
	if len(reply.QuickActions) != 1 || reply.QuickActions[0] != model.ActionAcknowledgeRisk {
		t.Errorf("expected only the acknowledge action, got %v", reply.QuickActions)
	}

	state, _ := f.uc.State(ctx, sc)
	if state.ActiveRiskLevel != model.RiskEmergency {
		t.Errorf("risk should stay pinned, got %v", state.ActiveRiskLevel)
	}

	// Acknowledge clears to watch and normal routing resumes.
	ackReply, err := f.uc.AcknowledgeRisk(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ackReply.RiskBanner == nil || ackReply.RiskBanner.Level != model.RiskWatch {
		t.Errorf("expected watch banner after acknowledgment, got %+v", ackReply.RiskBanner)
	}

	reply, err = f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "what food should I eat?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, _ = f.uc.State(ctx, sc)
	if state.Turns[len(state.Turns)-1].HandlerUsed != HandlerNutrition {
		t.Errorf("expected nutrition flow after acknowledgment, got %q",
			state.Turns[len(state.Turns)-1].HandlerUsed)
	}
	if state.ActiveRiskLevel != model.RiskWatch {
		t.Errorf("expected watch after acknowledgment, got %v", state.ActiveRiskLevel)
	}
	_ = reply
}

func TestRendererTimeoutFallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)

	f.renderer.generateFunc = func(ctx context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "is it normal to feel tired at night?"})
	if err != nil {
		t.Fatalf("a reply must still be produced on renderer timeout: %v", err)
	}
	if !reply.RendererTimedOut {
		t.Errorf("expected rendererTimedOut marker on the reply")
	}
	if !strings.Contains(reply.Text, "trouble composing") {
		t.Errorf("expected the fallback template, got %q", reply.Text)
	}

	state, _ := f.uc.State(ctx, sc)
	lastTurn := state.Turns[len(state.Turns)-1]
	if !lastTurn.RendererTimedOut {
		t.Errorf("expected the turn recorded with the timeout marker")
	}

	// The session continues normally on the next turn.
	f.renderer.generateFunc = func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
		return &llmprovider.Response{Content: llmprovider.Message{Role: "assistant", Text: "all good"}}, nil
	}
	reply, err = f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "thanks, and how about rest?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.RendererTimedOut || reply.Text != "all good" {
		t.Errorf("expected recovery on the next turn, got %+v", reply)
	}
}

func TestCollaboratorFailureDegradesToGeneral(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)
	f.uc.assessor = &mockAssessor{
		assessFunc: func(_ context.Context, _ model.SymptomReport, _ *model.Profile, _ model.Stage) (model.RiskAssessment, error) {
			return model.RiskAssessment{}, errors.New("rule table corrupted")
		},
	}

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "I have a fever"})
	if err != nil {
		t.Fatalf("a reply must still be produced when a collaborator fails: %v", err)
	}
	if !reply.Degraded {
		t.Errorf("expected a degraded reply")
	}
	if !strings.Contains(reply.Text, "temporarily unavailable") {
		t.Errorf("expected a degraded-service notice, got %q", reply.Text)
	}

	state, _ := f.uc.State(ctx, sc)
	lastTurn := state.Turns[len(state.Turns)-1]
	if lastTurn.DegradedReason == "" {
		t.Errorf("expected the failure reason recorded on the turn")
	}
	// Fail-safe: triage degrades to watch, never stays at none.
	if state.ActiveRiskLevel != model.RiskWatch {
		t.Errorf("expected conservative watch level, got %v", state.ActiveRiskLevel)
	}
}

func TestSchedulingSupersession(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "please schedule my next visit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Appointment == nil || reply.Appointment.Status != model.AppointmentProposed {
		t.Fatalf("expected a proposed appointment, got %+v", reply.Appointment)
	}
	firstID := reply.Appointment.ID

	// A second scheduling request supersedes the pending one.
	reply, err = f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "actually, schedule a new appointment"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Appointment == nil || reply.Appointment.ID == firstID {
		t.Fatalf("expected a fresh proposal, got %+v", reply.Appointment)
	}
	if !strings.Contains(reply.Text, "replaced") {
		t.Errorf("expected a supersession notice, got %q", reply.Text)
	}

	// Exactly one active request remains.
	state, _ := f.uc.State(ctx, sc)
	if state.Appointment == nil || !state.Appointment.Status.Active() {
		t.Fatalf("expected one active request, got %+v", state.Appointment)
	}
	if state.Appointment.ID == firstID {
		t.Errorf("superseded request still active")
	}
}

func TestSchedulingWithoutDates(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	if _, err := f.profiles.Create(ctx, sc, profile.CreateInput{Name: "Amina"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "book an appointment please"})
	if err != nil {
		t.Fatalf("a correction request is a reply, not an error: %v", err)
	}
	if !strings.Contains(reply.Text, "last period") {
		t.Errorf("expected a request for dates, got %q", reply.Text)
	}
	if reply.Appointment != nil {
		t.Errorf("no appointment should be proposed without dates")
	}
}

func TestProfileUpdateRecomputesStage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "my last period was 8 weeks ago"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Text, "week 8") {
		t.Errorf("expected updated gestational week in reply, got %q", reply.Text)
	}

	state, _ := f.uc.State(ctx, sc)
	if state.Stage != model.StageFirstTrimester {
		t.Errorf("expected recomputed first trimester stage, got %v", state.Stage)
	}

	prof, err := f.profiles.Get(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The parser floors to start of day.
	want := fixedNow.AddDate(0, 0, -56)
	if prof.LMPDate == nil || prof.LMPDate.Year() != want.Year() || prof.LMPDate.YearDay() != want.YearDay() {
		t.Errorf("expected LMP 56 days back, got %v", prof.LMPDate)
	}
}

func TestProfileUpdateUnparseableDate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "my last period was a while back"})
	if err != nil {
		t.Fatalf("a correction request is a reply, not an error: %v", err)
	}
	if !strings.Contains(reply.Text, "couldn't understand the date") {
		t.Errorf("expected a correction request, got %q", reply.Text)
	}
}

func TestHistoryCapped(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)

	for i := 0; i < model.MaxHistoryLength+5; i++ {
		msg := fmt.Sprintf("general question number %d", i)
		if _, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: msg}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	state, _ := f.uc.State(ctx, sc)
	if len(state.Turns) != model.MaxHistoryLength {
		t.Errorf("expected history capped at %d, got %d", model.MaxHistoryLength, len(state.Turns))
	}
}
