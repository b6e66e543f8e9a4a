package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"maatricare/internal/conversation"
	"maatricare/internal/model"
)

func TestAcknowledgeRiskWithoutEmergency(t *testing.T) {
	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 20)

	_, err := f.uc.AcknowledgeRisk(context.Background(), model.Scope{UserID: "u1"})
	if !errors.Is(err, conversation.ErrNoActiveEmergency) {
		t.Errorf("expected ErrNoActiveEmergency, got %v", err)
	}
}

func TestConfirmAppointment(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "schedule my next visit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requestID := reply.Appointment.ID

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := f.uc.ConfirmAppointment(ctx, sc, "not-a-real-id")
		if !errors.Is(err, conversation.ErrUnknownAppointment) {
			t.Errorf("expected ErrUnknownAppointment, got %v", err)
		}
	})

	t.Run("Confirm", func(t *testing.T) {
		confirmReply, err := f.uc.ConfirmAppointment(ctx, sc, requestID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmReply.Appointment.Status != model.AppointmentConfirmed {
			t.Errorf("expected confirmed, got %v", confirmReply.Appointment.Status)
		}
		if !strings.Contains(confirmReply.Text, "confirmed") {
			t.Errorf("unexpected reply %q", confirmReply.Text)
		}

		state, _ := f.uc.State(ctx, sc)
		if state.Appointment.Status != model.AppointmentConfirmed {
			t.Errorf("state not updated: %+v", state.Appointment)
		}
	})

	t.Run("Double Confirm", func(t *testing.T) {
		if _, err := f.uc.ConfirmAppointment(ctx, sc, requestID); err == nil {
			t.Errorf("expected error confirming a confirmed request")
		}
	})

	t.Run("Next Proposal Supersedes Confirmed", func(t *testing.T) {
		reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "schedule another appointment"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Appointment == nil || reply.Appointment.ID == requestID {
			t.Fatalf("expected a fresh proposal, got %+v", reply.Appointment)
		}

		state, _ := f.uc.State(ctx, sc)
		if state.Appointment.ID == requestID || !state.Appointment.Status.Active() {
			t.Errorf("expected the new proposal to be the single active request")
		}
	})
}

func TestRejectAppointment(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	f := newFixture(t)
	f.createPregnantProfile(t, "u1", 30)

	reply, err := f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "schedule my next visit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rejectReply, err := f.uc.RejectAppointment(ctx, sc, reply.Appointment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rejectReply.Text, "cancelled") {
		t.Errorf("unexpected reply %q", rejectReply.Text)
	}

	// A rejected request does not retry automatically.
	state, _ := f.uc.State(ctx, sc)
	if state.Appointment.Status != model.AppointmentRejected {
		t.Errorf("expected rejected, got %v", state.Appointment.Status)
	}

	// The next scheduling intent creates a fresh proposal.
	reply, err = f.uc.HandleMessage(ctx, sc, conversation.HandleMessageInput{Text: "ok, schedule a visit after all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Appointment == nil || reply.Appointment.Status != model.AppointmentProposed {
		t.Errorf("expected a fresh proposal, got %+v", reply.Appointment)
	}
}
