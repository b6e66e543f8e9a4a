package http

import (
	"time"

	"maatricare/internal/conversation"
	"maatricare/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

func (r messageReq) validate() error { return nil }

func (r messageReq) toInput() conversation.HandleMessageInput {
	return conversation.HandleMessageInput{Text: r.Text}
}

// ---

type appointmentActionReq struct {
	RequestID string `json:"requestId" binding:"required"`
}

func (r appointmentActionReq) validate() error { return nil }

// --- Response DTOs ---

type replyResp struct {
	Reply conversation.StructuredReply `json:"reply"`
}

func (h *handler) newReplyResp(reply conversation.StructuredReply) replyResp {
	return replyResp{Reply: reply}
}

type turnResp struct {
	ID               string    `json:"id"`
	UserText         string    `json:"userText"`
	ReplyText        string    `json:"replyText"`
	Intent           string    `json:"intent"`
	RiskLevelAtTurn  string    `json:"riskLevelAtTurn"`
	RendererTimedOut bool      `json:"rendererTimedOut,omitempty"`
	DegradedReason   string    `json:"degradedReason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type stateResp struct {
	UserID          string                    `json:"userId"`
	Stage           string                    `json:"stage"`
	ActiveRiskLevel string                    `json:"activeRiskLevel"`
	Appointment     *model.AppointmentRequest `json:"appointment,omitempty"`
	Turns           []turnResp                `json:"turns"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

func (h *handler) newStateResp(state model.ConversationState) stateResp {
	turns := make([]turnResp, len(state.Turns))
	for i, t := range state.Turns {
		turns[i] = turnResp{
			ID:               t.ID,
			UserText:         t.UserText,
			ReplyText:        t.ReplyText,
			Intent:           string(t.Intent),
			RiskLevelAtTurn:  string(t.RiskLevelAtTurn),
			RendererTimedOut: t.RendererTimedOut,
			DegradedReason:   t.DegradedReason,
			CreatedAt:        t.CreatedAt,
		}
	}
	return stateResp{
		UserID:          state.UserID,
		Stage:           string(state.Stage),
		ActiveRiskLevel: string(state.ActiveRiskLevel),
		Appointment:     state.Appointment,
		Turns:           turns,
		UpdatedAt:       state.UpdatedAt,
	}
}
