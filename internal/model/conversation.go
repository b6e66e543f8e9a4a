package model

import "time"

// Intent is the closed set of message intents the router may return.
type Intent string

const (
	IntentSymptomReport     Intent = "symptom_report"
	IntentNutritionQuestion Intent = "nutrition_question"
	IntentSchedulingRequest Intent = "scheduling_request"
	IntentGeneralQuestion   Intent = "general_question"
	IntentEmergencyKeyword  Intent = "emergency_keyword"
	IntentProfileUpdate     Intent = "profile_update"
)

// QuickAction is a UI affordance suggested alongside a reply.
type QuickAction string

const (
	ActionAcknowledgeRisk    QuickAction = "acknowledge_risk"
	ActionConfirmAppointment QuickAction = "confirm_appointment"
	ActionRejectAppointment  QuickAction = "reject_appointment"
	ActionAskNutrition       QuickAction = "ask_nutrition"
	ActionReportSymptom      QuickAction = "report_symptom"
)

// Turn is one completed exchange in a conversation.
type Turn struct {
	ID               string
	UserID           string
	UserText         string
	ReplyText        string
	Intent           Intent
	HandlerUsed      string    // flow that produced the reply, e.g. "risk_triage"
	RiskLevelAtTurn  RiskLevel // activeRiskLevel after this turn
	RendererTimedOut bool
	DegradedReason   string // non-empty when a collaborator failure forced the general flow
	CreatedAt        time.Time
}

// ConversationState is the per-user state carried across turns.
type ConversationState struct {
	UserID          string
	Stage           Stage
	ActiveRiskLevel RiskLevel
	Turns           []Turn // capped to the most recent MaxHistoryLength
	Appointment     *AppointmentRequest
	UpdatedAt       time.Time
}

// MaxHistoryLength caps how many turns are retained per conversation.
const MaxHistoryLength = 20
