package conversation

import "maatricare/internal/model"

// HandleMessageInput carries the raw user message for one turn.
type HandleMessageInput struct {
	Text string
}

// RiskBanner is shown above the reply when the session risk is elevated.
type RiskBanner struct {
	Level   model.RiskLevel `json:"level"`
	Message string          `json:"message"`
}

// ContactCard lists the emergency numbers included with emergency replies.
type ContactCard struct {
	EmergencyNumber string `json:"emergencyNumber"`
	MaternalHotline string `json:"maternalHotline"`
}

// VideoSuggestion is a supplementary video attached to a reply.
type VideoSuggestion struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

// StructuredReply is what every turn returns to the UI.
type StructuredReply struct {
	Text              string                    `json:"text"`
	QuickActions      []model.QuickAction       `json:"suggestedQuickActions"`
	RiskBanner        *RiskBanner               `json:"riskBanner,omitempty"`
	EmergencyContacts *ContactCard              `json:"emergencyContacts,omitempty"`
	Appointment       *model.AppointmentRequest `json:"appointment,omitempty"`
	Videos            []VideoSuggestion         `json:"videos,omitempty"`
	RendererTimedOut  bool                      `json:"rendererTimedOut,omitempty"`
	Degraded          bool                      `json:"degraded,omitempty"`
}
