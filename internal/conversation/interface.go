package conversation

import (
	"context"

	"maatricare/internal/model"
)

// UseCase is the sole entry point the delivery layer calls. One turn is
// processed at a time per user; turns for independent users run in parallel.
type UseCase interface {
	// HandleMessage runs one conversation turn and always produces a
	// reply, degrading to templated text when collaborators fail. The
	// only error case is a missing profile for a new user.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (StructuredReply, error)

	// AcknowledgeRisk is the explicit external action that clears a
	// pinned emergency risk level back to watch.
	AcknowledgeRisk(ctx context.Context, sc model.Scope) (StructuredReply, error)

	// ConfirmAppointment transitions the user's proposed request to
	// confirmed.
	ConfirmAppointment(ctx context.Context, sc model.Scope, requestID string) (StructuredReply, error)

	// RejectAppointment transitions the user's proposed request to
	// rejected.
	RejectAppointment(ctx context.Context, sc model.Scope, requestID string) (StructuredReply, error)

	// State returns the current conversation state for the user.
	State(ctx context.Context, sc model.Scope) (model.ConversationState, error)
}
