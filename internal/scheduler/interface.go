package scheduler

import (
	"context"

	"maatricare/internal/model"
)

// UseCase defines the business logic interface for the scheduler domain.
type UseCase interface {
	// Propose computes the next visit from the cadence table and returns a
	// new proposed request. Any currently active request is superseded:
	// at most one request with status proposed or confirmed exists per
	// user after this call.
	Propose(ctx context.Context, sc model.Scope, input ProposeInput) (ProposeOutput, error)

	// Confirm transitions a proposed request to confirmed and mirrors the
	// visit into the user's calendar when one is configured.
	Confirm(ctx context.Context, sc model.Scope, req model.AppointmentRequest) (model.AppointmentRequest, error)

	// Reject transitions a proposed request to rejected. Rejected requests
	// never retry automatically; the next scheduling intent creates a
	// fresh proposal.
	Reject(ctx context.Context, sc model.Scope, req model.AppointmentRequest) (model.AppointmentRequest, error)
}
