package profile

import (
	"context"

	"maatricare/internal/model"
)

// UseCase defines the business logic interface for the profile domain.
type UseCase interface {
	// Get returns the profile for the scoped user.
	Get(ctx context.Context, sc model.Scope) (model.Profile, error)

	// Create creates a profile at onboarding. Fails if one already exists.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Profile, error)

	// Update applies a delta to the profile. Only set fields change.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Profile, error)

	// Archive marks the profile archived on account closure. Archived
	// profiles are retained, never purged.
	Archive(ctx context.Context, sc model.Scope) error
}
