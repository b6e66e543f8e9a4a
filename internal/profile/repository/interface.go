package repository

import (
	"context"
	"errors"

	"maatricare/internal/model"
)

// ErrNotFound is returned when no record exists for the user.
var ErrNotFound = errors.New("repository: profile not found")

// Repository persists profiles between turns. Storage technology is an
// external policy; implementations only need userID-keyed retrieval.
type Repository interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	Save(ctx context.Context, p model.Profile) error
}
