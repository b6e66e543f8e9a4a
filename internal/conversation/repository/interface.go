package repository

import (
	"context"
	"errors"

	"maatricare/internal/model"
)

// ErrNotFound is returned when no state exists for the user.
var ErrNotFound = errors.New("repository: conversation state not found")

// Repository persists ConversationState between turns, keyed by userID.
type Repository interface {
	Get(ctx context.Context, userID string) (model.ConversationState, error)
	Save(ctx context.Context, state model.ConversationState) error
}
