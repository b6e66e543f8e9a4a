package memory

import (
	"context"
	"sync"

	"maatricare/internal/model"
	"maatricare/internal/profile/repository"
)

// Repository is an in-memory profile store keyed by userID.
type Repository struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
}

// New creates an empty in-memory profile repository.
func New() *Repository {
	return &Repository{profiles: make(map[string]model.Profile)}
}

func (r *Repository) Get(_ context.Context, userID string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return model.Profile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *Repository) Save(_ context.Context, p model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.UserID] = p
	return nil
}
