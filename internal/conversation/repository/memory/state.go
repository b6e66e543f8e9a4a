package memory

import (
	"context"
	"sync"
	"time"

	"maatricare/internal/conversation/repository"
	"maatricare/internal/model"
)

const cleanupInterval = 5 * time.Minute

// Repository keeps conversation state in memory with a TTL. Idle sessions
// are dropped by a background sweep; profiles live elsewhere, so an expired
// session only loses transient conversation context.
type Repository struct {
	mu     sync.RWMutex
	states map[string]model.ConversationState
	ttl    time.Duration
}

// New creates an in-memory state repository. A ttl of zero disables
// expiration.
func New(ttl time.Duration) *Repository {
	r := &Repository{
		states: make(map[string]model.ConversationState),
		ttl:    ttl,
	}
	if ttl > 0 {
		go r.cleanupExpired()
	}
	return r
}

func (r *Repository) Get(_ context.Context, userID string) (model.ConversationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[userID]
	if !ok {
		return model.ConversationState{}, repository.ErrNotFound
	}
	if r.ttl > 0 && time.Since(state.UpdatedAt) > r.ttl {
		return model.ConversationState{}, repository.ErrNotFound
	}
	return state, nil
}

func (r *Repository) Save(_ context.Context, state model.ConversationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.UserID] = state
	return nil
}

func (r *Repository) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		for userID, state := range r.states {
			if time.Since(state.UpdatedAt) > r.ttl {
				delete(r.states, userID)
			}
		}
		r.mu.Unlock()
	}
}
