package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"maatricare/internal/model"
	"maatricare/internal/profile/repository"
	pkgLog "maatricare/pkg/log"
)

const (
	cacheSize = 1024
	cacheTTL  = 10 * time.Minute
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *expirable.LRU[string, model.Profile]
	now   func() time.Time
}

// New creates a new profile UseCase instance. Reads go through a short-lived
// LRU cache so hot conversations avoid a repository round trip per turn.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, model.Profile](cacheSize, nil, cacheTTL),
		now:   time.Now,
	}
}
