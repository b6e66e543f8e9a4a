package usecase

import (
	"context"
	"sync"
	"time"

	"maatricare/internal/conversation/repository"
	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/internal/router"
	"maatricare/internal/scheduler"
	"maatricare/pkg/dateparse"
	"maatricare/pkg/llmprovider"
	pkgLog "maatricare/pkg/log"
	"maatricare/pkg/youtube"
)

// Collaborator seams. Concrete implementations are the keyword router, the
// risk assessor, the scheduler usecase, the LLM provider manager, and the
// YouTube client; tests substitute function-field mocks.

type intentClassifier interface {
	Classify(ctx context.Context, message string) router.Output
	ExtractSymptoms(message string) model.SymptomReport
}

type riskAssessor interface {
	Assess(ctx context.Context, report model.SymptomReport, p *model.Profile, st model.Stage) (model.RiskAssessment, error)
}

type renderer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type videoSearcher interface {
	Search(ctx context.Context, req youtube.SearchRequest) ([]youtube.Video, error)
}

// Config tunes per-turn behavior.
type Config struct {
	RendererTimeout time.Duration
	HistoryLimit    int
	EmergencyNumber string
	MaternalHotline string
}

func (c *Config) validate() {
	if c.RendererTimeout <= 0 {
		c.RendererTimeout = 15 * time.Second
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = model.MaxHistoryLength
	}
}

type implUseCase struct {
	l         pkgLog.Logger
	cfg       Config
	profileUC profile.UseCase
	classify  intentClassifier
	assessor  riskAssessor
	scheduler scheduler.UseCase
	renderer  renderer
	videos    videoSearcher // nil disables video suggestions
	repo      repository.Repository
	dates     *dateparse.Parser
	now       func() time.Time

	// One turn at a time per user; independent users proceed in parallel.
	userLocks sync.Map // userID -> *sync.Mutex
}

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	cfg Config,
	profileUC profile.UseCase,
	classify intentClassifier,
	assessor riskAssessor,
	schedulerUC scheduler.UseCase,
	rendererClient renderer,
	videos videoSearcher,
	repo repository.Repository,
	dates *dateparse.Parser,
) *implUseCase {
	cfg.validate()
	return &implUseCase{
		l:         l,
		cfg:       cfg,
		profileUC: profileUC,
		classify:  classify,
		assessor:  assessor,
		scheduler: schedulerUC,
		renderer:  rendererClient,
		videos:    videos,
		repo:      repo,
		dates:     dates,
		now:       time.Now,
	}
}

func (uc *implUseCase) lockUser(userID string) func() {
	muIface, _ := uc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
