package usecase

import (
	"context"
	"testing"
	"time"

	"maatricare/internal/conversation/repository/memory"
	"maatricare/internal/model"
	"maatricare/internal/profile"
	profilememory "maatricare/internal/profile/repository/memory"
	profileusecase "maatricare/internal/profile/usecase"
	"maatricare/internal/risk"
	"maatricare/internal/router"
	schedulerusecase "maatricare/internal/scheduler/usecase"
	"maatricare/pkg/dateparse"
	"maatricare/pkg/llmprovider"
	"maatricare/pkg/youtube"
)

type nopLogger struct{}

func (nopLogger) Debug(_ context.Context, _ ...interface{})            {}
func (nopLogger) Debugf(_ context.Context, _ string, _ ...interface{}) {}
func (nopLogger) Info(_ context.Context, _ ...interface{})             {}
func (nopLogger) Infof(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Warn(_ context.Context, _ ...interface{})             {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Error(_ context.Context, _ ...interface{})            {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...interface{}) {}

type mockRenderer struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (m *mockRenderer) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return m.generateFunc(ctx, req)
}

type mockAssessor struct {
	assessFunc func(ctx context.Context, report model.SymptomReport, p *model.Profile, st model.Stage) (model.RiskAssessment, error)
}

func (m *mockAssessor) Assess(ctx context.Context, report model.SymptomReport, p *model.Profile, st model.Stage) (model.RiskAssessment, error) {
	return m.assessFunc(ctx, report, p, st)
}

type mockVideos struct {
	searchFunc func(ctx context.Context, req youtube.SearchRequest) ([]youtube.Video, error)
}

func (m *mockVideos) Search(ctx context.Context, req youtube.SearchRequest) ([]youtube.Video, error) {
	return m.searchFunc(ctx, req)
}

var fixedNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// fixture wires the conversation usecase with real collaborators (keyword
// router, risk assessor, scheduler, in-memory stores) and a mock renderer.
// Individual seams are swapped per test.
type fixture struct {
	uc       *implUseCase
	profiles profile.UseCase
	renderer *mockRenderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	parser, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}

	rendererMock := &mockRenderer{
		generateFunc: func(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{
				Content: llmprovider.Message{Role: "assistant", Text: "rendered reply"},
			}, nil
		},
	}

	profiles := profileusecase.New(nopLogger{}, profilememory.New())

	uc := New(
		nopLogger{},
		Config{
			RendererTimeout: 200 * time.Millisecond,
			HistoryLimit:    model.MaxHistoryLength,
			EmergencyNumber: "999",
			MaternalHotline: "16263",
		},
		profiles,
		router.New(nopLogger{}),
		risk.New(nopLogger{}, risk.Config{}),
		schedulerusecase.New(nopLogger{}, nil, "", "UTC"),
		rendererMock,
		nil,
		memory.New(0),
		parser,
	)
	uc.now = func() time.Time { return fixedNow }

	return &fixture{uc: uc, profiles: profiles, renderer: rendererMock}
}

// createPregnantProfile seeds a profile at the given gestational week.
func (f *fixture) createPregnantProfile(t *testing.T, userID string, weeks int) {
	t.Helper()

	lmp := fixedNow.AddDate(0, 0, -weeks*7)
	_, err := f.profiles.Create(context.Background(), model.Scope{UserID: userID}, profile.CreateInput{
		Name:    "Amina",
		Age:     27,
		LMPDate: &lmp,
	})
	if err != nil {
		t.Fatalf("unexpected error seeding profile: %v", err)
	}
}
