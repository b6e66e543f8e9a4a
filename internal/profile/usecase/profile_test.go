package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/internal/profile/repository/memory"
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

func newTestUseCase() *implUseCase {
	uc := New(nopLogger{}, memory.New())
	uc.now = func() time.Time {
		return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Success", func(t *testing.T) {
		uc := newTestUseCase()
		lmp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		p, err := uc.Create(ctx, sc, profile.CreateInput{
			Name:    "Amina",
			Age:     27,
			LMPDate: &lmp,
			MedicalHistory: []model.MedicalHistoryFlag{
				model.HistoryAnemia,
				model.HistoryAnemia, // duplicate dropped
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.MedicalHistory) != 1 {
			t.Errorf("expected deduplicated history, got %v", p.MedicalHistory)
		}
		if p.DueDate().IsZero() {
			t.Errorf("expected derived due date")
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina"})
		if !errors.Is(err, profile.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("Future LMP Rejected", func(t *testing.T) {
		uc := newTestUseCase()
		future := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Create(ctx, sc, profile.CreateInput{LMPDate: &future})
		if !errors.Is(err, profile.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Get(ctx, sc)
		if !errors.Is(err, profile.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Cache Hit After Create", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, err := uc.Get(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Amina" {
			t.Errorf("unexpected profile %+v", p)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Delta Applies Only Set Fields", func(t *testing.T) {
		uc := newTestUseCase()
		lmp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if _, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina", Age: 27, LMPDate: &lmp}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newAge := 28
		p, err := uc.Update(ctx, sc, profile.UpdateInput{Age: &newAge})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Age != 28 || p.Name != "Amina" || p.LMPDate == nil {
			t.Errorf("delta update corrupted profile: %+v", p)
		}
	})

	t.Run("Delivery Date Set", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		delivered := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		p, err := uc.Update(ctx, sc, profile.UpdateInput{DeliveryDate: &delivered})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.DeliveryDate == nil {
			t.Errorf("expected delivery date to be set")
		}
	})

	t.Run("History Appends And Dedupes", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, profile.CreateInput{
			MedicalHistory: []model.MedicalHistoryFlag{model.HistoryAnemia},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p, err := uc.Update(ctx, sc, profile.UpdateInput{
			MedicalHistory: []model.MedicalHistoryFlag{model.HistoryAnemia, model.HistoryDiabetes},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.MedicalHistory) != 2 {
			t.Errorf("expected 2 flags, got %v", p.MedicalHistory)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		uc := newTestUseCase()
		name := "Amina"
		_, err := uc.Update(ctx, sc, profile.UpdateInput{Name: &name})
		if !errors.Is(err, profile.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc := newTestUseCase()
	if _, err := uc.Create(ctx, sc, profile.CreateInput{Name: "Amina"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Archive(ctx, sc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Archived profiles stay retrievable.
	p, err := uc.Get(ctx, sc)
	if err != nil {
		t.Fatalf("archived profile should remain retrievable: %v", err)
	}
	if !p.Archived {
		t.Errorf("expected profile to be archived")
	}
}
