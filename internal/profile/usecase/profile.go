package usecase

import (
	"context"
	"errors"
	"fmt"

	"maatricare/internal/model"
	"maatricare/internal/profile"
	"maatricare/internal/profile/repository"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.Profile, error) {
	if p, ok := uc.cache.Get(sc.UserID); ok {
		return p, nil
	}

	p, err := uc.repo.Get(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Profile{}, profile.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("profile.Get: %w", err)
	}

	uc.cache.Add(sc.UserID, p)
	return p, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input profile.CreateInput) (model.Profile, error) {
	if _, err := uc.repo.Get(ctx, sc.UserID); err == nil {
		return model.Profile{}, profile.ErrAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.Profile{}, fmt.Errorf("profile.Create: %w", err)
	}

	now := uc.now()
	if input.LMPDate != nil && input.LMPDate.After(now) {
		return model.Profile{}, fmt.Errorf("%w: last menstrual period date is in the future", profile.ErrValidation)
	}
	if input.Age < 0 || input.Age > 120 {
		return model.Profile{}, fmt.Errorf("%w: age out of range", profile.ErrValidation)
	}

	p := model.Profile{
		UserID:         sc.UserID,
		Name:           input.Name,
		Age:            input.Age,
		LMPDate:        input.LMPDate,
		MedicalHistory: dedupeFlags(input.MedicalHistory),
		Language:       input.Language,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.Save(ctx, p); err != nil {
		return model.Profile{}, fmt.Errorf("profile.Create: %w", err)
	}

	uc.cache.Add(p.UserID, p)
	uc.l.Infof(ctx, "profile created for user %s", sc.UserID)
	return p, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (model.Profile, error) {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return model.Profile{}, err
	}

	now := uc.now()
	if input.LMPDate != nil {
		if input.LMPDate.After(now) {
			return model.Profile{}, fmt.Errorf("%w: last menstrual period date is in the future", profile.ErrValidation)
		}
		p.LMPDate = input.LMPDate
	}
	if input.DeliveryDate != nil {
		if input.DeliveryDate.After(now) {
			return model.Profile{}, fmt.Errorf("%w: delivery date is in the future", profile.ErrValidation)
		}
		p.DeliveryDate = input.DeliveryDate
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Age != nil {
		if *input.Age < 0 || *input.Age > 120 {
			return model.Profile{}, fmt.Errorf("%w: age out of range", profile.ErrValidation)
		}
		p.Age = *input.Age
	}
	if input.Language != nil {
		p.Language = *input.Language
	}
	if len(input.MedicalHistory) > 0 {
		p.MedicalHistory = dedupeFlags(append(p.MedicalHistory, input.MedicalHistory...))
	}
	p.UpdatedAt = now

	if err := uc.repo.Save(ctx, p); err != nil {
		return model.Profile{}, fmt.Errorf("profile.Update: %w", err)
	}

	uc.cache.Add(p.UserID, p)
	return p, nil
}

func (uc *implUseCase) Archive(ctx context.Context, sc model.Scope) error {
	p, err := uc.Get(ctx, sc)
	if err != nil {
		return err
	}

	p.Archived = true
	p.UpdatedAt = uc.now()

	if err := uc.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("profile.Archive: %w", err)
	}

	uc.cache.Remove(p.UserID)
	uc.l.Infof(ctx, "profile archived for user %s", sc.UserID)
	return nil
}

func dedupeFlags(flags []model.MedicalHistoryFlag) []model.MedicalHistoryFlag {
	seen := make(map[model.MedicalHistoryFlag]bool, len(flags))
	out := make([]model.MedicalHistoryFlag, 0, len(flags))
	for _, f := range flags {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
