package content_test

import (
	"testing"

	"maatricare/internal/content"
	"maatricare/internal/model"
)

func TestNutritionFor(t *testing.T) {
	stages := []model.Stage{
		model.StageFirstTrimester,
		model.StageSecondTrimester,
		model.StageThirdTrimester,
		model.StagePostpartumEarly,
		model.StagePostpartumLate,
		model.StagePreconception,
		model.StageUnclassified,
	}

	for _, st := range stages {
		g := content.NutritionFor(st)
		if len(g.FocusAreas) == 0 || len(g.RecommendedFoods) == 0 {
			t.Errorf("stage %v returned empty guidance", st)
		}
	}

	second := content.NutritionFor(model.StageSecondTrimester)
	found := false
	for _, f := range second.FocusAreas {
		if f == "iron" {
			found = true
		}
	}
	if !found {
		t.Errorf("second trimester guidance should focus on iron, got %v", second.FocusAreas)
	}
}

func TestVideoQueryFor(t *testing.T) {
	if q := content.VideoQueryFor(model.StageThirdTrimester); q == "" {
		t.Error("expected a third trimester query")
	}
	if q := content.VideoQueryFor(model.StageUnclassified); q == "" {
		t.Error("expected a fallback query for unclassified stage")
	}
}

func TestWarningSignsFor(t *testing.T) {
	for _, st := range []model.Stage{model.StageThirdTrimester, model.StageUnclassified} {
		if signs := content.WarningSignsFor(st); len(signs) == 0 {
			t.Errorf("stage %v returned no warning signs", st)
		}
	}
}
