package stage_test

import (
	"testing"
	"time"

	"maatricare/internal/model"
	"maatricare/internal/stage"
)

func intPtr(v int) *int { return &v }

func TestClassifyGestationalWeeks(t *testing.T) {
	tests := []struct {
		name  string
		weeks int
		want  model.Stage
	}{
		{"Week 0", 0, model.StageFirstTrimester},
		{"Week 13 boundary", 13, model.StageFirstTrimester},
		{"Week 14 boundary", 14, model.StageSecondTrimester},
		{"Week 27 boundary", 27, model.StageSecondTrimester},
		{"Week 28 boundary", 28, model.StageThirdTrimester},
		{"Week 40", 40, model.StageThirdTrimester},
		{"Week 45 upper edge", 45, model.StageThirdTrimester},
		{"Week 46 out of range", 46, model.StageUnclassified},
		{"Negative weeks", -1, model.StageUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stage.Classify(stage.Input{GestationalWeeks: intPtr(tt.weeks)})
			if got != tt.want {
				t.Errorf("Classify(%d weeks) = %v, want %v", tt.weeks, got, tt.want)
			}
		})
	}
}

// Every week in [0, 45] must map to a defined pregnancy stage.
func TestClassifyIsTotal(t *testing.T) {
	for weeks := 0; weeks <= 45; weeks++ {
		got := stage.Classify(stage.Input{GestationalWeeks: intPtr(weeks)})
		if !got.Pregnant() {
			t.Errorf("week %d mapped to %v, want a trimester stage", weeks, got)
		}
	}
}

func TestClassifyPostpartum(t *testing.T) {
	tests := []struct {
		name  string
		weeks int
		want  model.Stage
	}{
		{"Week 0", 0, model.StagePostpartumEarly},
		{"Week 6 boundary", 6, model.StagePostpartumEarly},
		{"Week 7", 7, model.StagePostpartumLate},
		{"Week 52", 52, model.StagePostpartumLate},
		{"Negative weeks", -1, model.StageUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stage.Classify(stage.Input{PostpartumWeeks: intPtr(tt.weeks)})
			if got != tt.want {
				t.Errorf("Classify(%d postpartum weeks) = %v, want %v", tt.weeks, got, tt.want)
			}
		})
	}
}

func TestClassifyFallbacks(t *testing.T) {
	t.Run("Missing Input", func(t *testing.T) {
		if got := stage.Classify(stage.Input{}); got != model.StageUnclassified {
			t.Errorf("empty input = %v, want Unclassified", got)
		}
	})

	t.Run("Preconception", func(t *testing.T) {
		if got := stage.Classify(stage.Input{Preconception: true}); got != model.StagePreconception {
			t.Errorf("preconception input = %v, want Preconception", got)
		}
	})

	t.Run("Postpartum Wins Over Stale LMP", func(t *testing.T) {
		got := stage.Classify(stage.Input{
			GestationalWeeks: intPtr(44),
			PostpartumWeeks:  intPtr(2),
		})
		if got != model.StagePostpartumEarly {
			t.Errorf("got %v, want PostpartumEarly", got)
		}
	})
}

func TestFromProfile(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	t.Run("Nil Profile", func(t *testing.T) {
		if got := stage.FromProfile(nil, now); got != model.StageUnclassified {
			t.Errorf("got %v, want Unclassified", got)
		}
	})

	t.Run("Pregnant Week 30", func(t *testing.T) {
		lmp := now.AddDate(0, 0, -30*7)
		p := &model.Profile{UserID: "u1", LMPDate: &lmp}
		if got := stage.FromProfile(p, now); got != model.StageThirdTrimester {
			t.Errorf("got %v, want ThirdTrimester", got)
		}
	})

	t.Run("Delivered Three Weeks Ago", func(t *testing.T) {
		lmp := now.AddDate(0, 0, -43*7)
		delivered := now.AddDate(0, 0, -21)
		p := &model.Profile{UserID: "u1", LMPDate: &lmp, DeliveryDate: &delivered}
		if got := stage.FromProfile(p, now); got != model.StagePostpartumEarly {
			t.Errorf("got %v, want PostpartumEarly", got)
		}
	})

	t.Run("No Dates", func(t *testing.T) {
		p := &model.Profile{UserID: "u1"}
		if got := stage.FromProfile(p, now); got != model.StageUnclassified {
			t.Errorf("got %v, want Unclassified", got)
		}
	})
}
