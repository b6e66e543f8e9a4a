package stage

import (
	"time"

	"maatricare/internal/model"
)

// Trimester boundaries in completed gestational weeks. Edge weeks belong to
// the earlier range (inclusive upper bound as listed).
const (
	FirstTrimesterEndWeek  = 13
	SecondTrimesterEndWeek = 27

	// MaxGestationalWeek is the highest week still treated as a valid
	// pregnancy; anything beyond it is bad data, not a 46-week pregnancy.
	MaxGestationalWeek = 45

	// PostpartumEarlyEndWeek splits early from late postpartum.
	PostpartumEarlyEndWeek = 6
)

// Input carries the signals the classifier operates on. Pointers distinguish
// "unknown" from zero.
type Input struct {
	GestationalWeeks *int
	PostpartumWeeks  *int
	Preconception    bool // user stated they are planning, not pregnant
}

// Classify maps an Input to a stage. It is a total function: every input,
// including missing or out-of-range data, maps to a defined stage.
func Classify(in Input) model.Stage {
	// Delivery ends the pregnancy, so postpartum data wins over a stale LMP.
	if in.PostpartumWeeks != nil {
		weeks := *in.PostpartumWeeks
		if weeks < 0 {
			return model.StageUnclassified
		}
		if weeks <= PostpartumEarlyEndWeek {
			return model.StagePostpartumEarly
		}
		return model.StagePostpartumLate
	}

	if in.GestationalWeeks != nil {
		weeks := *in.GestationalWeeks
		switch {
		case weeks < 0 || weeks > MaxGestationalWeek:
			return model.StageUnclassified
		case weeks <= FirstTrimesterEndWeek:
			return model.StageFirstTrimester
		case weeks <= SecondTrimesterEndWeek:
			return model.StageSecondTrimester
		default:
			return model.StageThirdTrimester
		}
	}

	if in.Preconception {
		return model.StagePreconception
	}

	return model.StageUnclassified
}

// FromProfile derives the classifier input from a profile at the given time
// and classifies it.
func FromProfile(p *model.Profile, at time.Time) model.Stage {
	if p == nil {
		return model.StageUnclassified
	}

	in := Input{}
	if weeks, ok := p.PostpartumWeek(at); ok {
		in.PostpartumWeeks = &weeks
	} else if weeks, ok := p.GestationalWeek(at); ok {
		in.GestationalWeeks = &weeks
	}

	return Classify(in)
}
