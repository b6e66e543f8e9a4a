package usecase

import "maatricare/internal/model"

// Visit cadence per WHO-style antenatal care guidance: monthly visits
// through week 27, fortnightly weeks 28-35, weekly from week 36, and one
// postpartum visit at week 6.
const (
	earlyIntervalWeeks = 4
	lateIntervalWeeks  = 2
	finalIntervalWeeks = 1

	fortnightlyFromWeek = 28
	weeklyFromWeek      = 36
	lastAntenatalWeek   = 41

	postpartumVisitWeek = 6
)

// nextVisitWeek computes the target week for the next visit. fromWeek is the
// last confirmed visit's week, or the current week when there is none.
// Returns false when the cadence table has no further visit.
func nextVisitWeek(st model.Stage, fromWeek int) (int, bool) {
	switch st {
	case model.StageFirstTrimester, model.StageSecondTrimester, model.StageThirdTrimester:
		week := fromWeek + intervalFor(fromWeek)
		// Dense late-pregnancy cadence overrides a coarse jump across
		// the boundary, e.g. week 26 + 4 lands at 30, not 28.
		if fromWeek < fortnightlyFromWeek && week > fortnightlyFromWeek {
			week = fortnightlyFromWeek
		}
		if week > lastAntenatalWeek {
			return 0, false
		}
		return week, true

	case model.StagePostpartumEarly:
		if fromWeek >= postpartumVisitWeek {
			return 0, false
		}
		return postpartumVisitWeek, true

	default:
		return 0, false
	}
}

func intervalFor(week int) int {
	switch {
	case week >= weeklyFromWeek:
		return finalIntervalWeeks
	case week >= fortnightlyFromWeek:
		return lateIntervalWeeks
	default:
		return earlyIntervalWeeks
	}
}
