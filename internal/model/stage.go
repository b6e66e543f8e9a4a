package model

// Stage is the maternal stage a user is classified into. Classification is
// total: users with insufficient data land in StageUnclassified rather than
// failing.
type Stage string

const (
	StagePreconception   Stage = "preconception"
	StageFirstTrimester  Stage = "first_trimester"  // weeks 0-13
	StageSecondTrimester Stage = "second_trimester" // weeks 14-27
	StageThirdTrimester  Stage = "third_trimester"  // week 28 to delivery
	StagePostpartumEarly Stage = "postpartum_early" // weeks 0-6 after delivery
	StagePostpartumLate  Stage = "postpartum_late"  // after week 6
	StageUnclassified    Stage = "unclassified"
)

// Pregnant reports whether the stage is one of the three trimesters.
func (s Stage) Pregnant() bool {
	return s == StageFirstTrimester || s == StageSecondTrimester || s == StageThirdTrimester
}

// Postpartum reports whether the stage is a postpartum stage.
func (s Stage) Postpartum() bool {
	return s == StagePostpartumEarly || s == StagePostpartumLate
}
