package content

import "maatricare/internal/model"

// NutritionGuidance is the static stage-appropriate dietary advice attached
// to nutrition replies. Food names reflect the Bangladeshi deployment
// context.
type NutritionGuidance struct {
	FocusAreas       []string
	RecommendedFoods []string
	FoodsToAvoid     []string
	Tips             []string
}

var nutritionByStage = map[model.Stage]NutritionGuidance{
	model.StageFirstTrimester: {
		FocusAreas:       []string{"folic acid", "managing nausea", "small frequent meals"},
		RecommendedFoods: []string{"dal", "leafy greens (shak)", "eggs", "banana", "yogurt"},
		FoodsToAvoid:     []string{"raw or undercooked fish", "unpasteurized milk", "excess caffeine"},
		Tips: []string{
			"Eat small meals every two to three hours to ease nausea.",
			"Take your folic acid supplement daily.",
		},
	},
	model.StageSecondTrimester: {
		FocusAreas:       []string{"iron", "calcium", "protein for growth"},
		RecommendedFoods: []string{"hilsa or rui fish", "dal", "milk", "spinach", "orange"},
		FoodsToAvoid:     []string{"high-mercury fish", "unpasteurized milk", "excess salt"},
		Tips: []string{
			"Pair iron-rich foods with vitamin C sources like orange or lemon.",
			"Aim for three servings of dairy a day for calcium.",
		},
	},
	model.StageThirdTrimester: {
		FocusAreas:       []string{"managing constipation", "managing heartburn", "preparing for breastfeeding"},
		RecommendedFoods: []string{"papaya (ripe)", "oats", "rice", "vegetables", "plenty of water"},
		FoodsToAvoid:     []string{"fried and spicy food late at night", "large heavy meals"},
		Tips: []string{
			"Eat fiber-rich food and drink water to ease constipation.",
			"Stay upright for a while after meals to reduce heartburn.",
		},
	},
	model.StagePostpartumEarly: {
		FocusAreas:       []string{"recovery", "breastfeeding nutrition", "hydration"},
		RecommendedFoods: []string{"dal", "fish", "eggs", "milk", "seasonal fruits"},
		FoodsToAvoid:     []string{"excess caffeine while breastfeeding"},
		Tips: []string{
			"Drink a glass of water each time you breastfeed.",
			"Rest and accept family support with meals.",
		},
	},
	model.StagePostpartumLate: {
		FocusAreas:       []string{"sustained energy", "iron recovery", "balanced meals"},
		RecommendedFoods: []string{"rice", "dal", "vegetables", "fish", "fruits"},
		FoodsToAvoid:     []string{"skipping meals"},
		Tips: []string{
			"Keep iron-rich foods in your diet while recovering.",
		},
	},
}

// generalNutrition is the fallback for preconception and unclassified users.
var generalNutrition = NutritionGuidance{
	FocusAreas:       []string{"balanced diet", "folic acid"},
	RecommendedFoods: []string{"dal", "rice", "vegetables", "fruits", "eggs"},
	FoodsToAvoid:     []string{"excess processed food"},
	Tips: []string{
		"A varied diet of local foods covers most nutritional needs.",
	},
}

// NutritionFor returns guidance for the stage, falling back to general
// guidance for stages without a dedicated entry.
func NutritionFor(st model.Stage) NutritionGuidance {
	if g, ok := nutritionByStage[st]; ok {
		return g
	}
	return generalNutrition
}

// videoQueryByStage picks a safe-search query for supplementary exercise or
// relaxation videos per stage.
var videoQueryByStage = map[model.Stage]string{
	model.StageFirstTrimester:  "prenatal yoga first trimester",
	model.StageSecondTrimester: "prenatal yoga second trimester",
	model.StageThirdTrimester:  "third trimester safe exercises",
	model.StagePostpartumEarly: "gentle postpartum recovery exercises",
	model.StagePostpartumLate:  "postnatal exercise routine",
}

const relaxationQuery = "pregnancy relaxation meditation"

// VideoQueryFor returns a video search query for the stage, or a general
// relaxation query when no stage-specific one exists.
func VideoQueryFor(st model.Stage) string {
	if q, ok := videoQueryByStage[st]; ok {
		return q
	}
	return relaxationQuery
}

// EmergencySteps are the immediate action steps included in every emergency
// reply, independent of the renderer.
var EmergencySteps = []string{
	"Call emergency services now.",
	"Do not travel alone; ask someone to accompany you.",
	"Bring your antenatal card if you have one.",
}

// WarningSigns keyed by stage, shown alongside urgent advice.
var warningSignsByStage = map[model.Stage][]string{
	model.StageFirstTrimester:  {"heavy bleeding", "severe cramping", "high fever"},
	model.StageSecondTrimester: {"bleeding", "severe headache with blurred vision", "fluid leakage"},
	model.StageThirdTrimester:  {"reduced fetal movement", "bleeding", "regular painful contractions before week 37"},
	model.StagePostpartumEarly: {"heavy bleeding", "fever", "severe abdominal pain", "thoughts of self-harm"},
}

// WarningSignsFor returns stage-specific warning signs, or a general list.
func WarningSignsFor(st model.Stage) []string {
	if signs, ok := warningSignsByStage[st]; ok {
		return signs
	}
	return []string{"heavy bleeding", "severe pain", "high fever"}
}
