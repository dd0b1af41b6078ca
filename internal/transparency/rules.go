package transparency

import "transparency-ai/internal/category"

// transparencyKeywords mark an answer as transparency-indicating.
var transparencyKeywords = []string{
	"certified", "organic", "tested", "verified", "compliant", "standard",
	"warranty", "guarantee", "documentation", "certificate", "audit",
	"eco-friendly", "sustainable", "ethical", "cruelty-free",
}

var categoryRequirements = map[string][]string{
	category.Electronics:  {"warranty", "safety", "energy", "certification"},
	category.FoodBeverage: {"expiry", "organic", "allergen", "shelf"},
	category.Clothing:     {"material", "care", "size", "manufacturing"},
	category.HealthBeauty: {"ingredients", "tested", "dermatolog", "expiry"},
}

var defaultRequirements = []string{"quality", "origin", "standard"}

// requiredTerms returns the compliance terms for category; unknown categories
// use the default list.
func requiredTerms(name string) []string {
	if terms, ok := categoryRequirements[name]; ok {
		return terms
	}
	return defaultRequirements
}

// shortAnswers never count as meaningful on their own.
var shortAnswers = map[string]bool{"yes": true, "no": true, "n/a": true, "na": true}

// Level is the human-readable score band.
type Level string

const (
	LevelExcellent        Level = "Excellent"
	LevelGood             Level = "Good"
	LevelFair             Level = "Fair"
	LevelNeedsImprovement Level = "Needs Improvement"
)

// Color is the display color paired with a Level.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

var scoreBands = []struct {
	min   float64
	level Level
	color Color
}{
	{min: 80, level: LevelExcellent, color: ColorGreen},
	{min: 60, level: LevelGood, color: ColorBlue},
	{min: 40, level: LevelFair, color: ColorYellow},
}

// Band maps an overall score to its level and color.
func Band(overall float64) (Level, Color) {
	for _, b := range scoreBands {
		if overall >= b.min {
			return b.level, b.color
		}
	}
	return LevelNeedsImprovement, ColorRed
}
