package questions

import (
	"fmt"
	"strings"

	"transparency-ai/internal/category"
)

// Question types accepted from the model.
const (
	TypeText    = "text"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeSelect  = "select"
)

// GeneratedQuestion is one follow-up question for a product form.
type GeneratedQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type template struct {
	id       string
	format   string
	typ      string
	required bool
}

var categoryTemplates = map[string][]template{
	category.Electronics: {
		{"warranty_period", "How long is the warranty for %s?", TypeText, true},
		{"energy_efficiency", "Is %s energy efficient?", TypeBoolean, true},
		{"safety_certifications", "What safety certifications does %s have?", TypeText, true},
	},
	category.FoodBeverage: {
		{"expiry_shelf_life", "What is the shelf life of %s?", TypeText, true},
		{"organic_certified", "Is %s certified organic?", TypeBoolean, false},
		{"allergen_information", "Does %s contain any common allergens?", TypeText, true},
	},
	category.Clothing: {
		{"material_composition", "What materials is %s made from?", TypeText, true},
		{"care_instructions", "How should I care for %s?", TypeText, true},
		{"size_availability", "What sizes are available for %s?", TypeText, false},
	},
	category.HealthBeauty: {
		{"ingredients_list", "What are the main ingredients in %s?", TypeText, true},
		{"skin_tested", "Has %s been tested for sensitive skin?", TypeBoolean, true},
		{"expiry_date", "What is the shelf life of %s?", TypeText, true},
	},
}

var defaultTemplates = []template{
	{"quality_standards", "What quality standards does %s meet?", TypeText, true},
	{"country_of_origin", "Where is %s manufactured?", TypeText, true},
	{"customer_support", "What customer support is available for %s?", TypeText, false},
}

// Fallback returns the fixed three-question set for categoryName, worded
// around productName. It never calls the model.
func Fallback(categoryName, productName string) []GeneratedQuestion {
	ref := "this product"
	if name := strings.TrimSpace(productName); name != "" {
		ref = "this " + name
	}

	templates, ok := categoryTemplates[categoryName]
	if !ok {
		templates = defaultTemplates
	}

	out := make([]GeneratedQuestion, 0, len(templates))
	for _, t := range templates {
		out = append(out, GeneratedQuestion{
			ID:       t.id,
			Question: fmt.Sprintf(t.format, ref),
			Type:     t.typ,
			Required: t.required,
		})
	}
	return out
}
