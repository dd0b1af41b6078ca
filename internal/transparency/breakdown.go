package transparency

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Breakdown holds the four sub-scores, each in [0,100].
type Breakdown struct {
	Completeness float64 `json:"completeness"`
	Quality      float64 `json:"quality"`
	Transparency float64 `json:"transparency"`
	Compliance   float64 `json:"compliance"`
}

// Overall is the unweighted mean of the four sub-scores.
func (b Breakdown) Overall() float64 {
	return (b.Completeness + b.Quality + b.Transparency + b.Compliance) / 4
}

// Rounded returns a copy with each sub-score rounded to one decimal.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Completeness: round1(b.Completeness),
		Quality:      round1(b.Quality),
		Transparency: round1(b.Transparency),
		Compliance:   round1(b.Compliance),
	}
}

// area is a named sub-score. Order matters: it breaks ties for the lowest area.
type area struct {
	name  string
	value float64
}

func (b Breakdown) areas() []area {
	return []area{
		{name: "completeness", value: b.Completeness},
		{name: "quality", value: b.Quality},
		{name: "transparency", value: b.Transparency},
		{name: "compliance", value: b.Compliance},
	}
}

// Score computes the sub-score breakdown for answers. It is pure and never fails;
// an empty list yields all zeros.
func Score(answers []Answer, category string) Breakdown {
	if len(answers) == 0 {
		return Breakdown{}
	}
	return Breakdown{
		Completeness: completeness(answers),
		Quality:      quality(answers),
		Transparency: transparencyScore(answers),
		Compliance:   compliance(answers, category),
	}
}

func completeness(answers []Answer) float64 {
	meaningful := 0
	for _, a := range answers {
		if isMeaningful(a) {
			meaningful++
		}
	}
	return clamp(float64(meaningful) / float64(len(answers)) * 100)
}

func isMeaningful(a Answer) bool {
	if !a.Answer.Truthy() {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(a.Answer.Text()))
	if text == "" {
		return false
	}
	if utf8.RuneCountInString(text) > 3 && !shortAnswers[text] {
		return true
	}
	// Plain positive answers to certification questions still count.
	return (text == "yes" || text == "true") && strings.Contains(a.QuestionID, "certified")
}

func quality(answers []Answer) float64 {
	points := 0
	answered := 0
	for _, a := range answers {
		text := strings.TrimSpace(a.Answer.Text())
		if text == "" {
			continue
		}
		answered++
		points += lengthTier(utf8.RuneCountInString(text))
	}
	if answered == 0 {
		return 0
	}
	return clamp(float64(points) / float64(answered*100) * 100)
}

func lengthTier(n int) int {
	switch {
	case n > 50:
		return 100
	case n > 20:
		return 75
	case n > 10:
		return 50
	default:
		return 25
	}
}

// transparencyScore awards 10 points per keyword-bearing answer and then scales
// the total by 10 again before clamping, so one matching answer saturates.
func transparencyScore(answers []Answer) float64 {
	points := 0
	for _, a := range answers {
		if containsAny(a.lowerText(), transparencyKeywords) {
			points += 10
		}
	}
	return clamp(float64(points * 10))
}

func compliance(answers []Answer, category string) float64 {
	terms := requiredTerms(category)
	points := 0
	for _, a := range answers {
		text := a.lowerText()
		questionID := strings.ToLower(a.QuestionID)
		for _, term := range terms {
			if strings.Contains(text, term) || strings.Contains(questionID, term) {
				points += 25
				break
			}
		}
	}
	return clamp(float64(points))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
