package transparency

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/metrics"
	"transparency-ai/internal/shared/telemetry"
)

const maxRecommendations = 3

var areaRecommendations = map[string]string{
	"completeness": "Provide more detailed answers to all questions to improve transparency",
	"quality":      "Include more specific details and explanations in your responses",
	"transparency": "Add more certifications, standards compliance, and quality documentation",
	"compliance":   "Ensure all category-specific requirements and standards are addressed",
}

const (
	certificationAdvice = "Consider obtaining relevant certifications for your product category"
	documentationAdvice = "Provide more comprehensive documentation and detailed product information"
	fillerAdvice        = "Continue to improve product transparency and documentation"
)

// BasicRecommendations returns exactly three rule-based suggestions for b.
func BasicRecommendations(b Breakdown) []string {
	recs := make([]string, 0, maxRecommendations)

	lowest := b.areas()[0]
	for _, a := range b.areas()[1:] {
		if a.value < lowest.value {
			lowest = a
		}
	}
	recs = append(recs, areaRecommendations[lowest.name])

	if b.Transparency < 70 {
		recs = append(recs, certificationAdvice)
	}
	if b.Quality < 70 {
		recs = append(recs, documentationAdvice)
	}
	for len(recs) < maxRecommendations {
		recs = append(recs, fillerAdvice)
	}
	return recs[:maxRecommendations]
}

// Recommender produces improvement suggestions, preferring the model and
// falling back to BasicRecommendations on any failure.
type Recommender struct {
	AI *llm.Orchestrator
}

// Recommend always returns exactly three non-empty suggestions. Model failures are
// logged and absorbed.
func (r Recommender) Recommend(ctx context.Context, productName, category string, answers []Answer, b Breakdown) []string {
	if !r.AI.Enabled() {
		return BasicRecommendations(b)
	}

	recs, err := r.fromModel(ctx, productName, category, len(answers), b)
	if err != nil {
		metrics.IncAIFallback()
		telemetry.Warn("recommendations.fallback", map[string]any{
			"product_name": productName,
			"category":     category,
			"malformed":    errors.Is(err, llm.ErrMalformedResponse),
			"error":        err.Error(),
		})
		return BasicRecommendations(b)
	}
	return recs
}

func (r Recommender) fromModel(ctx context.Context, productName, category string, answerCount int, b Breakdown) ([]string, error) {
	reply, err := r.AI.Ask(ctx, recommendationPrompt(productName, category, answerCount, b), llm.Options{})
	if err != nil {
		return nil, err
	}
	items, err := llm.ParseStructuredReply[[]any](reply)
	if err != nil {
		return nil, err
	}

	recs := make([]string, 0, maxRecommendations)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		recs = append(recs, s)
		if len(recs) == maxRecommendations {
			return recs, nil
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no usable recommendations", llm.ErrMalformedResponse)
	}
	return padRecommendations(recs, b), nil
}

// padRecommendations tops up a short model list with unused rule-based suggestions.
func padRecommendations(recs []string, b Breakdown) []string {
	seen := make(map[string]bool, len(recs))
	for _, r := range recs {
		seen[r] = true
	}
	for _, basic := range BasicRecommendations(b) {
		if len(recs) == maxRecommendations {
			break
		}
		if seen[basic] {
			continue
		}
		seen[basic] = true
		recs = append(recs, basic)
	}
	for len(recs) < maxRecommendations {
		recs = append(recs, fillerAdvice)
	}
	return recs
}

func recommendationPrompt(productName, category string, answerCount int, b Breakdown) string {
	return fmt.Sprintf(`
Based on the transparency assessment for "%s" (Category: %s), provide 3 specific recommendations to improve transparency.

Answers reviewed: %d

Current scores:
- Completeness: %.1f/100
- Quality: %.1f/100
- Transparency: %.1f/100
- Compliance: %.1f/100

Generate practical, actionable recommendations that would help improve the lowest-scoring areas. Focus on what the product seller could realistically implement.

Format as JSON array:
[
  "Specific recommendation 1",
  "Specific recommendation 2",
  "Specific recommendation 3"
]
`, productName, category, answerCount, b.Completeness, b.Quality, b.Transparency, b.Compliance)
}
