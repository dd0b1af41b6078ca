package transparency

import (
	"context"

	"transparency-ai/internal/category"
	"transparency-ai/internal/shared/metrics"
	"transparency-ai/internal/shared/telemetry"
)

// Request is the input to a transparency score calculation.
type Request struct {
	ProductName string
	Category    string
	Answers     []Answer
}

// Result is the scored output returned to clients.
type Result struct {
	OverallScore    float64   `json:"overall_score"`
	ScoreLevel      Level     `json:"score_level"`
	ScoreColor      Color     `json:"score_color"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	TotalAnswers    int       `json:"total_answers"`
}

// Service computes transparency scores.
type Service struct {
	Recommender Recommender
}

// NewService constructs a Service.
func NewService(recommender Recommender) *Service {
	return &Service{Recommender: recommender}
}

// Calculate scores req. It returns ErrInvalidInput when no answers are given.
func (s *Service) Calculate(ctx context.Context, req Request) (Result, error) {
	if len(req.Answers) == 0 {
		return Result{}, ErrInvalidInput
	}

	telemetry.Info("transparency.calculate", map[string]any{
		"product_name":  req.ProductName,
		"category":      req.Category,
		"rule_table":    category.IsKnown(req.Category),
		"total_answers": len(req.Answers),
	})

	breakdown := Score(req.Answers, req.Category)
	overall := breakdown.Overall()
	level, color := Band(overall)
	recs := s.Recommender.Recommend(ctx, req.ProductName, req.Category, req.Answers, breakdown)

	metrics.IncTransparencyScore()
	return Result{
		OverallScore:    round1(overall),
		ScoreLevel:      level,
		ScoreColor:      color,
		Breakdown:       breakdown.Rounded(),
		Recommendations: recs,
		ProductName:     req.ProductName,
		Category:        req.Category,
		TotalAnswers:    len(req.Answers),
	}, nil
}
