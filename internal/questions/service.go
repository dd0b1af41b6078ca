package questions

import (
	"context"
	"errors"
	"strings"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/metrics"
	"transparency-ai/internal/shared/telemetry"
	"transparency-ai/internal/shared/util"
)

const (
	maxTokens   = 1000
	temperature = 0.7

	parseFailureNote = "Used fallback questions due to AI response parsing issue"
	errorNotePrefix  = "Used fallback questions due to error: "
	fallbackModel    = "fallback"
)

// Request describes the product the questions are for.
type Request struct {
	Category    string
	Description string
	ProductName string
}

// Result is the question set returned to clients.
type Result struct {
	Questions []GeneratedQuestion `json:"questions"`
	Model     string              `json:"model"`
	Category  string              `json:"category"`
	Count     int                 `json:"count"`
	Note      string              `json:"note,omitempty"`
}

// Service generates follow-up questions, falling back to the fixed bank when
// the model fails or replies with something unusable.
type Service struct {
	AI *llm.Orchestrator
}

// NewService constructs a Service.
func NewService(ai *llm.Orchestrator) *Service {
	return &Service{AI: ai}
}

// Enabled reports whether a model is configured.
func (s *Service) Enabled() bool {
	return s.AI.Enabled()
}

// Generate returns up to three questions for req. Model failures never surface
// as errors; only a disabled model or an empty request does.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if !s.AI.Enabled() {
		return Result{}, llm.ErrServiceUnavailable
	}
	if req.Category == "" && req.Description == "" {
		return Result{}, ErrInvalidInput
	}

	telemetry.Info("questions.generate", map[string]any{
		"category":            req.Category,
		"product_name":        req.ProductName,
		"description_preview": util.Preview(req.Description, 50),
	})

	reply, err := s.AI.Ask(ctx, buildPrompt(req), llm.Options{
		MaxTokens:   maxTokens,
		Temperature: llm.Temperature(temperature),
	})
	if err != nil {
		msg := err.Error()
		var genErr *llm.GenerationError
		if errors.As(err, &genErr) {
			msg = genErr.Message()
		}
		return s.fallback(req, fallbackModel, errorNotePrefix+msg, err), nil
	}

	raw, err := llm.ParseStructuredReply[[]any](strings.TrimSpace(reply))
	if err != nil {
		return s.fallback(req, s.AI.Model()+" (fallback)", parseFailureNote, err), nil
	}

	questions := validate(raw)
	if len(questions) == 0 {
		return s.fallback(req, s.AI.Model()+" (fallback)", parseFailureNote, errors.New("no valid questions in reply")), nil
	}

	return Result{
		Questions: questions,
		Model:     s.AI.Model(),
		Category:  req.Category,
		Count:     len(questions),
	}, nil
}

func (s *Service) fallback(req Request, model, note string, cause error) Result {
	metrics.IncAIFallback()
	telemetry.Warn("questions.fallback", map[string]any{
		"category": req.Category,
		"model":    model,
		"error":    cause.Error(),
	})

	questions := Fallback(req.Category, req.ProductName)
	return Result{
		Questions: questions,
		Model:     model,
		Category:  req.Category,
		Count:     len(questions),
		Note:      note,
	}
}
