package generation

import (
	"context"
	"strings"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/telemetry"
	"transparency-ai/internal/shared/util"
)

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	defaultRole        = "user"
)

// GenerateRequest is a free-form generation call. Nil fields take the defaults.
type GenerateRequest struct {
	Prompt      string
	MaxTokens   *int
	Temperature *float64
}

// Turn is one prior message in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a conversational call with optional prior turns.
type ChatRequest struct {
	Message string
	Context []Turn
}

// Reply is the model output plus the model that produced it.
type Reply struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

// Service forwards prompts to the model. Failures are returned to the caller.
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

// Generate sends req.Prompt to the model.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Reply, error) {
	if !s.AI.Enabled() {
		return Reply{}, llm.ErrServiceUnavailable
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return Reply{}, ErrInvalidInput
	}

	opts := llm.Options{MaxTokens: defaultMaxTokens, Temperature: llm.Temperature(defaultTemperature)}
	if req.MaxTokens != nil {
		opts.MaxTokens = *req.MaxTokens
	}
	if req.Temperature != nil {
		opts.Temperature = req.Temperature
	}

	telemetry.Info("generation.generate", map[string]any{
		"prompt_preview": util.Preview(req.Prompt, 50),
		"max_tokens":     opts.MaxTokens,
	})

	text, err := s.AI.Ask(ctx, req.Prompt, opts)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Response: text, Model: s.AI.Model()}, nil
}

// Chat folds the conversation into a single prompt and sends it to the model.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (Reply, error) {
	if !s.AI.Enabled() {
		return Reply{}, llm.ErrServiceUnavailable
	}
	if strings.TrimSpace(req.Message) == "" {
		return Reply{}, ErrInvalidInput
	}

	telemetry.Info("generation.chat", map[string]any{
		"message_preview": util.Preview(req.Message, 50),
		"context_turns":   len(req.Context),
	})

	text, err := s.AI.Ask(ctx, BuildConversationPrompt(req.Context, req.Message), llm.Options{})
	if err != nil {
		return Reply{}, err
	}
	return Reply{Response: text, Model: s.AI.Model()}, nil
}

// BuildConversationPrompt renders prior turns as "role: content" lines
// followed by the new user message and an open assistant turn.
func BuildConversationPrompt(turns []Turn, message string) string {
	var b strings.Builder
	for _, t := range turns {
		role := t.Role
		if role == "" {
			role = defaultRole
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(t.Content)
		b.WriteString("\n")
	}
	b.WriteString("user: ")
	b.WriteString(message)
	b.WriteString("\nassistant:")
	return b.String()
}
