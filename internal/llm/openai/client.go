package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"transparency-ai/internal/llm"
)

// Client implements llm.Client on top of an eino chat model, so any
// OpenAI-compatible endpoint can back the service.
type Client struct {
	chat  model.BaseChatModel
	model string
}

// NewClient constructs an OpenAI-compatible client. baseURL may be empty.
func NewClient(ctx context.Context, apiKey, modelName, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(modelName) == "" {
		return nil, fmt.Errorf("AI_MODEL is required for OpenAI")
	}
	cfg := &einoopenai.ChatModelConfig{
		APIKey:  apiKey,
		Model:   strings.TrimSpace(modelName),
		Timeout: timeout,
	}
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		cfg.BaseURL = trimmed
	}
	chat, err := einoopenai.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("openai chat model init: %w", err)
	}
	return newWithChatModel(chat, cfg.Model), nil
}

func newWithChatModel(chat model.BaseChatModel, modelName string) *Client {
	return &Client{chat: chat, model: modelName}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Provider returns "openai".
func (c *Client) Provider() string {
	return "openai"
}

// Generate sends prompt as a single user message.
func (c *Client) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	var modelOpts []model.Option
	if opts.MaxTokens > 0 {
		modelOpts = append(modelOpts, model.WithMaxTokens(opts.MaxTokens))
	}
	if opts.Temperature != nil {
		modelOpts = append(modelOpts, model.WithTemperature(float32(*opts.Temperature)))
	}

	messages := []*schema.Message{
		{Role: schema.User, Content: prompt},
	}
	resp, err := c.chat.Generate(ctx, messages, modelOpts...)
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("openai response missing message")
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
