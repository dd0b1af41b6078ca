package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts text-generation providers.
type Client interface {
	// Generate sends a single prompt and returns the raw text reply.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	// Model returns the configured model name.
	Model() string
	// Provider returns a short provider label, e.g. "gemini".
	Provider() string
}

// Options tunes a single generation call. Zero values leave the provider default in place.
type Options struct {
	MaxTokens   int
	Temperature *float64
}

// Temperature is a helper for building Options literals.
func Temperature(v float64) *float64 {
	return &v
}

var (
	// ErrServiceUnavailable is returned when no model client is configured.
	ErrServiceUnavailable = errors.New("AI model not configured")
	// ErrMalformedResponse is returned when a structured reply cannot be extracted or decoded.
	ErrMalformedResponse = errors.New("malformed model response")
)

// GenerationError wraps a transport, API, or timeout failure from a provider.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Message returns the underlying failure text for user-facing responses.
func (e *GenerationError) Message() string {
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}
