package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"transparency-ai/internal/shared/metrics"
	"transparency-ai/internal/shared/telemetry"
	"transparency-ai/internal/shared/util"
)

const defaultTimeout = 30 * time.Second

// Orchestrator makes single, unretried model calls on behalf of handlers.
// A nil *Orchestrator, or one built without a client, means AI is disabled.
type Orchestrator struct {
	client  Client
	timeout time.Duration
	limiter *rate.Limiter
}

// OrchestratorOption customizes an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithTimeout bounds each outbound call. Non-positive values keep the default.
func WithTimeout(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithRequestsPerMinute caps outbound calls. Zero disables the limiter.
func WithRequestsPerMinute(rpm int) OrchestratorOption {
	return func(o *Orchestrator) {
		if rpm <= 0 {
			o.limiter = nil
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), max(1, rpm/60))
	}
}

// NewOrchestrator wraps client. client may be nil.
func NewOrchestrator(client Client, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{client: client, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Enabled reports whether a model client is configured.
func (o *Orchestrator) Enabled() bool {
	return o != nil && o.client != nil
}

// Model returns the configured model name, or "disabled".
func (o *Orchestrator) Model() string {
	if !o.Enabled() {
		return "disabled"
	}
	return o.client.Model()
}

// Provider returns the configured provider label, or "disabled".
func (o *Orchestrator) Provider() string {
	if !o.Enabled() {
		return "disabled"
	}
	return o.client.Provider()
}

// Ask sends prompt to the model. It returns ErrServiceUnavailable when AI is disabled and
// a *GenerationError for any transport, API, or timeout failure.
func (o *Orchestrator) Ask(ctx context.Context, prompt string, opts Options) (string, error) {
	if !o.Enabled() {
		return "", ErrServiceUnavailable
	}
	provider := o.client.Provider()

	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			metrics.IncAICallFailure()
			return "", &GenerationError{Provider: provider, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	telemetry.Debug("llm.request", map[string]any{
		"provider":       provider,
		"model":          o.client.Model(),
		"prompt_digest":  util.Digest(prompt),
		"prompt_preview": util.Preview(prompt, 50),
		"max_tokens":     opts.MaxTokens,
	})

	metrics.IncAICall()
	start := time.Now()
	text, err := o.client.Generate(callCtx, prompt, opts)
	elapsed := time.Since(start)
	metrics.ObserveAICallDurationMs(float64(elapsed.Microseconds()) / 1000.0)

	if err != nil {
		metrics.IncAICallFailure()
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("request timed out after %s: %w", o.timeout, err)
		}
		telemetry.Warn("llm.failed", map[string]any{
			"provider":      provider,
			"model":         o.client.Model(),
			"prompt_digest": util.Digest(prompt),
			"duration_ms":   elapsed.Milliseconds(),
			"error":         err.Error(),
		})
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			return "", genErr
		}
		return "", &GenerationError{Provider: provider, Err: err}
	}

	telemetry.Debug("llm.response", map[string]any{
		"provider":      provider,
		"prompt_digest": util.Digest(prompt),
		"duration_ms":   elapsed.Milliseconds(),
		"response_len":  len(text),
	})
	return text, nil
}
