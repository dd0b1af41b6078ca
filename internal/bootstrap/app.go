package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/generation"
	"transparency-ai/internal/llm"
	"transparency-ai/internal/llm/gemini"
	"transparency-ai/internal/llm/openai"
	"transparency-ai/internal/questions"
	"transparency-ai/internal/services/health"
	"transparency-ai/internal/shared/config"
	"transparency-ai/internal/shared/server"
	"transparency-ai/internal/shared/server/middleware"
	"transparency-ai/internal/shared/telemetry"
	"transparency-ai/internal/transparency"
)

// App holds shared dependencies.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	AI                  *llm.Orchestrator
	Health              *health.Service
	GenerationService   *generation.Service
	QuestionsService    *questions.Service
	TransparencyService *transparency.Service
}

// Build wires services, handlers, and the router. A missing AI credential
// leaves AI disabled; only an invalid provider setup is an error.
func Build(cfg config.Config) (*App, error) {
	client, err := BuildClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithClient(cfg, client), nil
}

// BuildWithClient wires the app around an existing model client. client may be nil.
func BuildWithClient(cfg config.Config, client llm.Client) *App {
	ai := llm.NewOrchestrator(client,
		llm.WithTimeout(cfg.AITimeout),
		llm.WithRequestsPerMinute(cfg.AIRequestsPerMin),
	)

	app := &App{
		Config:              cfg,
		AI:                  ai,
		Health:              health.NewService(cfg.ServiceName, ai, cfg.AIConfigured()),
		GenerationService:   generation.NewService(ai),
		QuestionsService:    questions.NewService(ai),
		TransparencyService: transparency.NewService(transparency.Recommender{AI: ai}),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              cfg,
		Health:              app.Health,
		GenerationHandler:   generation.NewHandler(app.GenerationService),
		QuestionsHandler:    questions.NewHandler(app.QuestionsService),
		TransparencyHandler: transparency.NewHandler(app.TransparencyService),
		RateLimiter:         middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":         cfg.Env,
		"ai_enabled":  ai.Enabled(),
		"ai_provider": ai.Provider(),
		"ai_model":    ai.Model(),
	})
	return app
}

// BuildClient returns the model client for cfg, or nil when no credential is set.
func BuildClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if !cfg.AIConfigured() {
		telemetry.Warn("bootstrap.ai_disabled", map[string]any{
			"provider": cfg.AIProvider,
			"reason":   "api key not configured",
		})
		return nil, nil
	}

	switch cfg.AIProvider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.AIModel, cfg.GeminiBaseURL, cfg.AITimeout)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil
	case config.ProviderOpenAI:
		client, err := openai.NewClient(ctx, cfg.OpenAIAPIKey, cfg.AIModel, cfg.OpenAIBaseURL, cfg.AITimeout)
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AIProvider)
	}
}
