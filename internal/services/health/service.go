package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/server/respond"
)

// Endpoints lists the public routes advertised by the index and 404 bodies.
var Endpoints = map[string]string{
	"health":             "/health",
	"generate":           "/api/generate",
	"chat":               "/api/chat",
	"generate_questions": "/api/generate-questions",
	"transparency_score": "/api/transparency-score",
}

// Info is the service index payload.
type Info struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	AIEnabled bool              `json:"ai_enabled"`
	Endpoints map[string]string `json:"endpoints"`
}

// Status is the detailed health payload.
type Status struct {
	Status           string `json:"status"`
	AIModel          string `json:"ai_model"`
	AIProvider       string `json:"ai_provider"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// Service reports service identity and model availability.
type Service struct {
	name             string
	ai               *llm.Orchestrator
	apiKeyConfigured bool
}

// NewService constructs a new health service.
func NewService(name string, ai *llm.Orchestrator, apiKeyConfigured bool) *Service {
	return &Service{name: name, ai: ai, apiKeyConfigured: apiKeyConfigured}
}

// Index returns the service description.
func (s *Service) Index() Info {
	return Info{
		Service:   s.name,
		Status:    "running",
		AIEnabled: s.ai.Enabled(),
		Endpoints: Endpoints,
	}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{
		Status:           "healthy",
		AIModel:          s.ai.Model(),
		AIProvider:       s.ai.Provider(),
		APIKeyConfigured: s.apiKeyConfigured,
	}
}

// RegisterRoutes attaches GET / and GET /health.
func (s *Service) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, s.Index())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, s.Status())
	})
}
