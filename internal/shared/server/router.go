package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/generation"
	"transparency-ai/internal/questions"
	"transparency-ai/internal/services/health"
	"transparency-ai/internal/shared/config"
	"transparency-ai/internal/shared/metrics"
	"transparency-ai/internal/shared/server/middleware"
	"transparency-ai/internal/transparency"
)

const aiRateLimitGroup = "AI"

// AvailableEndpoints is advertised in 404 responses.
var AvailableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST /api/generate",
	"POST /api/chat",
	"POST /api/generate-questions",
	"POST /api/transparency-score",
}

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config              config.Config
	Health              *health.Service
	GenerationHandler   *generation.Handler
	QuestionsHandler    *questions.Handler
	TransparencyHandler *transparency.Handler
	RateLimiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.NoRoute(notFound)

	if deps.Health != nil {
		deps.Health.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	if deps.TransparencyHandler != nil {
		deps.TransparencyHandler.RegisterRoutes(api)
	}

	ai := api.Group("", middleware.RateLimit(middleware.RateLimitConfig{
		Group: aiRateLimitGroup,
		Rule: middleware.RateLimitRule{
			Rate:  deps.Config.RateLimitAIRPS,
			Burst: deps.Config.RateLimitAIBurst,
		},
		Limiter: deps.RateLimiter,
	}))
	if deps.GenerationHandler != nil {
		deps.GenerationHandler.RegisterRoutes(ai)
	}
	if deps.QuestionsHandler != nil {
		deps.QuestionsHandler.RegisterRoutes(ai)
	}

	return r
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":             false,
		"error":               "Endpoint not found",
		"message":             "No route matches " + c.Request.Method + " " + c.Request.URL.Path,
		"available_endpoints": AvailableEndpoints,
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
