package generation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/server/respond"
)

const unconfiguredMessage = "Please set an AI provider API key in environment variables"

// Handler exposes direct generation and chat over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.POST("/chat", h.chat)
}

type generateRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

type chatRequest struct {
	Message string `json:"message"`
	Context []Turn `json:"context"`
}

type replyResponse struct {
	Success bool `json:"success"`
	Reply
}

func (h *Handler) generate(c *gin.Context) {
	if !h.Svc.Enabled() {
		respond.Error(c, http.StatusServiceUnavailable, "AI model not configured", unconfiguredMessage)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing prompt", "Please provide a prompt in the request body")
		return
	}

	reply, err := h.Svc.Generate(c.Request.Context(), GenerateRequest{
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		h.fail(c, err, "Missing prompt", "Please provide a prompt in the request body", "Generation failed")
		return
	}
	respond.OK(c, replyResponse{Success: true, Reply: reply})
}

func (h *Handler) chat(c *gin.Context) {
	if !h.Svc.Enabled() {
		respond.Error(c, http.StatusServiceUnavailable, "AI model not configured", unconfiguredMessage)
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing message", "Please provide a message in the request body")
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), ChatRequest{Message: req.Message, Context: req.Context})
	if err != nil {
		h.fail(c, err, "Missing message", "Please provide a message in the request body", "Chat failed")
		return
	}
	respond.OK(c, replyResponse{Success: true, Reply: reply})
}

func (h *Handler) fail(c *gin.Context, err error, inputTitle, inputMessage, failureTitle string) {
	var genErr *llm.GenerationError
	switch {
	case errors.Is(err, llm.ErrServiceUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "AI model not configured", unconfiguredMessage)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, inputTitle, inputMessage)
	case errors.As(err, &genErr):
		respond.Error(c, http.StatusInternalServerError, failureTitle, genErr.Message())
	default:
		respond.Error(c, http.StatusInternalServerError, failureTitle, err.Error())
	}
}
