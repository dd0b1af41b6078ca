package questions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/llm"
	"transparency-ai/internal/shared/server/respond"
)

// Handler exposes question generation over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the question route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-questions", h.generate)
}

type generateRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	ProductName string `json:"product_name"`
}

type generateResponse struct {
	Success bool `json:"success"`
	Result
}

func (h *Handler) generate(c *gin.Context) {
	if !h.Svc.Enabled() {
		respond.Error(c, http.StatusServiceUnavailable, "AI model not configured", "Please set an AI provider API key in environment variables")
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing request data", "Please provide request body with category or description")
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), Request{
		Category:    req.Category,
		Description: req.Description,
		ProductName: req.ProductName,
	})
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrServiceUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "AI model not configured", "Please set an AI provider API key in environment variables")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Missing required fields", "Please provide either category or description")
		default:
			respond.Error(c, http.StatusInternalServerError, "Question generation failed", err.Error())
		}
		return
	}

	respond.OK(c, generateResponse{Success: true, Result: result})
}
