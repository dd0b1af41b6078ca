package transparency

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/shared/server/respond"
	"transparency-ai/internal/shared/telemetry"
)

// Handler exposes the scoring service over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the scoring route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transparency-score", h.score)
}

type scoreRequest struct {
	ProductName string   `json:"product_name"`
	Category    string   `json:"category"`
	Answers     []Answer `json:"answers"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid input", "Request body must be valid JSON with an answers list")
		return
	}

	result, err := h.Svc.Calculate(c.Request.Context(), Request{
		ProductName: req.ProductName,
		Category:    req.Category,
		Answers:     req.Answers,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Invalid input", "No answers provided")
		default:
			telemetry.Error("transparency.score_failed", map[string]any{"error": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "Score calculation failed", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{
		"success":            true,
		"transparency_score": result,
	})
}
