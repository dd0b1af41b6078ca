package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/llm"
)

type stubClient struct{}

func (stubClient) Generate(context.Context, string, llm.Options) (string, error) { return "", nil }
func (stubClient) Model() string                                                 { return "gemini-1.5-flash" }
func (stubClient) Provider() string                                              { return "gemini" }

func TestStatusReflectsModel(t *testing.T) {
	cases := []struct {
		name     string
		ai       *llm.Orchestrator
		keySet   bool
		model    string
		provider string
		enabled  bool
	}{
		{"configured", llm.NewOrchestrator(stubClient{}), true, "gemini-1.5-flash", "gemini", true},
		{"disabled", llm.NewOrchestrator(nil), false, "disabled", "disabled", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService("Altibbe AI Service", tc.ai, tc.keySet)

			status := svc.Status()
			if status.Status != "healthy" || status.AIModel != tc.model || status.AIProvider != tc.provider {
				t.Fatalf("unexpected status %+v", status)
			}
			if status.APIKeyConfigured != tc.keySet {
				t.Fatalf("expected api_key_configured=%v", tc.keySet)
			}

			info := svc.Index()
			if info.Status != "running" || info.AIEnabled != tc.enabled || info.Service != "Altibbe AI Service" {
				t.Fatalf("unexpected index %+v", info)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService("svc", llm.NewOrchestrator(nil), false).RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var index map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &index); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	endpoints, ok := index["endpoints"].(map[string]any)
	if !ok || endpoints["transparency_score"] != "/api/transparency-score" {
		t.Fatalf("unexpected endpoints %v", index["endpoints"])
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "healthy" || health["ai_model"] != "disabled" || health["api_key_configured"] != false {
		t.Fatalf("unexpected health %v", health)
	}
}
