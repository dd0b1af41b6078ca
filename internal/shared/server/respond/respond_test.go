package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"transparency-ai/internal/shared/telemetry"
)

func TestErrorWritesFlatBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	telemetry.SetOutput(&logs)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "Invalid input", "prompt is required")
		c.String(http.StatusOK, "unreachable")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["error"] != "Invalid input" || body["message"] != "prompt is required" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(body) != 3 {
		t.Fatalf("expected exactly 3 keys, got %v", body)
	}
	if !bytes.Contains(logs.Bytes(), []byte(`"http.error"`)) {
		t.Fatalf("expected http.error log line, got %q", logs.String())
	}
}

func TestOKWritesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		OK(c, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"success":true}` {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
