package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncAICall()
	IncAICallFailure()
	IncAIFallback()
	IncTransparencyScore()
	ObserveAICallDurationMs(180)
	ObserveAICallDurationMs(-5)

	out := Render()
	for _, want := range []string{
		"# TYPE ai_calls_total counter",
		"# TYPE ai_call_failures_total counter",
		"# TYPE ai_fallbacks_total counter",
		"# TYPE transparency_scores_total counter",
		"# TYPE ai_call_duration_ms histogram",
		`ai_call_duration_ms_bucket{le="250"}`,
		`ai_call_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, out)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("expected sum 555, got %v", snap.sum)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "h", "test", snap)
	out := buf.String()
	for _, want := range []string{`h_bucket{le="10"} 1`, `h_bucket{le="100"} 2`, `h_bucket{le="+Inf"} 3`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestHandlerServesText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("unexpected content type %q", got)
	}
}
