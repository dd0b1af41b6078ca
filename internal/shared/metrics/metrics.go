package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	aiCallsTotal            atomic.Uint64
	aiCallFailuresTotal     atomic.Uint64
	aiFallbacksTotal        atomic.Uint64
	transparencyScoresTotal atomic.Uint64

	aiCallDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAICall counts an outbound model call.
func IncAICall() {
	aiCallsTotal.Add(1)
}

// IncAICallFailure counts an outbound model call that returned an error.
func IncAICallFailure() {
	aiCallFailuresTotal.Add(1)
}

// IncAIFallback counts a request served by a deterministic fallback.
func IncAIFallback() {
	aiFallbacksTotal.Add(1)
}

// IncTransparencyScore counts a computed transparency score.
func IncTransparencyScore() {
	transparencyScoresTotal.Add(1)
}

// ObserveAICallDurationMs records an outbound call duration in milliseconds.
func ObserveAICallDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	aiCallDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "ai_calls_total", "Total outbound model calls", aiCallsTotal.Load())
	writeCounter(&buf, "ai_call_failures_total", "Total outbound model calls that failed", aiCallFailuresTotal.Load())
	writeCounter(&buf, "ai_fallbacks_total", "Total responses served by a deterministic fallback", aiFallbacksTotal.Load())
	writeCounter(&buf, "transparency_scores_total", "Total transparency scores computed", transparencyScoresTotal.Load())
	writeHistogram(&buf, "ai_call_duration_ms", "Outbound model call duration in milliseconds", aiCallDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
