package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	header := resp.Header().Get("X-Request-Id")
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected uuid request id, got %q", header)
	}
	if seen != header {
		t.Fatalf("context id %q does not match header %q", seen, header)
	}
}

func TestRequestIDReusesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-Id"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}
