package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/articles/:slug", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:slug", "200"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles/hello", nil)
	r.ServeHTTP(w, req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:slug", "200"))
	if after != before+1 {
		t.Errorf("expected request counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRecordModeration(t *testing.T) {
	before := testutil.ToFloat64(commentsModerated.WithLabelValues("approved"))
	RecordModeration("approved")
	after := testutil.ToFloat64(commentsModerated.WithLabelValues("approved"))

	if after != before+1 {
		t.Errorf("expected moderation counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRecordPurge(t *testing.T) {
	before := testutil.ToFloat64(commentsPurged)
	RecordPurge(3)
	after := testutil.ToFloat64(commentsPurged)

	if after != before+3 {
		t.Errorf("expected purge counter to increase by 3, got %v -> %v", before, after)
	}
}
