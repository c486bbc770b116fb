package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	Init()
	Init()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/things/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", PrometheusHandler())

	before := testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/api/things/:id", "204"))
	for _, path := range []string{"/api/things/1", "/api/things/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Equal(t, before+2, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "/api/things/:id", "204")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(RequestCounter.WithLabelValues("GET", "unmatched", "404")), 1.0)

	MintAttempts.WithLabelValues("success").Inc()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "compass_nft_mint_attempts_total"))
}
