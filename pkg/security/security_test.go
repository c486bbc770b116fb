package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"))
}

func TestRateLimiterUpdate(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))

	rl.Update(10, time.Millisecond*10)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))

	rl.Update(0, time.Second)
	assert.Equal(t, 10, rl.burst)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"http://ok.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://ok.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://ok.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
