package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(rps rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(rps, burst), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	router := rateLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_RejectsPastBurst(t *testing.T) {
	router := rateLimitedRouter(1, 2)

	var last int
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestRateLimit_TracksClientsSeparately(t *testing.T) {
	router := rateLimitedRouter(1, 1)

	req, _ := http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// first client is out of tokens, a different IP is not
	req, _ = http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	req, _ = http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
