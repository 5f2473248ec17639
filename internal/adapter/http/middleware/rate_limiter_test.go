package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"taskboard/pkg/config"
	"taskboard/pkg/telemetry"
)

func limiterRouter(configs map[string]config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	metrics := telemetry.NewAppMetrics(prometheus.NewRegistry())
	rl := NewRateLimiter(configs, metrics)

	router := gin.New()
	router.Use(rl.Middleware())

	router.GET("/todos", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	return router
}

func TestRateLimiter_AllowedRequests(t *testing.T) {
	RegisterTestingT(t)

	router := limiterRouter(map[string]config.RateLimitConfig{
		"default": {Requests: 5, Window: time.Minute},
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/todos", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("X-RateLimit-Limit")).To(Equal("5"))
		Expect(w.Header().Get("X-RateLimit-Remaining")).ToNot(BeEmpty())
	}
}

func TestRateLimiter_ExceedLimit(t *testing.T) {
	RegisterTestingT(t)

	router := limiterRouter(map[string]config.RateLimitConfig{
		"default": {Requests: 3, Window: time.Minute},
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/todos", nil)
		router.ServeHTTP(w, req)

		if i < 3 {
			Expect(w.Code).To(Equal(200))
		} else {
			Expect(w.Code).To(Equal(429))
			Expect(w.Body.String()).To(ContainSubstring("Too many requests"))
		}
	}
}

func TestRateLimiter_RouteSpecificLimit(t *testing.T) {
	RegisterTestingT(t)

	router := limiterRouter(map[string]config.RateLimitConfig{
		"GET /todos": {Requests: 1, Window: time.Minute},
		"default":    {Requests: 100, Window: time.Minute},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/todos", nil)
	router.ServeHTTP(w, req)
	Expect(w.Code).To(Equal(200))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/todos", nil)
	router.ServeHTTP(w, req)
	Expect(w.Code).To(Equal(429))
}

func TestRateLimiter_NoConfigPassesThrough(t *testing.T) {
	RegisterTestingT(t)

	router := limiterRouter(map[string]config.RateLimitConfig{})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/todos", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("X-RateLimit-Limit")).To(BeEmpty())
	}
}
