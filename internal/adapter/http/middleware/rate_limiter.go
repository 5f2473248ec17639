package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"taskboard/internal/core/model/response"
	"taskboard/pkg"
	"taskboard/pkg/config"
	"taskboard/pkg/telemetry"
)

// RateLimiter throttles per client IP using a fixed window per route.
type RateLimiter struct {
	cache   *gocache.Cache
	configs map[string]config.RateLimitConfig
	metrics *telemetry.AppMetrics
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(configs map[string]config.RateLimitConfig, metrics *telemetry.AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
		configs: configs,
		metrics: metrics,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		limit, ok := rl.configs[c.Request.Method+" "+path]

		if !ok {
			limit, ok = rl.configs["default"]
		}

		if !ok || limit.Requests <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", path, pkg.GetClientIP(c))
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, time.Until(entry.ResetTime))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limit.Requests-entry.Count, 0)))

		if entry.Count > limit.Requests {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path)
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
				Error: "Too many requests",
			})

			return
		}

		c.Next()
	}
}
