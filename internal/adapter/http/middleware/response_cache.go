package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/port"
	"taskboard/pkg/telemetry"
)

// ResponseCache serves GET responses from a CacheRepository for a short
// TTL. Only successful responses are cached.
type ResponseCache struct {
	store   port.CacheRepository
	ttl     time.Duration
	metrics *telemetry.AppMetrics
}

type cachedResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
}

func NewResponseCache(store port.CacheRepository, ttl time.Duration, metrics *telemetry.AppMetrics) *ResponseCache {
	return &ResponseCache{
		store:   store,
		ttl:     ttl,
		metrics: metrics,
	}
}

func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "response:" + c.Request.URL.RequestURI()

		if raw, err := rc.store.Get(c.Request.Context(), key); err == nil && raw != nil {
			var cached cachedResponse

			if err := json.Unmarshal(raw, &cached); err == nil {
				if rc.metrics != nil {
					rc.metrics.RecordCacheHit(c.Request.URL.Path)
				}

				c.Data(cached.StatusCode, "application/json; charset=utf-8", cached.Body)
				c.Abort()

				return
			}
		}

		if rc.metrics != nil {
			rc.metrics.RecordCacheMiss(c.Request.URL.Path)
		}

		writer := &bodyCapturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			StatusCode: writer.Status(),
			Body:       writer.body.Bytes(),
		})

		if err != nil {
			return
		}

		if err := rc.store.Set(c.Request.Context(), key, raw, rc.ttl); err != nil {
			slog.Warn("Failed to cache response", "error", err, "key", key)
		}
	}
}

type bodyCapturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
