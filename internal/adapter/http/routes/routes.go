package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskboard/internal/adapter/http/handler"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/port"
	"taskboard/pkg/config"
	"taskboard/pkg/telemetry"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
}

// SetupRouter mounts the primary container at the root. When a durable
// container is given, the same routes are mounted again under /db so both
// backends can be exercised side by side.
func SetupRouter(primary HandlersConfig, durable *HandlersConfig, metrics *telemetry.AppMetrics,
	logger *otelzap.Logger, cache port.CacheRepository, cfg *config.AppConfig) *gin.Engine {

	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("taskboard"))

	if logger != nil {
		router.Use(middleware.Logging(logger))
	}

	if metrics != nil {
		router.Use(middleware.Metrics(metrics))
	}

	if cfg.RateLimitEnabled {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitConfigs, metrics).Middleware())
	}

	if cfg.CacheEnabled && cache != nil {
		router.Use(middleware.NewResponseCache(cache, cfg.CacheTTL, metrics).Middleware())
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	mountRoutes(router.Group("/"), primary)

	if durable != nil {
		mountRoutes(router.Group("/db"), *durable)
	}

	return router
}

// SetupRouterForTests builds a bare router with no ambient middleware.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	mountRoutes(router.Group("/"), handlers)

	return router
}

func mountRoutes(group *gin.RouterGroup, handlers HandlersConfig) {
	group.POST("/users", handlers.UserHandler.CreateUser)
	group.GET("/users/:id", handlers.UserHandler.GetUser)

	group.POST("/todos", handlers.TodoHandler.CreateTodo)
	group.GET("/todos", handlers.TodoHandler.ListTodos)
	group.POST("/todos/:id/complete", handlers.TodoHandler.CompleteTodo)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
