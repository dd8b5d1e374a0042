package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerhub/internal/services/health"
	"careerhub/internal/shared/config"
	"careerhub/internal/shared/metrics"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
)

const (
	groupDefault = "DEFAULT"
	groupRemote  = "REMOTE"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps are the handlers mounted by NewRouter.
type RouterDeps struct {
	Config   config.Config
	Health   *health.Service
	Handlers []RouteRegistrar
	// Middleware runs on the feature group only, after the shared chain.
	Middleware []gin.HandlerFunc
}

// NewRouter builds the web engine. Feature handlers are mounted under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := newEngine(deps.Config)
	r.Use(middleware.RateLimit(rateLimitConfig(deps.Config, "/api/v1")))
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.Health))
	api.Use(deps.Middleware...)
	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}
	return r
}

// NewAPIRouter builds the reference remote API engine, mounted under /api.
func NewAPIRouter(deps RouterDeps) *gin.Engine {
	r := newEngine(deps.Config)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", healthHandler(deps.Health))
	api.Use(deps.Middleware...)
	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}
	return r
}

func newEngine(cfg config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Session(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)
	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		st := svc.Check(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	}
}

// remoteRoutes are the web routes that call through to the remote API.
var remoteRoutes = []string{"/builder/ai-review", "/builder/download", "/contact"}

func rateLimitConfig(cfg config.Config, base string) middleware.RateLimitConfig {
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 10
	}
	return middleware.RateLimitConfig{
		DefaultGroup: groupDefault,
		GroupFor: func(c *gin.Context) string {
			path := strings.TrimPrefix(c.FullPath(), base)
			for _, p := range remoteRoutes {
				if path == p {
					return groupRemote
				}
			}
			return groupDefault
		},
		Rules: map[string]middleware.RateLimitRule{
			groupRemote: {Rate: rps, Burst: burst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
