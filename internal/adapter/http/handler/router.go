package handler

import (
	"provider-connection-checker/internal/adapter/http/middleware"
	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	StatusSvc      ports.ProviderStatusService
	SupportedTypes func() []domain.ProviderType
	HealthCheckers []ports.HealthChecker
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	Metrics        *prometheus.Registry // nil = no /metrics endpoint
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	if deps.Metrics != nil {
		collector := middleware.NewMetricsCollector()
		deps.Metrics.MustRegister(collector)
		r.Use(middleware.Metrics(collector))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil && deps.RateLimit.Limit > 0 {
		rl = middleware.RateLimiter(deps.RateLimitStore, "status", deps.RateLimit, deps.Logger)
	}

	providerHandler := NewProviderHandler(deps.StatusSvc, deps.SupportedTypes)

	v1 := r.Group("/api/v1", rl)
	{
		v1.GET("/provider-types", providerHandler.ListSupportedTypes)
		v1.GET("/providers/:id/connection", providerHandler.GetConnection)
	}

	return r
}
