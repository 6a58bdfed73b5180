package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"customer-service/internal/domain"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// CustomerService is the set of customer use cases the handlers call.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, id string, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	SearchByName(ctx context.Context, name string) ([]domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Deps groups what the router needs.
type Deps struct {
	CustomerSvc CustomerService
	Store       Pinger
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry
	// is created when nil.
	Registry *prometheus.Registry
	// AllowedOrigins lists CORS origins; empty or containing "*" allows all.
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if deps.CustomerSvc == nil {
		return nil, fmt.Errorf("customer service is required")
	}
	corsCfg := corsConfig(deps.AllowedOrigins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := newHTTPMetrics(registry)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
		metrics.middleware(),
		cors.New(corsCfg),
	)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	h := &customerHandler{svc: deps.CustomerSvc, logger: logger}
	customers := router.Group("/customers")
	{
		customers.GET("", h.list)
		customers.POST("", h.create)
		customers.DELETE("", h.deleteAll)
		customers.GET("/search", h.search)
		customers.GET("/count", h.count)
		customers.GET("/exists", h.exists)
		customers.GET("/email/:email", h.getByEmail)
		customers.GET("/:id", h.get)
		customers.PUT("/:id", h.update)
		customers.DELETE("/:id", h.delete)
	}

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "route not found")
	})

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
