package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/probikes/probikes-backend/internal/catalog"
	catalogHttp "github.com/probikes/probikes-backend/internal/catalog/http"
	"github.com/probikes/probikes-backend/internal/contact"
	contactHttp "github.com/probikes/probikes-backend/internal/contact/http"
	"github.com/probikes/probikes-backend/internal/hero"
	heroHttp "github.com/probikes/probikes-backend/internal/hero/http"
	"github.com/probikes/probikes-backend/internal/observability/metrics"
	"github.com/probikes/probikes-backend/internal/preference"
	preferenceHttp "github.com/probikes/probikes-backend/internal/preference/http"
	"github.com/probikes/probikes-backend/internal/product"
	productHttp "github.com/probikes/probikes-backend/internal/product/http"
	"github.com/probikes/probikes-backend/internal/wizard"
	wizardHttp "github.com/probikes/probikes-backend/internal/wizard/http"
)

// Config carries everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Logger  *zap.Logger
	Metrics *metrics.SiteMetrics
	// Gatherer backs the /metrics endpoint; leaving it nil omits the route.
	Gatherer prometheus.Gatherer

	CatalogProvider   *catalog.Provider
	ProductService    *product.Service
	HeroRotator       *hero.Rotator
	WizardStore       *wizard.Store
	ContactService    *contact.Service
	PreferenceService *preference.Service

	RateLimitPerMin int
	RateLimitBurst  int
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (logging, recovery, CORS, rate limiting) and
// registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	// Configure CORS. In production only the configured origins are allowed;
	// development keeps the local storefront dev server working.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // storefront dev server
			"http://localhost:5173", // vite preview
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// formLimiter throttles the anonymous write endpoints.
	formLimiter := RateLimit(cfg.RateLimitPerMin, cfg.RateLimitBurst)

	// Initialize HTTP handlers for each module.
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogProvider)
	productHandler := productHttp.NewHandler(cfg.ProductService)
	heroHandler := heroHttp.NewHandler(cfg.HeroRotator)
	wizardHandler := wizardHttp.NewHandler(cfg.WizardStore, cfg.Metrics)
	contactHandler := contactHttp.NewHandler(cfg.ContactService)
	preferenceHandler := preferenceHttp.NewHandler(cfg.PreferenceService)

	// Register API routes under /v1.
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		productHttp.RegisterRoutes(v1, productHandler)
		heroHttp.RegisterRoutes(v1, heroHandler)
		wizardHttp.RegisterRoutes(v1, wizardHandler, formLimiter)
		contactHttp.RegisterRoutes(v1, contactHandler, formLimiter)
		preferenceHttp.RegisterRoutes(v1, preferenceHandler)
	}

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	// The storefront's 404 page, as JSON.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Page Not Found",
			"message": "The page you're looking for doesn't exist or has been moved.",
		})
	})

	return r
}
