package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/probikes/probikes-backend/internal/api"
	"github.com/probikes/probikes-backend/internal/catalog"
	"github.com/probikes/probikes-backend/internal/contact"
	"github.com/probikes/probikes-backend/internal/hero"
	"github.com/probikes/probikes-backend/internal/observability/metrics"
	"github.com/probikes/probikes-backend/internal/preference"
	"github.com/probikes/probikes-backend/internal/product"
	"github.com/probikes/probikes-backend/internal/wizard"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	PrefsPath    string

	HeroInterval time.Duration
	SubmitDelay  time.Duration
	SessionTTL   time.Duration

	RateLimitPerMin int
	RateLimitBurst  int

	Logger *zap.Logger
	// Registry may be nil; the container then creates its own.
	Registry *prometheus.Registry
	// Clock may be nil; the catalog then uses time.Now.
	Clock func() time.Time
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Sessions *wizard.Store
	Hero     *hero.Rotator
}

// NewContainer initializes all modules and returns the container. The context
// bounds the background work the container's components start later (the
// hero rotation, the session sweep, in-flight submissions).
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	siteMetrics := metrics.NewSiteMetrics(registry)

	// Catalog module
	catalogProvider := catalog.NewProvider(cfg.Clock)

	// Product module
	productService := product.NewService()

	// Hero carousel
	rotator := hero.NewRotator(productService.Featured(), cfg.HeroInterval)

	// Booking wizard sessions
	wizardOpts := []wizard.Option{}
	if cfg.SubmitDelay > 0 {
		wizardOpts = append(wizardOpts, wizard.WithSubmitDelay(cfg.SubmitDelay))
	}
	storeOpts := []wizard.StoreOption{
		wizard.WithWizardOptions(wizardOpts...),
		wizard.WithMetrics(siteMetrics),
	}
	if cfg.SessionTTL > 0 {
		storeOpts = append(storeOpts, wizard.WithSessionTTL(cfg.SessionTTL))
	}
	sessions := wizard.NewStore(ctx, catalogProvider, storeOpts...)

	// Contact module
	contactService := contact.NewService(cfg.Logger, siteMetrics)

	// Site preferences
	preferenceService, err := preference.NewService(cfg.PrefsPath)
	if err != nil {
		return nil, err
	}

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		Logger:            cfg.Logger,
		Metrics:           siteMetrics,
		Gatherer:          registry,
		CatalogProvider:   catalogProvider,
		ProductService:    productService,
		HeroRotator:       rotator,
		WizardStore:       sessions,
		ContactService:    contactService,
		PreferenceService: preferenceService,
		RateLimitPerMin:   cfg.RateLimitPerMin,
		RateLimitBurst:    cfg.RateLimitBurst,
	})

	return &Container{
		Router:   router,
		Sessions: sessions,
		Hero:     rotator,
	}, nil
}
