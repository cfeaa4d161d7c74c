package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amund211/skillforge/internal/adapters/cache"
	"github.com/Amund211/skillforge/internal/adapters/catalog"
	"github.com/Amund211/skillforge/internal/adapters/promoclient"
	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/config"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/ports"
	"github.com/Amund211/skillforge/internal/reporting"
	"github.com/Amund211/skillforge/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	// Root certificates for minimal container images
	_ "golang.org/x/crypto/x509roots/fallback"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "skillforge.dev"
const STAGING_DOMAIN_SUFFIX = "skillforge-web.pages.dev"

func main() {
	instanceID := uuid.New().String()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseHandler := slog.NewJSONHandler(os.Stdout, nil)
	logger := slog.New(baseHandler).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	if config.GCPProject() != "" {
		// Correlate log entries with traces in Cloud Logging
		logger = slog.New(logging.NewGoogleCloudTracingLogHandler(baseHandler, config.GCPProject())).With("instanceID", instanceID)
	}

	if config.OTelEnabled() {
		shutdownOTel, err := telemetry.SetupOTelSDK(ctx, "skillforge")
		if err != nil {
			fail("Failed to initialize OpenTelemetry", "error", err.Error())
		}
		defer func() {
			if err := shutdownOTel(context.Background()); err != nil {
				logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized OpenTelemetry")
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	allowedOrigins, err := ports.NewAllowedOrigins(config.IsDevelopment(), PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	// Mock API
	promoCatalog := catalog.NewDefault()
	roll := rand.Float64

	listOffers := app.BuildListOffers(promoCatalog, roll)
	listBanners := app.BuildListBanners(promoCatalog, roll)
	listNotifications := app.BuildListNotifications(promoCatalog, roll)
	listMiniOffers := app.BuildListMiniOffers(promoCatalog, roll)
	listCourses := app.BuildListCourses(promoCatalog)

	// Consumers of the mock API
	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	promoClient, err := promoclient.New(httpClient, config.PromoAPIBaseURL())
	if err != nil {
		fail("Failed to initialize promo client", "error", err.Error())
	}
	logger.Info("Initialized promo client", "baseURL", config.PromoAPIBaseURL())

	offersCache := cache.NewTTLCache[domain.Page[domain.Offer]](config.PromoCacheTTL(), config.PromoFetchTimeout(), time.Now)
	defer offersCache.Stop()
	bannersCache := cache.NewTTLCache[domain.Page[domain.Banner]](config.PromoCacheTTL(), config.PromoFetchTimeout(), time.Now)
	defer bannersCache.Stop()
	notificationsCache := cache.NewTTLCache[domain.Page[domain.Notification]](config.PromoCacheTTL(), config.PromoFetchTimeout(), time.Now)
	defer notificationsCache.Stop()
	miniOffersCache := cache.NewTTLCache[domain.Page[domain.MiniOffer]](config.PromoCacheTTL(), config.PromoFetchTimeout(), time.Now)
	defer miniOffersCache.Stop()

	getPromotions := app.BuildGetPromotions(
		app.BuildGetOffersWithCache(offersCache, promoClient),
		app.BuildGetBannersWithCache(bannersCache, promoClient),
		app.BuildGetNotificationsWithCache(notificationsCache, promoClient),
		app.BuildGetMiniOffersWithCache(miniOffersCache, promoClient),
	)

	mux := http.NewServeMux()

	mux.HandleFunc(
		"GET /api/offers",
		ports.MakeListOffersHandler(listOffers, logger.With("port", "offers"), sentryMiddleware, config.SimulatedLatency()),
	)
	mux.HandleFunc(
		"GET /api/banners",
		ports.MakeListBannersHandler(listBanners, logger.With("port", "banners"), sentryMiddleware, config.SimulatedLatency()),
	)
	mux.HandleFunc(
		"GET /api/notifications",
		ports.MakeListNotificationsHandler(listNotifications, logger.With("port", "notifications"), sentryMiddleware, config.SimulatedLatency()),
	)
	mux.HandleFunc(
		"GET /api/mini-offers",
		ports.MakeListMiniOffersHandler(listMiniOffers, logger.With("port", "mini-offers"), sentryMiddleware, config.SimulatedLatency()),
	)
	mux.HandleFunc(
		"GET /api/courses",
		ports.MakeListCoursesHandler(listCourses, logger.With("port", "courses"), sentryMiddleware, config.SimulatedLatency()),
	)
	mux.HandleFunc(
		"GET /api/placeholder/{slug...}",
		ports.MakePlaceholderHandler(logger.With("port", "placeholder"), sentryMiddleware),
	)

	mux.HandleFunc(
		"OPTIONS /v1/promotions",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/promotions",
		ports.MakeGetPromotionsHandler(
			getPromotions,
			allowedOrigins,
			logger.With("port", "promotions"),
			sentryMiddleware,
		),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port()),
		Handler:           otelhttp.NewHandler(mux, "skillforge"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)
		<-ctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server", "error", err.Error())
		}
	}()

	logger.Info("Init complete")
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownComplete
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
