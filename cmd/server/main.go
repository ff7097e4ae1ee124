// Package main is the entry point for the route offer service.
//
//	@title						Route Offer API
//	@version					1.0.0
//	@description				Turns raw interplanetary routes into sortable, filterable offers and books one of them.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/cosmos-odyssey/route-offer-service/docs"

	// Application layers
	offerhttp "github.com/cosmos-odyssey/route-offer-service/internal/adapter/http"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/middleware"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/events"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/fixture"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/resilient"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/upstream"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/store"
	"github.com/cosmos-odyssey/route-offer-service/internal/config"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/idgen"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/retry"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/timeutil"
	"github.com/cosmos-odyssey/route-offer-service/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := setupLogger(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Bool("upstream", cfg.UsesUpstream()).
		Msg("Configuration loaded")

	ctx := context.Background()

	kv, err := store.New(ctx, store.Config{
		Backend:       cfg.Store.Backend,
		KeyPrefix:     cfg.Store.KeyPrefix,
		RedisAddr:     cfg.Store.RedisAddr,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
		BadgerPath:    cfg.Store.BadgerPath,
		DialTimeout:   cfg.Upstream.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open booking store")
	}

	feed := events.NewBookingFeed(log)

	sessions, err := setupSessions(cfg, log, kv, feed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session service")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e, cfg, log)
	setupRoutes(e, cfg, log, sessions, feed)

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	go runSweeper(sweepCtx, sessions, cfg.Session.SweepInterval, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg.Server.ShutdownTimeout, log)

	stopSweeper()
	if err := feed.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing booking feed")
	}
	if err := kv.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing booking store")
	}
	log.Info().Msg("Server stopped")
}

// setupLogger builds the application logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  logger.DefaultConfig().ServiceName,
	})
	logger.SetGlobal(log)
	return log
}

// setupSource picks the route source and wraps it with rate limiting, retries
// and a circuit breaker.
func setupSource(cfg *config.Config, log *logger.Logger) domain.RouteSource {
	var source domain.RouteSource
	if cfg.UsesUpstream() {
		source = upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, upstream.WithLogger(log))
	} else {
		source = fixture.NewSource(cfg.Upstream.FixturePath,
			fixture.WithLatency(cfg.Upstream.FixtureLatency),
			fixture.WithLogger(log),
		)
	}

	resCfg := resilient.DefaultConfig()
	resCfg.RequestsPerSecond = cfg.Resilience.RequestsPerSecond
	resCfg.Burst = cfg.Resilience.Burst
	resCfg.BreakerMaxFailures = cfg.Resilience.BreakerMaxFailures
	resCfg.BreakerTimeout = cfg.Resilience.BreakerTimeout
	resCfg.Retry = retry.DefaultConfig.
		WithMaxAttempts(cfg.Resilience.RetryAttempts).
		WithInitialDelay(cfg.Resilience.RetryInitialDelay).
		WithMaxDelay(cfg.Resilience.RetryMaxDelay)

	return resilient.NewSource(source, resCfg, log)
}

// setupSessions builds the session service and its collaborators.
func setupSessions(cfg *config.Config, log *logger.Logger, kv domain.KeyValueStore, feed *events.BookingFeed) (usecase.SessionService, error) {
	formatter, err := timeutil.NewClockFormatter(cfg.Display.Locale, cfg.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clock formatter: %w", err)
	}

	refs, err := idgen.NewSnowflakeGenerator(cfg.App.NodeID)
	if err != nil {
		return nil, fmt.Errorf("reference generator: %w", err)
	}

	return usecase.NewSessionService(
		setupSource(cfg, log),
		store.NewBookingRepository(kv),
		feed,
		&usecase.SessionConfig{
			SessionTTL:    cfg.Session.TTL,
			SearchTimeout: cfg.Upstream.SearchTimeout,
			Clock:         timeutil.NewRealClock(),
			Builder:       usecase.NewOfferBuilder(formatter),
			References:    refs,
			Logger:        log,
		},
	)
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	middleware.Setup(e, log.Zerolog())

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, sessions usecase.SessionService, feed *events.BookingFeed) {
	handler := offerhttp.NewHandler(sessions, feed, offerhttp.HandlerConfig{
		AllowedOrigins: cfg.Server.CORSOrigins,
		Logger:         log,
	})
	offerhttp.RegisterRoutes(e, handler)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// runSweeper drops idle sessions every interval until ctx is done.
func runSweeper(ctx context.Context, sessions usecase.SessionService, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Msg("Swept idle sessions")
			}
		}
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
}
