package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bklyngarment/storefront/internal/admin"
	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/auth"
	"github.com/bklyngarment/storefront/internal/config"
	"github.com/bklyngarment/storefront/internal/handlers"
	"github.com/bklyngarment/storefront/internal/routes"
	"github.com/bklyngarment/storefront/internal/session"
	"github.com/bklyngarment/storefront/internal/templates"
	"github.com/bklyngarment/storefront/internal/tracing"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// --- Configuration (.env + environment) ---
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLevel(cfg.LogrusLevel())
	logger.Infof("Backend API: %s", cfg.BackendURL)

	// --- Session cookie signing ---
	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		logger.Warn("SESSION_SECRET is not set; admin sessions will not survive a restart")
	}
	signer := auth.NewSigner(secret, cfg.SessionTTL)

	// --- Dashboard view state ---
	var states viewstate.Store
	switch cfg.ViewStateBackend {
	case "redis":
		store, err := viewstate.NewRedisStore(context.Background(), viewstate.RedisConfig{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.ViewStateTTL,
		})
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer store.Close()
		states = store
		logger.Infof("Dashboard state stored in Redis at %s", cfg.RedisAddr)
	default:
		states = viewstate.NewMemoryStore(cfg.ViewStateTTL)
	}

	// --- Tracing (installed before the API client captures the global provider) ---
	tracer, err := tracing.NewProvider(context.Background(), tracing.Config{
		Exporter:    cfg.TraceExporter,
		Endpoint:    cfg.TraceEndpoint,
		ServiceName: cfg.TraceService,
		Insecure:    cfg.TraceInsecure,
		SampleRate:  cfg.TraceSampleRate,
	})
	if err != nil {
		logger.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			logger.Warnf("Failed to flush traces: %v", err)
		}
	}()
	logger.Infof("Trace exporter: %s", cfg.TraceExporter)

	api := apiclient.New(cfg.BackendURL, cfg.APITimeout, logger)

	app := &handlers.Handlers{
		API:   api,
		Admin: admin.NewService(api, states, admin.DefaultPolicy(), logger),
		Log:   logger,
		Features: templates.Features{
			VideoShowcase: cfg.VideoShowcase,
			FilterPanel:   cfg.FilterPanel,
		},
		HomeSectionLimit: cfg.HomeSectionLimit,
	}

	router := routes.SetupRouter(app, routes.Options{
		Signer: signer,
		Cookie: session.CookieOptions{
			Name:   cfg.SessionCookie,
			MaxAge: int(cfg.SessionTTL.Seconds()),
			Secure: cfg.CookieSecure,
		},
		CORSOrigin: cfg.CORSOrigin,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           routes.Traced(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("Storefront shutdown: %v", err)
		}
	}()

	logger.Infof("Storefront listening on %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("Failed to start storefront: %v", err)
		os.Exit(1)
	}
	logger.Info("Storefront stopped")
}
