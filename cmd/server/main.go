package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Simplici0/carcost/internal/cache"
	"github.com/Simplici0/carcost/internal/catalog"
	"github.com/Simplici0/carcost/internal/config"
	"github.com/Simplici0/carcost/internal/db"
	"github.com/Simplici0/carcost/internal/format"
	"github.com/Simplici0/carcost/internal/logging"
	"github.com/Simplici0/carcost/internal/metrics"
	"github.com/Simplici0/carcost/internal/migrations"
	"github.com/Simplici0/carcost/internal/seed"
)

type server struct {
	auth      *authService
	catalog   *catalog.Store
	engine    *cache.Engine
	metrics   *metrics.Metrics
	formatter *format.Formatter
	limiter   *ipRateLimiter
	logger    zerolog.Logger

	trustProxy bool
}

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}
	logger := logging.New(env, os.Stderr)

	cfg, err := config.Load(config.DefaultEnvFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = logging.New(cfg.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		return err
	}

	stats, err := seed.Run(ctx, database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		return err
	}
	logger.Info().Int("inserts", stats.Inserts).Msg("catalog seeded")

	resultCache, closeCache := openCache(ctx, cfg, logger)
	defer closeCache()

	formatter, err := format.New(format.Options{Locale: cfg.Locale, Currency: cfg.Currency})
	if err != nil {
		return fmt.Errorf("build formatter: %w", err)
	}

	srv, err := newServer(database, cfg, logger, resultCache, formatter)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("starting server")
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			_ = httpServer.Close()
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		logger.Info().Msg("server stopped")
		return nil
	}
}

// openCache prefers Redis when configured and falls back to the in-process
// cache when it is unreachable.
func openCache(ctx context.Context, cfg config.Config, logger zerolog.Logger) (cache.Cache, func()) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemory(cfg.CacheTTL), func() {}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rc, err := cache.NewRedis(pingCtx, cache.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.CacheTTL,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
		return cache.NewMemory(cfg.CacheTTL), func() {}
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis cache")
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn().Err(err).Msg("close redis")
		}
	}
}

func newServer(database *sql.DB, cfg config.Config, logger zerolog.Logger, c cache.Cache, f *format.Formatter) (*server, error) {
	auth, err := newAuthService(database, cfg.SessionSecret, !cfg.IsDev())
	if err != nil {
		return nil, err
	}

	return &server{
		auth:      auth,
		catalog:   catalog.NewStore(database),
		engine:    cache.NewEngine(c),
		metrics:   metrics.New(),
		formatter: f,
		limiter:   newIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		logger:    logger,

		trustProxy: cfg.TrustProxy,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Forwarding headers are client supplied unless a proxy rewrites them.
	if s.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		requestLogger(s.logger),
		middleware.Recoverer,
		s.metrics.Middleware,
	)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.middleware)

		r.Get("/defaults", s.handleDefaults)
		r.Post("/calculate", s.handleCalculate)
		r.Get("/bands", s.handleBands)
		r.Get("/postcodes/{postcode}", s.handlePostcode)
		r.Get("/models", s.handleListModels)
		r.Get("/models/{id}", s.handleGetModel)
		r.Get("/fuel-prices", s.handleFuelPrices)

		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.auth.requireAdmin)
			r.Put("/fuel-prices", s.handleUpdateFuelPrices)
			r.Post("/models", s.handleCreateModel)
		})
	})

	return r
}
