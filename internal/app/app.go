package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/alphalearn-backend/internal/adapter/postgres"
	sessionrepo "github.com/heartmarshall/alphalearn-backend/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/alphalearn-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/alphalearn-backend/internal/adapter/provider/datamuse"
	"github.com/heartmarshall/alphalearn-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/alphalearn-backend/internal/adapter/redis"
	"github.com/heartmarshall/alphalearn-backend/internal/auth"
	"github.com/heartmarshall/alphalearn-backend/internal/config"
	"github.com/heartmarshall/alphalearn-backend/internal/provider"
	authsvc "github.com/heartmarshall/alphalearn-backend/internal/service/auth"
	"github.com/heartmarshall/alphalearn-backend/internal/service/learning"
	"github.com/heartmarshall/alphalearn-backend/internal/service/wordset"
	"github.com/heartmarshall/alphalearn-backend/internal/transport/middleware"
	"github.com/heartmarshall/alphalearn-backend/internal/transport/rest"
	"github.com/heartmarshall/alphalearn-backend/migrations"
)

// Run loads configuration, connects storage, wires services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	var lookup dictionary = freedict.NewProviderWithURL(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)

	var cachePinger rest.Pinger
	if cfg.Cache.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		lookup = redis.NewLookupCache(lookup, client, cfg.Cache.TTL, logger)
		cachePinger = redisPinger{client}
		logger.Info("lookup cache enabled", slog.String("addr", cfg.Cache.RedisAddr))
	}

	candidates := datamuse.NewProviderWithURL(cfg.WordSource.BaseURL, cfg.WordSource.Timeout, logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth)
	learningService := learning.NewService(logger, sessionrepo.New(pool), postgres.NewTxManager(pool))
	wordSetService := wordset.NewService(logger, candidates, lookup, cfg.WordSet.Concurrency)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, cfg.Auth, logger),
		Words:    rest.NewWordHandler(wordSetService, cfg.WordSet.Timeout, logger),
		Sessions: rest.NewSessionHandler(learningService, logger),
		Health:   rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
	}, rateLimiter.Limit(cfg.Server.AuthRateLimit))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(authService, cfg.Auth.CookieName, logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

type dictionary interface {
	Lookup(ctx context.Context, word string) (*provider.Definition, error)
}

type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
