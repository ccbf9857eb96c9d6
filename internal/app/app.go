// Package app assembles the microservices from configuration and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/microservices/internal/adapter/checker"
	"github.com/vadimbarashkov/microservices/internal/config"
	"github.com/vadimbarashkov/microservices/internal/metrics"
	"github.com/vadimbarashkov/microservices/internal/usecase"
	"github.com/vadimbarashkov/microservices/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/microservices/internal/adapter/delivery/http"
	cache "github.com/vadimbarashkov/microservices/internal/adapter/cache/redis"
	repository "github.com/vadimbarashkov/microservices/internal/adapter/repository/postgres"
)

const serviceName = "microservices"

// NewLogger builds the request logger: JSON in production, concise text otherwise.
func NewLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel: slog.LevelInfo,
		Concise:  true,
	}

	switch env {
	case config.EnvProd:
		opts.JSON = true
		opts.Concise = false
	case config.EnvDev:
		opts.LogLevel = slog.LevelDebug
	}

	return httplog.NewLogger(serviceName, opts)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg.Env)

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		postgres.WithConnectRetries(cfg.Postgres.ConnectAttempts, cfg.Postgres.ConnectDelay),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN(), postgres.Up); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	var shortURLOpts []usecase.ShortURLOption
	if cfg.Redis.Enabled() {
		client, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}
		defer client.Close()

		shortURLOpts = append(shortURLOpts, usecase.WithCache(cache.NewShortURLCache(client, cfg.Redis.TTL)))
		logger.Info("short url cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	urlChecker := checker.New(cfg.URLChecker.Enabled, cfg.URLChecker.Timeout)

	shortURLUseCase := usecase.NewShortURLUseCase(repository.NewShortURLRepository(db), urlChecker, shortURLOpts...)
	exerciseUseCase := usecase.NewExerciseUseCase(repository.NewUserRepository(db), repository.NewExerciseRepository(db))
	timestampUseCase := usecase.NewTimestampUseCase()

	m := metrics.New()
	m.RegisterDB(db.DB)

	router := delivery.NewRouter(
		logger,
		m,
		cfg.Upload,
		timestampUseCase,
		shortURLUseCase,
		exerciseUseCase,
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down http server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
