package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/languidpie/smit-homework-v2/internal/auth"
	"github.com/languidpie/smit-homework-v2/internal/config"

	"github.com/languidpie/smit-homework-v2/internal/adapter/postgres"
	partrepo "github.com/languidpie/smit-homework-v2/internal/adapter/postgres/part"
	recordrepo "github.com/languidpie/smit-homework-v2/internal/adapter/postgres/record"

	authsvc "github.com/languidpie/smit-homework-v2/internal/service/auth"
	partsvc "github.com/languidpie/smit-homework-v2/internal/service/part"
	recordsvc "github.com/languidpie/smit-homework-v2/internal/service/record"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/internal/transport/rest"
)

// Run is the application entry point. It loads and validates configuration,
// initializes the logger and the connection pool, wires repositories,
// services, and the HTTP surface, then serves until the context is cancelled
// and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	parts := partrepo.New(pool)
	records := recordrepo.New(pool)

	store := auth.NewStaticStore([]auth.User{
		{Username: cfg.Auth.PartsUsername, SecretHash: cfg.Auth.PartsSecretHash, Role: domain.RoleParts},
		{Username: cfg.Auth.RecordsUsername, SecretHash: cfg.Auth.RecordsSecretHash, Role: domain.RoleRecords},
	})
	authenticator := auth.NewAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:             logger,
		CORS:               cfg.CORS,
		Health:             rest.NewHealthHandler(pool, BuildVersion()),
		Auth:               rest.NewAuthHandler(authsvc.NewService(logger, authenticator, jwtManager, cfg.Auth.AccessTokenTTL), logger),
		Parts:              rest.NewPartsHandler(partsvc.NewService(logger, parts, txManager), logger),
		Records:            rest.NewRecordsHandler(recordsvc.NewService(logger, records, txManager), logger),
		TokenValidator:     jwtManager,
		BasicAuthenticator: authenticator,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
