package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawsome-backend/internal/config"
	"pawsome-backend/internal/database"
	"pawsome-backend/internal/email"
	"pawsome-backend/internal/handler"
	"pawsome-backend/internal/middleware"
	"pawsome-backend/internal/repository"
	"pawsome-backend/internal/router"
	"pawsome-backend/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, database.PoolSettings{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBConnLifetime,
		MaxConnIdleTime: cfg.DBConnIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	serviceRepo := repository.NewServiceRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	slog.Info("database ready")

	authService := service.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenExpiry)
	guard := middleware.NewTokenGuard(authService)
	authHandler := handler.NewAuthHandler(authService)

	catalogService := service.NewCatalogService(serviceRepo)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	var notifier *email.Client
	if cfg.ResendAPIKey != "" {
		notifier = email.NewClient(cfg.ResendAPIKey, cfg.EmailFrom, cfg.ContactRecipient)
	} else {
		slog.Warn("RESEND_API_KEY not set; contact notifications are disabled")
	}
	contactService := service.NewContactService(contactRepo, notifierOrNil(notifier))
	contactHandler := handler.NewContactHandler(contactService)

	healthHandler := handler.NewHealthHandler(db)

	appRouter := router.New(cfg, guard, router.Handlers{
		Auth:    authHandler,
		Catalog: catalogHandler,
		Contact: contactHandler,
		Health:  healthHandler,
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

// notifierOrNil keeps a typed-nil *email.Client from being stored in the
// service's interface field, which would defeat its nil check.
func notifierOrNil(c *email.Client) service.ContactNotifier {
	if c == nil {
		return nil
	}
	return c
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// shutdown stops accepting requests before the pool goes away, so
// handlers still in flight keep their connections until they finish.
func (a *App) shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.db.Close()
	return err
}
