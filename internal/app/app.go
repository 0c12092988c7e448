package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suprimaaldino/pempek-domino/internal/config"
	"github.com/suprimaaldino/pempek-domino/internal/delivery/http/handler"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/logger"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/mongodb"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/nats"
	"github.com/suprimaaldino/pempek-domino/internal/infrastructure/telegram"
	"github.com/suprimaaldino/pempek-domino/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func (a *App) Run() error {
	a.logger.Info("Starting pempek-domino backend")

	store, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer store.Close()

	// Seeding failures must not prevent the service from coming up.
	seeder := usecase.NewSeeder(store.Categories(), store.Products(), a.logger)
	if err := seeder.Run(context.Background()); err != nil {
		a.logger.Error("Failed to seed catalog, continuing", "error", err)
	}

	publisher := a.initNATS()
	if publisher != nil {
		defer publisher.Close()
	}

	notifier := telegram.NewNotifier(a.cfg.Notify, a.logger)

	catalogUseCase := usecase.NewCatalogUseCase(store.Categories(), store.Products())
	orderUseCase := usecase.NewOrderUseCase(store.Orders(), notifier, publisher, a.logger)
	authUseCase := usecase.NewAuthUseCase(a.cfg.Admin)

	h := handler.NewHandler(catalogUseCase, orderUseCase, authUseCase, a.logger)

	server := &http.Server{
		Addr:    ":" + a.cfg.HTTP.Port,
		Handler: h.NewRouter(),
	}

	return a.runServerWithGracefulShutdown(server)
}

// Seed connects to the store, runs the seeder once and exits. Backs the
// `seed` CLI subcommand.
func (a *App) Seed() error {
	store, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer store.Close()

	seeder := usecase.NewSeeder(store.Categories(), store.Products(), a.logger)
	return seeder.Run(context.Background())
}

func (a *App) initMongoDB() (*mongodb.Store, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	store, err := mongodb.NewStore(a.cfg.Mongo.URI, a.cfg.Mongo.DB, a.logger)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return store, nil
}

func (a *App) initNATS() usecase.OrderEventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return nil
	}

	publisher, err := nats.NewNatsPublisher(a.cfg.NATS.URL, a.logger)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return nil
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing close", "error", err)
			return server.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}
