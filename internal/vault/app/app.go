package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/passkeep/internal/vault/http"
	"github.com/aussiebroadwan/passkeep/internal/vault/notify"
	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/internal/vault/store"
	"github.com/aussiebroadwan/passkeep/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application wires the vault service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	secrets  *Secrets
	notifier notify.Notifier
	closers  []func() error

	// Services
	accountService      *service.AccountService
	vaultService        *service.VaultService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "passkeep",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	secrets, err := InitSecrets(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.secrets = secrets

	if err := app.initNotifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("vault service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			app.housekeepingService.Stop()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and releases the store and notifier.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down vault service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			app.logger.Error("error closing notifier", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vault service stopped")
	return nil
}

// initDatabase opens the SQLite store and applies migrations.
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// OpenStore opens the configured SQLite database without migrating it.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func (app *Application) initNotifier() error {
	switch app.cfg.Notifier {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rn, err := notify.NewRedisNotifier(ctx, &redis.Options{
			Addr:     app.cfg.Redis.Addr,
			Password: app.cfg.Redis.Password,
			DB:       app.cfg.Redis.DB,
		}, app.cfg.Redis.Queue)
		if err != nil {
			return fmt.Errorf("failed to connect notifier: %w", err)
		}
		app.notifier = rn
		app.closers = append(app.closers, rn.Close)
		app.logger.Info("redis notifier enabled", "addr", app.cfg.Redis.Addr, "queue", app.cfg.Redis.Queue)
	default:
		app.notifier = notify.LogNotifier{}
		app.logger.Info("log notifier enabled")
	}
	return nil
}

// initServices builds the business logic services.
func (app *Application) initServices() {
	tokens := &service.TokenService{
		Codec:     app.secrets.Codec,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTTL,
		ResetTTL:  app.cfg.ResetTTL,
	}

	app.accountService = &service.AccountService{
		Store:    app.db,
		Hasher:   app.secrets.Hasher,
		Tokens:   tokens,
		Notifier: app.notifier,
	}
	app.vaultService = &service.VaultService{
		Store:  app.db,
		Cipher: app.secrets.Cipher,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP builds the router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.secrets.Codec,
		BuildVersion,
		app.db,
		app.secrets.Cipher,
		app.logger,
	)

	router.AccountService = app.accountService
	router.VaultService = app.vaultService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
