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

	httpapi "github.com/aussiebroadwan/liaison/internal/liaison/http"
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/internal/liaison/provider/google"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application owns the liaison service and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	metrics  *metrics.Metrics
	google   *google.Provider
	identity *Identity

	connectionService   *service.ConnectionService
	calendarService     *service.CalendarService
	emailService        *service.EmailService
	clientService       *service.ClientService
	templateService     *service.TemplateService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "liaison",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	provider, err := google.New(google.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		AuthURL:      cfg.GoogleAuthURL,
		TokenURL:     cfg.GoogleTokenURL,
		APIEndpoint:  cfg.GoogleAPIEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure google provider: %w", err)
	}
	app.google = provider

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	identity, err := InitIdentity(context.Background(), cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize identity: %w", err)
	}
	app.identity = identity

	app.metrics = metrics.New()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Start launches background work: expired-state cleanup and, in jwt mode,
// JWKS refreshes. Shutdown stops it.
func (app *Application) Start() {
	app.housekeepingService.Start()
	app.identity.Start()
}

// Handler is the fully wired HTTP surface.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.Start()

	app.logger.Info("liaison starting", "port", app.cfg.Port, "version", BuildVersion,
		"identity_mode", app.cfg.IdentityMode)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown drains in-flight requests, then stops background work and
// closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down liaison...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	app.identity.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("liaison stopped")
	return nil
}

// initDatabase opens the store with a sealer over the master key and
// applies migrations.
func (app *Application) initDatabase() error {
	key, ephemeral, err := cryptox.LoadMasterKey(app.cfg.MasterKeyPath, app.cfg.MasterKey)
	if err != nil {
		return fmt.Errorf("failed to load master key: %w", err)
	}
	if ephemeral {
		app.logger.Warn("no LIAISON_MASTER_KEY configured; using an ephemeral key, stored Google tokens will be unreadable after restart")
	}

	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return fmt.Errorf("failed to build token sealer: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn, sealer)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.connectionService = &service.ConnectionService{
		Store:           app.db,
		Exchanger:       app.google,
		Metrics:         app.metrics,
		FreshnessBuffer: app.cfg.TokenRefreshBuffer,
		StateTTL:        app.cfg.OAuthStateTTL,
	}
	app.calendarService = &service.CalendarService{
		Tokens:  app.connectionService,
		Dialer:  app.google,
		Metrics: app.metrics,
	}
	app.emailService = &service.EmailService{
		Tokens:      app.connectionService,
		Dialer:      app.google,
		Store:       app.db,
		Concurrency: app.cfg.EmailSendConcurrency,
		Metrics:     app.metrics,
	}
	app.clientService = &service.ClientService{Store: app.db}
	app.templateService = &service.TemplateService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.identity.Middleware,
		app.identity.Ready,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.AppBaseURL = app.cfg.AppBaseURL
	router.ConnectionService = app.connectionService
	router.CalendarService = app.calendarService
	router.EmailService = app.emailService
	router.ClientService = app.clientService
	router.TemplateService = app.templateService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
