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

	httpapi "github.com/aussiebroadwan/clientarea/internal/clientarea/http"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/aussiebroadwan/clientarea/pkg/cryptox"
	"github.com/aussiebroadwan/clientarea/pkg/jwtx"
	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "clientarea",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})
}

// Application is the client area service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager
	metrics    *metricsx.Metrics
	codec      accesstoken.Codec

	professionalService *service.ProfessionalService
	sessionService      *service.SessionService
	clientService       *service.ClientService
	activationService   *service.ActivationService
	accessService       *service.AccessService
	verifyService       *service.VerifyService
	codeService         *service.CodeService
	auditService        *service.AuditService

	server *http.Server
	router *httpapi.Router
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:     cfg,
		logger:  logger,
		metrics: metricsx.New(),
	}

	codec, err := accesstoken.New(cfg.TokenAlgorithm, cfg.TokenSecret)
	if err != nil {
		return nil, err
	}
	app.codec = codec
	if codec.Algorithm() != accesstoken.AlgorithmMD5 {
		logger.Warn("access tokens use a keyed fingerprint; links printed before the switch no longer verify",
			"algorithm", codec.Algorithm())
	}

	app.db, err = OpenStore(ctx, cfg, logger, true)
	if err != nil {
		return nil, err
	}

	app.keyManager, err = InitSessionKeys(cfg, logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until ctx is cancelled, SIGINT/SIGTERM is received or the
// server fails.
func (app *Application) Run(ctx context.Context) error {
	app.auditService.Start()

	app.logger.Info("client area service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		app.auditService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down client area service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.auditService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("client area service stopped")
	return nil
}

func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	app.professionalService = &service.ProfessionalService{
		Store:             app.db,
		Hasher:            cryptox.NewHasher(pepper),
		RegistrationToken: app.cfg.RegistrationToken,
	}
	if app.cfg.RegistrationToken == "" {
		app.logger.Info("professional registration disabled (REGISTRATION_TOKEN unset)")
	}

	app.sessionService = &service.SessionService{
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		TTL:        app.cfg.SessionTTL,
	}
	app.clientService = &service.ClientService{
		Store:         app.db,
		DefaultRegion: app.cfg.DefaultPhoneRegion,
	}
	app.activationService = &service.ActivationService{
		Clients: app.clientService,
		Codec:   app.codec,
		BaseURL: app.cfg.PublicBaseURL,
	}
	app.accessService = &service.AccessService{
		Store:   app.db,
		Metrics: app.metrics,
	}
	app.verifyService = &service.VerifyService{
		Store:   app.db,
		Codec:   app.codec,
		Access:  app.accessService,
		Metrics: app.metrics,
	}
	app.codeService = &service.CodeService{Store: app.db}
	app.auditService = service.NewAuditService(
		app.codeService,
		app.metrics,
		app.logger,
		app.cfg.AuditInterval,
	)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.ProfessionalService = app.professionalService
	router.SessionService = app.sessionService
	router.ClientService = app.clientService
	router.ActivationService = app.activationService
	router.VerifyService = app.verifyService
	router.AccessService = app.accessService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
