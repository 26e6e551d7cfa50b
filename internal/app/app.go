// Package app configures and runs application.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/controller/httpapi"
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/host/chrome"
	"github.com/nmgaston/protect-kiosk/internal/host/screen"
	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
	"github.com/nmgaston/protect-kiosk/internal/usecase/settings"
	"github.com/nmgaston/protect-kiosk/internal/usecase/trust"
	"github.com/nmgaston/protect-kiosk/pkg/httpserver"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// SecretStore is the Vault client used to resolve the bearer token (set by main
// when a secret store is configured).
var SecretStore trust.SecretReader

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)
	cfg.App.Version = Version
	log.Info("app - Run - version: %s", cfg.App.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := settings.New(cfg.Settings.Path, entity.Settings{
		DashboardURL: cfg.Settings.DefaultDashboardURL,
		DisplayIndex: cfg.Settings.DefaultDisplayIndex,
	}, log)

	policy := trust.New(cfg.Trust.IgnoreCertificateErrors, cfg.Trust.UserAgent, tokenSource(cfg, SecretStore), log)
	host := chrome.New(cfg.Browser, cfg.Trust.IgnoreCertificateErrors, log)

	bootstrap := kiosk.New(kiosk.Deps{
		Store:    store,
		Displays: screen.New(),
		Setup:    newSetupSurface(cfg, log, chromeWindow(host)),
		Host:     host,
		Policy:   policy,
	}, cfg.Automation, cfg.Shortcuts, log)

	metricsServer := setupMetricsServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := make(chan error, 1)

	go func() {
		runErr <- bootstrap.Run(ctx)
	}()

	err := waitForShutdown(ctx, log, runErr, bootstrap.Done(), metricsServer)
	shutdown(log, bootstrap, metricsServer)

	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - bootstrap.Run: %w", err))
	}
}

// tokenSource resolves the bearer token from configuration first, then Vault,
// then the OS keyring.
func tokenSource(cfg *config.Config, secrets trust.SecretReader) trust.TokenSource {
	chain := trust.Chain{trust.Static(cfg.Trust.BearerToken)}

	if secrets != nil && cfg.Trust.VaultKey != "" {
		chain = append(chain, trust.NewCached("vault", trust.Vault{Reader: secrets, Key: cfg.Trust.VaultKey}, cfg.Trust.TokenCacheTTL))
	}

	if cfg.Trust.KeyringService != "" {
		chain = append(chain, trust.NewCached("keyring", trust.Keyring{
			Service: cfg.Trust.KeyringService,
			User:    cfg.Trust.KeyringUser,
		}, cfg.Trust.TokenCacheTTL))
	}

	return chain
}

func chromeWindow(host *chrome.Host) windowOpener {
	return func(ctx context.Context, url string, width, height int) (setupWindow, error) {
		w, err := host.OpenWindow(ctx, url, width, height)
		if err != nil {
			return nil, err
		}

		return w, nil
	}
}

func serverOptions(cfg *config.Config, host, port string, log logger.Interface) []httpserver.Option {
	opts := []httpserver.Option{
		httpserver.Port(host, port),
		httpserver.Logger(log),
	}

	if cfg.HTTP.ReadTimeout > 0 {
		opts = append(opts, httpserver.ReadTimeout(cfg.HTTP.ReadTimeout))
	}

	if cfg.HTTP.WriteTimeout > 0 {
		opts = append(opts, httpserver.WriteTimeout(cfg.HTTP.WriteTimeout))
	}

	if cfg.HTTP.ShutdownTimeout > 0 {
		opts = append(opts, httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout))
	}

	return opts
}

func setupMetricsServer(cfg *config.Config, log logger.Interface) *httpserver.Server {
	if !cfg.Metrics.Enabled {
		return nil
	}

	handler := gin.New()
	httpapi.NewMetricsRouter(handler, log)

	server, err := httpserver.New(handler, serverOptions(cfg, cfg.Metrics.Host, cfg.Metrics.Port, log)...)
	if err != nil {
		log.Error(fmt.Errorf("app - Run - metrics httpserver.New: %w", err))

		return nil
	}

	log.Info("app - Run - metrics at %s/metrics", server.URL())

	return server
}

// waitForShutdown blocks until a signal arrives, the operator closes the setup
// form or the kiosk window, or the bootstrap fails. A bootstrap that returns
// cleanly leaves the kiosk running.
func waitForShutdown(ctx context.Context, log logger.Interface, runErr <-chan error, surfaceClosed <-chan struct{}, metricsServer *httpserver.Server) error {
	var notify <-chan error
	if metricsServer != nil {
		notify = metricsServer.Notify()
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("app - Run - signal received, shutting down")

			return nil
		case <-surfaceClosed:
			log.Info("app - Run - kiosk window closed, shutting down")

			return nil
		case err := <-runErr:
			if errors.Is(err, kiosk.ErrSetupClosed) {
				log.Info("app - Run - setup form closed, shutting down")

				return nil
			}

			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			runErr = nil
		case err, ok := <-notify:
			if ok {
				log.Error(fmt.Errorf("app - Run - metricsServer.Notify: %w", err))
			}

			notify = nil
		}
	}
}

func shutdown(log logger.Interface, bootstrap *kiosk.Bootstrap, metricsServer *httpserver.Server) {
	if err := bootstrap.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - bootstrap.Shutdown: %w", err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(); err != nil {
			log.Error(fmt.Errorf("app - Run - metricsServer.Shutdown: %w", err))
		}
	}
}
