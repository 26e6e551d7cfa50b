package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/controller/httpapi"
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
	"github.com/nmgaston/protect-kiosk/pkg/httpserver"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// setupWindow is the browser window showing the form.
type setupWindow interface {
	io.Closer
	Done() <-chan struct{}
}

// windowOpener shows a local page in a small browser window.
type windowOpener func(ctx context.Context, url string, width, height int) (setupWindow, error)

// setupSurface serves the configuration form on a loopback port and shows it
// in a browser window.
type setupSurface struct {
	cfg    *config.Config
	log    logger.Interface
	window windowOpener
}

type setupSession struct {
	form   *kiosk.SetupForm
	server *httpserver.Server
	window setupWindow
}

func newSetupSurface(cfg *config.Config, log logger.Interface, window windowOpener) *setupSurface {
	return &setupSurface{cfg: cfg, log: log, window: window}
}

// Open implements kiosk.SetupSurface.
func (s *setupSurface) Open(ctx context.Context, form *kiosk.SetupForm) (kiosk.SetupSession, error) {
	handler := gin.New()
	httpapi.NewSetupRouter(handler, s.log, form, s.cfg)

	server, err := httpserver.New(handler, serverOptions(s.cfg, s.cfg.Setup.Host, "0", s.log)...)
	if err != nil {
		return nil, fmt.Errorf("app - setupSurface - httpserver.New: %w", err)
	}

	s.log.Info("app - setupSurface - configuration form at %s", server.URL())

	window, err := s.window(ctx, server.URL(), s.cfg.Setup.Width, s.cfg.Setup.Height)
	if err != nil {
		_ = server.Shutdown()

		return nil, fmt.Errorf("app - setupSurface - open window: %w", err)
	}

	return &setupSession{form: form, server: server, window: window}, nil
}

func (s *setupSession) Submitted() <-chan entity.Settings {
	return s.form.Submitted()
}

func (s *setupSession) Closed() <-chan struct{} {
	return s.window.Done()
}

func (s *setupSession) Close() error {
	return errors.Join(s.window.Close(), s.server.Shutdown())
}
