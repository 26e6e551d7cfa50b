package kiosk

import (
	"context"

	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/fullscreen"
	"github.com/nmgaston/protect-kiosk/internal/usecase/trust"
)

type (
	// Store persists the configuration record.
	Store interface {
		Load() entity.Settings
		Save(s entity.Settings) error
	}

	// DisplayProvider enumerates the attached monitors.
	DisplayProvider interface {
		Displays() []entity.Display
		Primary() entity.Display
	}

	// TrustPolicy installs the network overrides on a surface.
	TrustPolicy interface {
		Apply(ctx context.Context, s trust.Session) error
	}

	// LoadEvent reports the end of a top-level navigation.
	LoadEvent struct {
		URL         string
		Failed      bool
		Code        string
		Description string
	}

	// KioskOptions -.
	KioskOptions struct {
		Display entity.Display
	}

	// Surface is the single full-screen window showing the dashboard.
	Surface interface {
		trust.Session
		fullscreen.Page

		Navigate(ctx context.Context, url string) error
		OnLoad(handler func(ctx context.Context, ev LoadEvent))
		OnShortcut(handler func(ctx context.Context, accelerator string))
		SetInspectorOpen(ctx context.Context, open bool) error
		// OnClosed calls handler once when the window goes away without
		// Close being asked for, e.g. the operator closed it.
		OnClosed(handler func())
		Close() error
	}

	// Host creates kiosk surfaces.
	Host interface {
		OpenKiosk(ctx context.Context, opts KioskOptions) (Surface, error)
	}

	// SetupSession is an open configuration form.
	SetupSession interface {
		// Submitted delivers the operator's accepted record once.
		Submitted() <-chan entity.Settings
		// Closed is closed when the operator dismisses the form.
		Closed() <-chan struct{}
		Close() error
	}

	// SetupSurface opens the configuration form.
	SetupSurface interface {
		Open(ctx context.Context, form *SetupForm) (SetupSession, error)
	}
)
