// Package kiosk orchestrates a launch: the first-run configuration form,
// monitor selection, and the full-screen dashboard surface.
package kiosk

import (
	"context"
	"errors"
	"sync"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/display"
	"github.com/nmgaston/protect-kiosk/internal/usecase/fullscreen"
	"github.com/nmgaston/protect-kiosk/internal/usecase/shortcut"
	"github.com/nmgaston/protect-kiosk/pkg/clock"
	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

var (
	ErrBootstrap = kioskerrors.CreateConsoleError("KioskBootstrap")

	ErrShutdown = errors.New("kiosk is shut down")

	ErrSetupClosed = errors.New("setup form closed before submission")
)

// Deps are the ports the bootstrap drives.
type Deps struct {
	Store    Store
	Displays DisplayProvider
	Setup    SetupSurface
	Host     Host
	Policy   TrustPolicy
	Locator  fullscreen.Locator
}

// Bootstrap -.
type Bootstrap struct {
	deps       Deps
	automation config.Automation
	shortcuts  config.Shortcuts
	log        logger.Interface
	clock      clock.Clock
	registry   *shortcut.Registry
	inspector  inspector

	mu      sync.Mutex
	surface Surface
	driver  *fullscreen.Driver
	closed  bool

	done     chan struct{}
	doneOnce sync.Once
}

// Option -.
type Option func(*Bootstrap)

// WithClock sets the clock the settle delay is measured on.
func WithClock(c clock.Clock) Option {
	return func(b *Bootstrap) {
		b.clock = c
	}
}

// WithRegistry replaces the shortcut registry.
func WithRegistry(r *shortcut.Registry) Option {
	return func(b *Bootstrap) {
		b.registry = r
	}
}

// New -.
func New(deps Deps, automation config.Automation, shortcuts config.Shortcuts, log logger.Interface, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		deps:       deps,
		automation: automation,
		shortcuts:  shortcuts,
		log:        log,
		clock:      clock.Real(),
		registry:   shortcut.New(log),
		done:       make(chan struct{}),
	}

	if b.deps.Locator == nil {
		b.deps.Locator = fullscreen.ButtonGroupLocator{Selector: automation.Selector}
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run performs one launch and returns once the dashboard navigation has been
// issued. Only a failure to obtain settings from the form or to open the
// kiosk surface is returned; everything after that is best effort.
func (b *Bootstrap) Run(ctx context.Context) error {
	current := b.deps.Store.Load()
	displays := b.deps.Displays.Displays()

	if current.IsConfigured {
		launchesTotal.WithLabelValues("configured").Inc()
		b.log.Info("kiosk - Run - configured for %s on monitor #%d", current.DashboardURL, current.DisplayIndex+1)
	} else {
		launchesTotal.WithLabelValues("setup").Inc()
		b.log.Info("kiosk - Run - not configured, opening setup form")

		submitted, err := b.runSetup(ctx, current, displays)
		if err != nil {
			return err
		}

		current = submitted
	}

	target := display.Resolve(b.log, current.DisplayIndex, displays, b.deps.Displays.Primary())

	surface, err := b.deps.Host.OpenKiosk(ctx, KioskOptions{Display: target})
	if err != nil {
		e := ErrBootstrap

		return e.Wrap("Run", "Host.OpenKiosk", err)
	}

	driver := fullscreen.New(surface, b.deps.Locator, b.automation, b.log, fullscreen.WithClock(b.clock))

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		if cerr := surface.Close(); cerr != nil {
			b.log.Warn("kiosk - Run - closing surface: %v", cerr)
		}

		return ErrShutdown
	}

	b.surface = surface
	b.driver = driver
	b.mu.Unlock()

	if err := b.deps.Policy.Apply(ctx, surface); err != nil {
		b.log.Error(err, "kiosk - Run - trust overrides incomplete")
	}

	surface.OnClosed(func() {
		b.log.Info("kiosk - Run - kiosk window closed")
		b.doneOnce.Do(func() { close(b.done) })
	})
	surface.OnLoad(func(ctx context.Context, ev LoadEvent) { b.handleLoad(ctx, driver, ev) })
	b.registerShortcuts(surface, driver)
	surface.OnShortcut(func(ctx context.Context, accelerator string) {
		b.registry.Dispatch(ctx, accelerator)
	})

	if err := surface.Navigate(ctx, current.DashboardURL); err != nil {
		b.log.Error(err, "kiosk - Run - navigate")
	}

	return nil
}

func (b *Bootstrap) runSetup(ctx context.Context, current entity.Settings, displays []entity.Display) (entity.Settings, error) {
	form := NewSetupForm(current, displays)

	session, err := b.deps.Setup.Open(ctx, form)
	if err != nil {
		e := ErrBootstrap

		return entity.Settings{}, e.Wrap("runSetup", "SetupSurface.Open", err)
	}

	var submitted entity.Settings

	select {
	case submitted = <-session.Submitted():
	case <-session.Closed():
		b.log.Info("kiosk - runSetup - setup form closed without a submission")

		if cerr := session.Close(); cerr != nil {
			b.log.Warn("kiosk - runSetup - closing setup form: %v", cerr)
		}

		return entity.Settings{}, ErrSetupClosed
	case <-ctx.Done():
		if cerr := session.Close(); cerr != nil {
			b.log.Warn("kiosk - runSetup - closing setup form: %v", cerr)
		}

		return entity.Settings{}, ctx.Err()
	}

	submitted.IsConfigured = true

	if err := b.deps.Store.Save(submitted); err != nil {
		b.log.Warn("kiosk - runSetup - settings not persisted, the form will open again next launch")
	}

	if err := session.Close(); err != nil {
		b.log.Warn("kiosk - runSetup - closing setup form: %v", err)
	}

	return submitted, nil
}

func (b *Bootstrap) handleLoad(ctx context.Context, driver *fullscreen.Driver, ev LoadEvent) {
	if ev.Failed {
		pageLoadFailuresTotal.Inc()
		b.log.Error("kiosk - handleLoad - failed to load %s: %s (%s)", ev.URL, ev.Code, ev.Description)

		return
	}

	driver.OnLoadFinished(ctx)
}

func (b *Bootstrap) registerShortcuts(surface Surface, driver *fullscreen.Driver) {
	bindings := []struct {
		accelerator string
		name        string
		action      shortcut.Action
	}{
		{b.shortcuts.Inspector, "inspector", func(ctx context.Context) { b.toggleInspector(ctx, surface) }},
		{b.shortcuts.Trigger, "fullscreen", func(ctx context.Context) { driver.Trigger(ctx) }},
		{b.shortcuts.Exit, "exit-fullscreen", func(ctx context.Context) { driver.Exit(ctx) }},
	}

	for _, s := range bindings {
		if s.accelerator == "" {
			continue
		}

		if err := b.registry.Register(s.accelerator, s.name, s.action); err != nil {
			b.log.Warn("kiosk - registerShortcuts - %s: %v", s.name, err)
		}
	}
}

func (b *Bootstrap) toggleInspector(ctx context.Context, surface Surface) {
	open, err := b.inspector.toggle(ctx, surface)
	if err != nil {
		b.log.Warn("kiosk - toggleInspector - %v", err)

		return
	}

	b.log.Debug("kiosk - toggleInspector - open=%t", open)
}

// Done is closed when the kiosk window goes away on its own.
func (b *Bootstrap) Done() <-chan struct{} {
	return b.done
}

// Shutdown releases every shortcut, stops the driver and closes the surface.
// Calls after the first are no-ops.
func (b *Bootstrap) Shutdown() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}

	b.closed = true
	surface, driver := b.surface, b.driver
	b.mu.Unlock()

	b.registry.UnregisterAll()

	if driver != nil {
		driver.Stop()
	}

	if surface == nil {
		return nil
	}

	if err := surface.Close(); err != nil {
		e := ErrBootstrap

		return e.Wrap("Shutdown", "Surface.Close", err)
	}

	return nil
}
