// Package chrome hosts the kiosk and setup windows in Google Chrome or
// Chromium, driven over the DevTools protocol.
package chrome

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/chromedp/cdproto/network"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

var ErrChromeHost = kioskerrors.CreateConsoleError("ChromeHost")

// Host launches one browser process per window it opens.
type Host struct {
	browser            config.Browser
	ignoreCertificates bool
	log                logger.Interface
}

// New -.
func New(browser config.Browser, ignoreCertificates bool, log logger.Interface) *Host {
	return &Host{
		browser:            browser,
		ignoreCertificates: ignoreCertificates,
		log:                log,
	}
}

// kioskFlags are the command-line switches of the kiosk browser. The window
// covers the display's bounds and carries no browser chrome.
func (h *Host) kioskFlags(d entity.Display) map[string]interface{} {
	flags := map[string]interface{}{
		"headless":                       false,
		"enable-automation":              false,
		"noerrdialogs":                   true,
		"disable-infobars":               true,
		"disable-session-crashed-bubble": true,
		"disable-translate":              true,
		"autoplay-policy":                "no-user-gesture-required",
		"window-position":                fmt.Sprintf("%d,%d", d.Bounds.X, d.Bounds.Y),
		"window-size":                    fmt.Sprintf("%d,%d", d.Bounds.Width, d.Bounds.Height),
		"start-fullscreen":               true,
	}

	if h.browser.KioskMode {
		flags["kiosk"] = true
	}

	if h.browser.DevToolsPort > 0 {
		flags["remote-debugging-port"] = strconv.Itoa(h.browser.DevToolsPort)
	}

	if h.ignoreCertificates {
		flags["ignore-certificate-errors"] = true
		flags["allow-insecure-localhost"] = true
	}

	return flags
}

func (h *Host) allocatorOptions(flags map[string]interface{}, persistentProfile bool) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)

	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		opts = append(opts, chromedp.Flag(name, flags[name]))
	}

	if h.browser.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(h.browser.ExecPath))
	}

	if persistentProfile && h.browser.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(h.browser.UserDataDir))
	}

	return opts
}

func (h *Host) contextOptions() []chromedp.ContextOption {
	return []chromedp.ContextOption{
		chromedp.WithLogf(logger.Printf(h.log, logger.LevelDebug, "chrome - ")),
		chromedp.WithErrorf(logger.Printf(h.log, logger.LevelDebug, "chrome - ")),
	}
}

// OpenKiosk starts the browser on opts.Display and prepares the page for
// load tracking and shortcut delivery. Nothing is loaded yet.
func (h *Host) OpenKiosk(ctx context.Context, opts kiosk.KioskOptions) (kiosk.Surface, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, h.allocatorOptions(h.kioskFlags(opts.Display), true)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, h.contextOptions()...)

	s := newSurface(tabCtx, func() {
		tabCancel()
		allocCancel()
	}, h.browser.DevToolsPort, h.log)

	chromedp.ListenTarget(tabCtx, s.onEvent)

	err := chromedp.Run(tabCtx,
		network.Enable(),
		cdpruntime.AddBinding(shortcutBinding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := addScript(shortcutScript).Do(ctx)

			return err
		}),
	)
	if err != nil {
		s.cancel()

		e := ErrChromeHost

		return nil, e.Wrap("OpenKiosk", "chromedp.Run", err)
	}

	if err := watchClosed(tabCtx, s.targetGone); err != nil {
		h.log.Warn("chrome - OpenKiosk - closing the window will not stop the kiosk: %v", err)
	}

	h.log.Info("chrome - OpenKiosk - window on %s at %d,%d", opts.Display.Label(), opts.Display.Bounds.X, opts.Display.Bounds.Y)

	return s, nil
}
