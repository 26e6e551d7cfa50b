package chrome

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/chromedp"
)

// Window is a small app-mode browser window showing one local page.
type Window struct {
	ctx    context.Context
	cancel func()
	once   sync.Once
	err    error

	done     chan struct{}
	doneOnce sync.Once
}

func (h *Host) windowFlags(url string, width, height int) map[string]interface{} {
	return map[string]interface{}{
		"headless":          false,
		"enable-automation": false,
		"disable-infobars":  true,
		"app":               url,
		"window-size":       fmt.Sprintf("%d,%d", width, height),
	}
}

// OpenWindow shows url in a window of the given size.
func (h *Host) OpenWindow(ctx context.Context, url string, width, height int) (*Window, error) {
	// A throwaway profile keeps the setup window apart from the kiosk browser.
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, h.allocatorOptions(h.windowFlags(url, width, height), false)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, h.contextOptions()...)

	w := &Window{ctx: tabCtx, done: make(chan struct{}), cancel: func() {
		tabCancel()
		allocCancel()
	}}

	if err := chromedp.Run(tabCtx, chromedp.Navigate(url)); err != nil {
		w.cancel()

		e := ErrChromeHost

		return nil, e.Wrap("OpenWindow", "chromedp.Run", err)
	}

	if err := watchClosed(tabCtx, w.gone); err != nil {
		h.log.Warn("chrome - OpenWindow - close detection unavailable: %v", err)
	}

	h.log.Info("chrome - OpenWindow - %s", url)

	return w, nil
}

// Done is closed once the window is gone, whether the operator closed it or
// Close was called.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

func (w *Window) gone() {
	w.doneOnce.Do(func() { close(w.done) })
}

// Close -.
func (w *Window) Close() error {
	w.once.Do(func() {
		w.err = chromedp.Cancel(w.ctx)
		w.cancel()

		if errors.Is(w.err, context.Canceled) {
			w.err = nil
		}
	})

	return w.err
}
