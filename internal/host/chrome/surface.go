package chrome

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/security"
	"github.com/chromedp/chromedp"

	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

var ErrInspectorUnavailable = errors.New("inspector needs browser.devtools_port to be set")

// Surface is one browser tab. Every action runs on the tab's own context;
// the caller's context only gates whether the action starts.
type Surface struct {
	ctx          context.Context
	cancel       func()
	devToolsPort int
	log          logger.Interface

	mu         sync.Mutex
	onLoad     func(ctx context.Context, ev kiosk.LoadEvent)
	onShortcut func(ctx context.Context, accelerator string)
	onUnauth   func(ctx context.Context, url string)
	onClosed   func()
	gone       bool
	rewrite    func(ctx context.Context, header http.Header)
	navigation navigationTracker

	inspectorMu sync.Mutex
	inspector   context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

func newSurface(ctx context.Context, cancel func(), devToolsPort int, log logger.Interface) *Surface {
	return &Surface{
		ctx:          ctx,
		cancel:       cancel,
		devToolsPort: devToolsPort,
		log:          log,
		navigation:   newNavigationTracker(),
	}
}

func (s *Surface) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return chromedp.Run(s.ctx, actions...)
}

// IgnoreCertificateErrors -.
func (s *Surface) IgnoreCertificateErrors(ctx context.Context) error {
	return s.run(ctx, security.SetIgnoreCertificateErrors(true))
}

// SetUserAgent -.
func (s *Surface) SetUserAgent(ctx context.Context, userAgent string) error {
	return s.run(ctx, emulation.SetUserAgentOverride(userAgent))
}

// InterceptRequests pauses every request at the request stage and continues
// it with the headers rewrite produced.
func (s *Surface) InterceptRequests(ctx context.Context, rewrite func(ctx context.Context, header http.Header)) error {
	s.mu.Lock()
	s.rewrite = rewrite
	s.mu.Unlock()

	return s.run(ctx, fetch.Enable().WithPatterns([]*fetch.RequestPattern{
		{URLPattern: "*", RequestStage: fetch.RequestStageRequest},
	}))
}

// Evaluate -.
func (s *Surface) Evaluate(ctx context.Context, expression string, res any) error {
	return s.run(ctx, chromedp.Evaluate(expression, res))
}

// Navigate loads url and waits for the load to finish.
func (s *Surface) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

// OnLoad -.
func (s *Surface) OnLoad(handler func(ctx context.Context, ev kiosk.LoadEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onLoad = handler
}

// OnShortcut -.
func (s *Surface) OnShortcut(handler func(ctx context.Context, accelerator string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onShortcut = handler
}

// OnUnauthorized -.
func (s *Surface) OnUnauthorized(handler func(ctx context.Context, url string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onUnauth = handler
}

// OnClosed registers handler for the tab going away. If it already has, the
// handler runs right away.
func (s *Surface) OnClosed(handler func()) {
	s.mu.Lock()
	s.onClosed = handler
	gone := s.gone
	s.mu.Unlock()

	if gone && handler != nil {
		go handler()
	}
}

// targetGone runs the closed handler at most once.
func (s *Surface) targetGone() {
	s.mu.Lock()
	if s.gone {
		s.mu.Unlock()

		return
	}

	s.gone = true
	handler := s.onClosed
	s.mu.Unlock()

	if handler != nil {
		go handler()
	}
}

// SetInspectorOpen opens the DevTools front end for this tab in a second tab,
// or closes it.
func (s *Surface) SetInspectorOpen(ctx context.Context, open bool) error {
	if s.devToolsPort <= 0 {
		return ErrInspectorUnavailable
	}

	s.inspectorMu.Lock()
	defer s.inspectorMu.Unlock()

	if !open {
		if s.inspector != nil {
			s.inspector()
			s.inspector = nil
		}

		return nil
	}

	if s.inspector != nil {
		return nil
	}

	c := chromedp.FromContext(s.ctx)
	if c == nil || c.Target == nil {
		return chromedp.ErrInvalidContext
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tabCtx, cancel := chromedp.NewContext(s.ctx)

	if err := chromedp.Run(tabCtx, chromedp.Navigate(inspectorURL(s.devToolsPort, string(c.Target.TargetID)))); err != nil {
		cancel()

		return fmt.Errorf("open inspector: %w", err)
	}

	s.inspector = cancel

	return nil
}

func inspectorURL(port int, targetID string) string {
	return fmt.Sprintf("http://127.0.0.1:%d/devtools/inspector.html?ws=127.0.0.1:%d/devtools/page/%s", port, port, targetID)
}

// Close shuts the browser down. It is safe to call more than once.
func (s *Surface) Close() error {
	s.closeOnce.Do(func() {
		s.inspectorMu.Lock()
		if s.inspector != nil {
			s.inspector()
			s.inspector = nil
		}
		s.inspectorMu.Unlock()

		s.closeErr = chromedp.Cancel(s.ctx)
		s.cancel()

		if errors.Is(s.closeErr, context.Canceled) {
			s.closeErr = nil
		}
	})

	return s.closeErr
}
