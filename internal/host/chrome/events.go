package chrome

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
)

// navigationTracker follows the main frame's document requests so a failed
// load can be reported with its URL.
type navigationTracker struct {
	mainFrame cdp.FrameID
	current   string
	documents map[network.RequestID]string
}

func newNavigationTracker() navigationTracker {
	return navigationTracker{documents: make(map[network.RequestID]string)}
}

func (t *navigationTracker) requestSent(ev *network.EventRequestWillBeSent) {
	if ev.Type != network.ResourceTypeDocument || ev.Request == nil {
		return
	}

	if t.mainFrame != "" && ev.FrameID != t.mainFrame {
		return
	}

	t.documents[ev.RequestID] = ev.Request.URL
}

func (t *navigationTracker) frameNavigated(ev *page.EventFrameNavigated) {
	if ev.Frame == nil || ev.Frame.ParentID != "" {
		return
	}

	t.mainFrame = ev.Frame.ID
	t.current = ev.Frame.URL
}

// loadingFailed returns the failure as a LoadEvent when it belongs to a
// tracked main-frame document.
func (t *navigationTracker) loadingFailed(ev *network.EventLoadingFailed) (kiosk.LoadEvent, bool) {
	url, ok := t.documents[ev.RequestID]
	if !ok {
		return kiosk.LoadEvent{}, false
	}

	delete(t.documents, ev.RequestID)

	description := "request failed"

	switch {
	case ev.BlockedReason != "":
		description = "blocked: " + ev.BlockedReason.String()
	case ev.Canceled:
		description = "canceled"
	}

	return kiosk.LoadEvent{URL: url, Failed: true, Code: ev.ErrorText, Description: description}, true
}

func (t *navigationTracker) loadFinished() kiosk.LoadEvent {
	clear(t.documents)

	return kiosk.LoadEvent{URL: t.current}
}

// onEvent runs on the tab's event loop. It must not block, so anything that
// talks back to the browser or calls out is handed to a goroutine.
func (s *Surface) onEvent(ev interface{}) {
	switch ev := ev.(type) {
	case *network.EventRequestWillBeSent:
		s.mu.Lock()
		s.navigation.requestSent(ev)
		s.mu.Unlock()
	case *page.EventFrameNavigated:
		s.mu.Lock()
		s.navigation.frameNavigated(ev)
		s.mu.Unlock()
	case *network.EventLoadingFailed:
		s.mu.Lock()
		le, ok := s.navigation.loadingFailed(ev)
		handler := s.onLoad
		s.mu.Unlock()

		if ok && handler != nil {
			go handler(s.ctx, le)
		}
	case *page.EventLoadEventFired:
		s.mu.Lock()
		le := s.navigation.loadFinished()
		handler := s.onLoad
		s.mu.Unlock()

		if handler != nil {
			go handler(s.ctx, le)
		}
	case *network.EventResponseReceived:
		if ev.Response == nil || ev.Response.Status != http.StatusUnauthorized {
			return
		}

		s.mu.Lock()
		handler := s.onUnauth
		s.mu.Unlock()

		if handler != nil {
			go handler(s.ctx, ev.Response.URL)
		}
	case *fetch.EventRequestPaused:
		go s.continueRequest(ev)
	case *cdpruntime.EventBindingCalled:
		if ev.Name != shortcutBinding {
			return
		}

		s.mu.Lock()
		handler := s.onShortcut
		s.mu.Unlock()

		if handler != nil {
			go handler(s.ctx, ev.Payload)
		}
	}
}

func (s *Surface) continueRequest(ev *fetch.EventRequestPaused) {
	s.mu.Lock()
	rewrite := s.rewrite
	s.mu.Unlock()

	cont := fetch.ContinueRequest(ev.RequestID)

	if rewrite != nil && ev.Request != nil {
		cont = cont.WithHeaders(rewriteHeaders(s.ctx, ev.Request.Headers, rewrite))
	}

	if err := chromedp.Run(s.ctx, cont); err != nil {
		s.log.Debug("chrome - continueRequest - %s: %v", ev.RequestID, err)
	}
}

// rewriteHeaders applies rewrite to a request's headers and returns them in
// the form Fetch.continueRequest takes, sorted by name.
func rewriteHeaders(ctx context.Context, headers network.Headers, rewrite func(ctx context.Context, header http.Header)) []*fetch.HeaderEntry {
	header := make(http.Header, len(headers))

	for name, value := range headers {
		header.Set(name, fmt.Sprint(value))
	}

	rewrite(ctx, header)

	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}

	sort.Strings(names)

	entries := make([]*fetch.HeaderEntry, 0, len(names))

	for _, name := range names {
		for _, value := range header[name] {
			entries = append(entries, &fetch.HeaderEntry{Name: name, Value: value})
		}
	}

	return entries
}

// watchClosed calls closed once the browser destroys the tab behind ctx or
// the tab's context ends, whichever comes first.
func watchClosed(ctx context.Context, closed func()) error {
	c := chromedp.FromContext(ctx)
	if c == nil || c.Target == nil || c.Browser == nil {
		return chromedp.ErrInvalidContext
	}

	id := c.Target.TargetID

	chromedp.ListenBrowser(ctx, func(ev interface{}) {
		if destroyed(ev, id) {
			closed()
		}
	})

	go func() {
		<-ctx.Done()
		closed()
	}()

	return target.SetDiscoverTargets(true).Do(cdp.WithExecutor(ctx, c.Browser))
}

func destroyed(ev interface{}, id target.ID) bool {
	d, ok := ev.(*target.EventTargetDestroyed)

	return ok && d.TargetID == id
}
