package chrome

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

func TestKioskFlags(t *testing.T) {
	t.Parallel()

	d := entity.Display{Index: 1, Bounds: entity.Bounds{X: 1920, Y: -120, Width: 2560, Height: 1440}}

	tests := []struct {
		name    string
		browser config.Browser
		ignore  bool
		want    map[string]interface{}
		absent  []string
	}{
		{
			name:    "defaults",
			browser: config.Browser{KioskMode: true, DevToolsPort: 9222},
			ignore:  true,
			want: map[string]interface{}{
				"window-position":           "1920,-120",
				"window-size":               "2560,1440",
				"kiosk":                     true,
				"headless":                  false,
				"remote-debugging-port":     "9222",
				"ignore-certificate-errors": true,
				"allow-insecure-localhost":  true,
			},
		},
		{
			name:    "windowed without devtools or bypass",
			browser: config.Browser{},
			want: map[string]interface{}{
				"window-position": "1920,-120",
				"headless":        false,
			},
			absent: []string{"kiosk", "remote-debugging-port", "ignore-certificate-errors"},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags := New(tc.browser, tc.ignore, logger.New("error")).kioskFlags(d)

			for k, v := range tc.want {
				assert.Equal(t, v, flags[k], k)
			}

			for _, k := range tc.absent {
				assert.NotContains(t, flags, k)
			}
		})
	}
}

func TestWindowFlags(t *testing.T) {
	t.Parallel()

	flags := New(config.Browser{KioskMode: true}, true, logger.New("error")).windowFlags("http://127.0.0.1:5000", 600, 400)

	assert.Equal(t, "http://127.0.0.1:5000", flags["app"])
	assert.Equal(t, "600,400", flags["window-size"])
	assert.NotContains(t, flags, "kiosk")
	assert.NotContains(t, flags, "ignore-certificate-errors")
}

func TestRewriteHeaders(t *testing.T) {
	t.Parallel()

	headers := network.Headers{
		"accept":        "text/html",
		"Authorization": "Bearer from-page",
		"user-agent":    "Electron/25",
	}

	got := rewriteHeaders(context.Background(), headers, func(_ context.Context, h http.Header) {
		h.Set("Authorization", "Bearer abc")
		h.Set("User-Agent", "Kiosk/1.0")
	})

	assert.Equal(t, []*fetch.HeaderEntry{
		{Name: "Accept", Value: "text/html"},
		{Name: "Authorization", Value: "Bearer abc"},
		{Name: "User-Agent", Value: "Kiosk/1.0"},
	}, got)
}

func TestNavigationTracker(t *testing.T) {
	t.Parallel()

	tr := newNavigationTracker()

	tr.frameNavigated(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: "main", URL: "https://nvr/protect/dashboard/all"}})
	tr.frameNavigated(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: "child", ParentID: "main", URL: "https://ads/"}})

	assert.Equal(t, kiosk.LoadEvent{URL: "https://nvr/protect/dashboard/all"}, tr.loadFinished())

	tr.requestSent(&network.EventRequestWillBeSent{
		RequestID: "1", FrameID: "main", Type: network.ResourceTypeDocument,
		Request: &network.Request{URL: "https://nvr/protect/"},
	})
	tr.requestSent(&network.EventRequestWillBeSent{
		RequestID: "2", FrameID: "child", Type: network.ResourceTypeDocument,
		Request: &network.Request{URL: "https://ads/frame"},
	})
	tr.requestSent(&network.EventRequestWillBeSent{
		RequestID: "3", FrameID: "main", Type: network.ResourceTypeScript,
		Request: &network.Request{URL: "https://nvr/app.js"},
	})

	_, ok := tr.loadingFailed(&network.EventLoadingFailed{RequestID: "2", ErrorText: "net::ERR_BLOCKED_BY_CLIENT"})
	assert.False(t, ok)

	_, ok = tr.loadingFailed(&network.EventLoadingFailed{RequestID: "3", ErrorText: "net::ERR_FAILED"})
	assert.False(t, ok)

	ev, ok := tr.loadingFailed(&network.EventLoadingFailed{RequestID: "1", ErrorText: "net::ERR_CONNECTION_REFUSED"})
	require.True(t, ok)
	assert.Equal(t, kiosk.LoadEvent{
		URL:         "https://nvr/protect/",
		Failed:      true,
		Code:        "net::ERR_CONNECTION_REFUSED",
		Description: "request failed",
	}, ev)

	_, ok = tr.loadingFailed(&network.EventLoadingFailed{RequestID: "1"})
	assert.False(t, ok)
}

func TestInspectorURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"http://127.0.0.1:9222/devtools/inspector.html?ws=127.0.0.1:9222/devtools/page/ABC123",
		inspectorURL(9222, "ABC123"))
}

func TestSetInspectorOpen_NeedsDevToolsPort(t *testing.T) {
	t.Parallel()

	s := newSurface(context.Background(), func() {}, 0, logger.New("error"))

	require.ErrorIs(t, s.SetInspectorOpen(context.Background(), true), ErrInspectorUnavailable)
}

func TestOnEvent_DispatchesToHandlers(t *testing.T) {
	t.Parallel()

	s := newSurface(context.Background(), func() {}, 0, logger.New("error"))

	loads := make(chan kiosk.LoadEvent, 1)
	keys := make(chan string, 1)

	s.OnLoad(func(_ context.Context, ev kiosk.LoadEvent) { loads <- ev })
	s.OnShortcut(func(_ context.Context, accelerator string) { keys <- accelerator })

	s.onEvent(&page.EventFrameNavigated{Frame: &cdp.Frame{ID: "main", URL: "https://nvr/"}})
	s.onEvent(&page.EventLoadEventFired{})

	assert.Equal(t, kiosk.LoadEvent{URL: "https://nvr/"}, <-loads)

	s.onEvent(&cdpruntime.EventBindingCalled{Name: "other", Payload: "Escape"})
	s.onEvent(&cdpruntime.EventBindingCalled{Name: shortcutBinding, Payload: "Ctrl+Shift+I"})

	assert.Equal(t, "Ctrl+Shift+I", <-keys)
}

func TestOnEvent_UnauthorizedResponses(t *testing.T) {
	t.Parallel()

	s := newSurface(context.Background(), func() {}, 0, logger.New("error"))

	rejected := make(chan string, 2)
	s.OnUnauthorized(func(_ context.Context, url string) { rejected <- url })

	s.onEvent(&network.EventResponseReceived{Response: &network.Response{URL: "https://nvr/ok", Status: http.StatusOK}})
	s.onEvent(&network.EventResponseReceived{Response: &network.Response{URL: "https://nvr/proxy/protect/api/bootstrap", Status: http.StatusUnauthorized}})

	select {
	case url := <-rejected:
		assert.Equal(t, "https://nvr/proxy/protect/api/bootstrap", url)
	case <-time.After(time.Second):
		t.Fatal("401 not reported")
	}

	assert.Empty(t, rejected)
}

func TestTargetGone_RunsClosedHandlerOnce(t *testing.T) {
	t.Parallel()

	s := newSurface(context.Background(), func() {}, 0, logger.New("error"))

	closed := make(chan struct{}, 2)
	s.OnClosed(func() { closed <- struct{}{} })

	s.targetGone()
	s.targetGone()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("closed handler not called")
	}

	assert.Never(t, func() bool { return len(closed) > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestOnClosed_AfterTargetGone(t *testing.T) {
	t.Parallel()

	s := newSurface(context.Background(), func() {}, 0, logger.New("error"))
	s.targetGone()

	closed := make(chan struct{}, 1)
	s.OnClosed(func() { closed <- struct{}{} })

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("late handler not called")
	}
}

func TestDestroyed(t *testing.T) {
	t.Parallel()

	assert.True(t, destroyed(&target.EventTargetDestroyed{TargetID: "kiosk"}, "kiosk"))
	assert.False(t, destroyed(&target.EventTargetDestroyed{TargetID: "inspector"}, "kiosk"))
	assert.False(t, destroyed(&page.EventLoadEventFired{}, "kiosk"))
}
