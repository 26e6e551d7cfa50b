// Package trust applies the kiosk surface's network trust overrides:
// certificate bypass, a forced bearer credential and a fixed client identity.
package trust

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// Session is the network session of one surface.
type Session interface {
	// IgnoreCertificateErrors accepts every certificate for this session.
	IgnoreCertificateErrors(ctx context.Context) error
	// SetUserAgent overrides the client identity the session reports.
	SetUserAgent(ctx context.Context, userAgent string) error
	// InterceptRequests calls rewrite with the headers of every outbound
	// request before it is sent.
	InterceptRequests(ctx context.Context, rewrite func(ctx context.Context, header http.Header)) error
	// OnUnauthorized calls handler for every response that answers 401.
	OnUnauthorized(handler func(ctx context.Context, url string))
}

var ErrTrustPolicy = kioskerrors.CreateConsoleError("TrustPolicy")

// Policy -.
type Policy struct {
	ignoreCertificates bool
	userAgent          string
	tokens             TokenSource
	log                logger.Interface

	warnOnce sync.Once

	mu      sync.Mutex
	lastErr string
}

// New -.
func New(ignoreCertificates bool, userAgent string, tokens TokenSource, log logger.Interface) *Policy {
	return &Policy{
		ignoreCertificates: ignoreCertificates,
		userAgent:          userAgent,
		tokens:             tokens,
		log:                log,
	}
}

// Apply installs the overrides on s. It attempts every override and joins
// the failures; none of them is fatal to the surface.
func (p *Policy) Apply(ctx context.Context, s Session) error {
	var errs []error

	if p.ignoreCertificates {
		if err := s.IgnoreCertificateErrors(ctx); err != nil {
			e := ErrTrustPolicy
			errs = append(errs, e.Wrap("Apply", "IgnoreCertificateErrors", err))
		}
	}

	if p.userAgent != "" {
		if err := s.SetUserAgent(ctx, p.userAgent); err != nil {
			e := ErrTrustPolicy
			errs = append(errs, e.Wrap("Apply", "SetUserAgent", err))
		}
	}

	// Report a missing credential at launch, not only on the first request.
	if token, ok := p.token(ctx); ok {
		inspectToken(p.log, token)
	}

	s.OnUnauthorized(p.Unauthorized)

	if err := s.InterceptRequests(ctx, p.Rewrite); err != nil {
		e := ErrTrustPolicy
		errs = append(errs, e.Wrap("Apply", "InterceptRequests", err))
	}

	return errors.Join(errs...)
}

// Rewrite sets the bearer credential and client identity on an outbound
// request, replacing whatever the page put there.
func (p *Policy) Rewrite(ctx context.Context, header http.Header) {
	if p.userAgent != "" {
		header.Set("User-Agent", p.userAgent)
	}

	token, ok := p.token(ctx)
	if !ok {
		return
	}

	header.Set("Authorization", "Bearer "+token)
}

// Unauthorized evicts cached credentials after the server rejected one, so
// the next request reads the secret store again.
func (p *Policy) Unauthorized(_ context.Context, url string) {
	if inv, ok := p.tokens.(Invalidator); ok {
		inv.Invalidate()
	}

	p.log.Debug("trust - Unauthorized - %s answered 401, cached bearer token evicted", url)
}

// token resolves the credential. A lookup error is warned about once until
// it changes or a token is found again.
func (p *Policy) token(ctx context.Context) (string, bool) {
	token, err := p.tokens.Token(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		if msg := err.Error(); msg != p.lastErr {
			p.lastErr = msg
			p.log.Warn("trust - token - bearer token unavailable: %v", err)
		}

		return "", false
	}

	p.lastErr = ""

	if token == "" {
		p.warnOnce.Do(func() {
			p.log.Warn("trust - token - no bearer token configured, requests are sent without Authorization")
		})

		return "", false
	}

	return token, true
}
