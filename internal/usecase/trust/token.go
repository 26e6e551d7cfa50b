package trust

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zalando/go-keyring"

	"github.com/nmgaston/protect-kiosk/internal/cache"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// TokenSource yields the bearer credential. An empty token with a nil
// error means the source has nothing configured.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Static is a credential taken verbatim from configuration.
type Static string

// Token -.
func (s Static) Token(context.Context) (string, error) {
	return string(s), nil
}

// SecretReader is the subset of the Vault client the token source needs.
type SecretReader interface {
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// Vault reads the credential from a secret store key.
type Vault struct {
	Reader SecretReader
	Key    string
}

// Token -.
func (v Vault) Token(ctx context.Context) (string, error) {
	token, err := v.Reader.GetKeyValue(ctx, v.Key)
	if err != nil {
		return "", fmt.Errorf("vault key %s: %w", v.Key, err)
	}

	return token, nil
}

// keyringGet is swapped in tests; the OS keyring is not available in CI.
var keyringGet = keyring.Get

// Keyring reads the credential from the OS keyring.
type Keyring struct {
	Service string
	User    string
}

// Token -.
func (k Keyring) Token(context.Context) (string, error) {
	token, err := keyringGet(k.Service, k.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("keyring %s/%s: %w", k.Service, k.User, err)
	}

	return token, nil
}

// Chain returns the first non-empty token. Errors from earlier sources are
// only returned when no later source yields a token.
type Chain []TokenSource

// Token -.
func (c Chain) Token(ctx context.Context) (string, error) {
	var errs []error

	for _, src := range c {
		token, err := src.Token(ctx)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		if token != "" {
			return token, nil
		}
	}

	return "", errors.Join(errs...)
}

// Invalidate drops every cached token in the chain.
func (c Chain) Invalidate() {
	for _, src := range c {
		if inv, ok := src.(Invalidator); ok {
			inv.Invalidate()
		}
	}
}

// Invalidator is a source that can forget what it resolved, so the next
// lookup goes back to the backing store.
type Invalidator interface {
	Invalidate()
}

// Cached remembers a source's answer for the cache TTL, so a per-request
// lookup does not hit the secret store. Empty answers and errors are cached
// too; a rotated or newly provisioned secret is picked up once the entry
// expires or is invalidated.
type Cached struct {
	source TokenSource
	cache  *cache.Cache
	key    string
}

type lookup struct {
	token string
	err   error
}

// NewCached -.
func NewCached(name string, source TokenSource, ttl time.Duration) *Cached {
	return &Cached{
		source: source,
		cache:  cache.New(ttl),
		key:    cache.MakeTokenKey(name),
	}
}

// Token -.
func (c *Cached) Token(ctx context.Context) (string, error) {
	if v, ok := c.cache.Get(c.key); ok {
		if res, ok := v.(lookup); ok {
			return res.token, res.err
		}
	}

	token, err := c.source.Token(ctx)
	if err != nil {
		token = ""
	}

	c.cache.Set(c.key, lookup{token: token, err: err})

	return token, err
}

// Invalidate -.
func (c *Cached) Invalidate() {
	c.cache.Delete(c.key)
}

// inspectToken warns when a JWT credential has expired. Tokens that are not
// JWTs are opaque and left alone.
func inspectToken(log logger.Interface, token string) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Debug("trust - inspectToken - bearer token is not a JWT")

		return
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	if exp.Before(time.Now()) {
		log.Warn("trust - inspectToken - bearer token expired at %s", exp.UTC().Format(time.RFC3339))

		return
	}

	log.Info("trust - inspectToken - bearer token valid until %s", exp.UTC().Format(time.RFC3339))
}
