// Package secrets reads kiosk credentials from a HashiCorp Vault KV v2 engine.
package secrets

import (
	"github.com/hashicorp/vault/api"

	"github.com/nmgaston/protect-kiosk/config"
)

// DefaultSecretPath is used when no path is configured.
const DefaultSecretPath = "secret/data/kiosk"

// Client reads key/value secrets from Vault.
type Client struct {
	client *api.Client
	path   string // Base path for all secrets (e.g., "secret/data/kiosk")
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client (useful for testing).
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new Vault Client instance.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		client.SetToken(cfg.Token)
		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}

// Path -.
func (c *Client) Path() string {
	return c.path
}
