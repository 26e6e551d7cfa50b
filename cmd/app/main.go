package main

import (
	"context"
	"errors"
	"log"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/app"
	secrets "github.com/nmgaston/protect-kiosk/pkg/secrets/vault"
)

// Sentinel errors for configuration.
var (
	ErrSecretStoreAddressNotConfigured = errors.New("secret store address not configured")
	ErrSecretStoreTokenNotConfigured   = errors.New("secret store token not configured")
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
	newSecretsClientFunc = secrets.NewClient
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// The bearer token may live in Vault; without a secret store it comes from
	// configuration or the OS keyring.
	secretsClient, secretsErr := handleSecretsConfig(cfg)
	if secretsErr == nil {
		app.SecretStore = secretsClient

		syncBearerToken(context.Background(), cfg, secretsClient)
	}

	runAppFunc(cfg)
}

func handleSecretsConfig(cfg *config.Config) (*secrets.Client, error) {
	if cfg.Secrets.Address == "" {
		return nil, ErrSecretStoreAddressNotConfigured
	}

	if cfg.Secrets.Token == "" {
		log.Printf("Secret store at %s configured without a token, skipping", cfg.Secrets.Address)

		return nil, ErrSecretStoreTokenNotConfigured
	}

	secretsClient, err := newSecretsClientFunc(&cfg.Secrets)
	if err != nil {
		log.Printf("Failed to connect to secret store: %v", err)

		return nil, err
	}

	log.Printf("Connected to secret store at: %s", cfg.Secrets.Address)

	return secretsClient, nil
}

// tokenWriter is the part of the secret store syncBearerToken needs.
type tokenWriter interface {
	GetKeyValue(ctx context.Context, key string) (string, error)
	SetKeyValue(ctx context.Context, key, value string) error
}

// syncBearerToken copies a bearer token given in configuration into the secret
// store so kiosks configured only with a vault key pick it up.
func syncBearerToken(ctx context.Context, cfg *config.Config, store tokenWriter) {
	if !cfg.Trust.SyncBearerToken || cfg.Trust.BearerToken == "" || cfg.Trust.VaultKey == "" {
		return
	}

	if current, err := store.GetKeyValue(ctx, cfg.Trust.VaultKey); err == nil && current == cfg.Trust.BearerToken {
		return
	}

	if err := store.SetKeyValue(ctx, cfg.Trust.VaultKey, cfg.Trust.BearerToken); err != nil {
		log.Printf("Warning: Failed to sync bearer token to secret store: %v", err)

		return
	}

	log.Println("Bearer token synced to secret store")
}
