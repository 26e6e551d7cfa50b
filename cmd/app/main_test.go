package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmgaston/protect-kiosk/config"
	"github.com/nmgaston/protect-kiosk/internal/app"
	secrets "github.com/nmgaston/protect-kiosk/pkg/secrets/vault"
)

var (
	errDial    = errors.New("dial failed")
	errMissing = errors.New("key not found")
)

type fakeTokenStore struct {
	values map[string]string
	setErr error
	sets   int
}

func (f *fakeTokenStore) GetKeyValue(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", errMissing
	}

	return v, nil
}

func (f *fakeTokenStore) SetKeyValue(_ context.Context, key, value string) error {
	f.sets++

	if f.setErr != nil {
		return f.setErr
	}

	f.values[key] = value

	return nil
}

//nolint:paralleltest // swaps package-level function pointers
func TestHandleSecretsConfig(t *testing.T) {
	orig := newSecretsClientFunc

	t.Cleanup(func() { newSecretsClientFunc = orig })

	tests := []struct {
		name      string
		secrets   config.Secrets
		clientErr error
		wantErr   error
	}{
		{
			name:    "no address",
			wantErr: ErrSecretStoreAddressNotConfigured,
		},
		{
			name:    "no token",
			secrets: config.Secrets{Address: "http://127.0.0.1:8200"},
			wantErr: ErrSecretStoreTokenNotConfigured,
		},
		{
			name:      "client error",
			secrets:   config.Secrets{Address: "http://127.0.0.1:8200", Token: "root"},
			clientErr: errDial,
			wantErr:   errDial,
		},
		{
			name:    "connected",
			secrets: config.Secrets{Address: "http://127.0.0.1:8200", Token: "root", Path: "secret/data/kiosk"},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			newSecretsClientFunc = func(cfg *config.Secrets, opts ...secrets.Option) (*secrets.Client, error) {
				if tc.clientErr != nil {
					return nil, tc.clientErr
				}

				return orig(cfg, opts...)
			}

			client, err := handleSecretsConfig(&config.Config{Secrets: tc.secrets})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.secrets.Path, client.Path())
		})
	}
}

//nolint:paralleltest // swaps package-level function pointers
func TestEntrypoint_WiresSecretStore(t *testing.T) {
	origConfig, origRun := initializeConfigFunc, runAppFunc

	t.Cleanup(func() {
		initializeConfigFunc, runAppFunc = origConfig, origRun
		app.SecretStore = nil
	})

	cfg := &config.Config{Secrets: config.Secrets{Address: "http://127.0.0.1:8200", Token: "root"}}

	var ran *config.Config

	initializeConfigFunc = func() (*config.Config, error) { return cfg, nil }
	runAppFunc = func(c *config.Config) { ran = c }

	main()

	assert.Same(t, cfg, ran)
	assert.NotNil(t, app.SecretStore)
}

func TestSyncBearerToken(t *testing.T) {
	t.Parallel()

	trustCfg := config.Trust{BearerToken: "from-config", VaultKey: "kiosk-bearer-token", SyncBearerToken: true}

	tests := []struct {
		name     string
		trust    func(config.Trust) config.Trust
		stored   map[string]string
		setErr   error
		wantSets int
		want     string
	}{
		{
			name:     "writes a missing token",
			trust:    func(c config.Trust) config.Trust { return c },
			stored:   map[string]string{},
			wantSets: 1,
			want:     "from-config",
		},
		{
			name:     "replaces a different token",
			trust:    func(c config.Trust) config.Trust { return c },
			stored:   map[string]string{"kiosk-bearer-token": "stale"},
			wantSets: 1,
			want:     "from-config",
		},
		{
			name:   "skips an identical token",
			trust:  func(c config.Trust) config.Trust { return c },
			stored: map[string]string{"kiosk-bearer-token": "from-config"},
			want:   "from-config",
		},
		{
			name: "disabled",
			trust: func(c config.Trust) config.Trust {
				c.SyncBearerToken = false

				return c
			},
			stored: map[string]string{},
		},
		{
			name: "no literal token",
			trust: func(c config.Trust) config.Trust {
				c.BearerToken = ""

				return c
			},
			stored: map[string]string{},
		},
		{
			name:     "write failure is tolerated",
			trust:    func(c config.Trust) config.Trust { return c },
			stored:   map[string]string{},
			setErr:   errDial,
			wantSets: 1,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeTokenStore{values: tc.stored, setErr: tc.setErr}
			syncBearerToken(context.Background(), &config.Config{Trust: tc.trust(trustCfg)}, store)

			assert.Equal(t, tc.wantSets, store.sets)
			assert.Equal(t, tc.want, store.values["kiosk-bearer-token"])
		})
	}
}
