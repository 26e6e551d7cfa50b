package secrets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmgaston/protect-kiosk/config"
)

// fakeVault serves the subset of the KV v2 HTTP API the client uses.
type fakeVault struct {
	mu      sync.Mutex
	secrets map[string]map[string]interface{}
}

func (f *fakeVault) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/")

	switch r.Method {
	case http.MethodGet:
		data, ok := f.secrets[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"data": data},
		})
	case http.MethodPut, http.MethodPost:
		var body struct {
			Data map[string]interface{} `json:"data"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		f.secrets[path] = body.Data

		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestClient(t *testing.T, secrets map[string]map[string]interface{}) (*Client, *fakeVault) {
	t.Helper()

	fv := &fakeVault{secrets: secrets}
	srv := httptest.NewServer(fv)
	t.Cleanup(srv.Close)

	client, err := NewClient(&config.Secrets{Address: srv.URL, Token: "root", Path: "secret/data/kiosk"})
	require.NoError(t, err)

	return client, fv
}

func TestNewClient_WithInjectedClientAndPath(t *testing.T) {
	t.Parallel()

	mockVaultClient := &api.Client{}

	client, err := NewClient(nil, WithClient(mockVaultClient), WithPath("secret/data/custom"))

	assert.NoError(t, err)
	assert.Equal(t, mockVaultClient, client.client)
	assert.Equal(t, "secret/data/custom", client.Path())
}

func TestNewClient_ConfigPath(t *testing.T) {
	t.Parallel()

	client, err := NewClient(&config.Secrets{Address: "http://localhost:8200", Path: "secret/data/lobby"})

	assert.NoError(t, err)
	assert.Equal(t, "secret/data/lobby", client.Path())
}

func TestGetKeyValue(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, map[string]map[string]interface{}{
		"secret/data/kiosk/keys":          {"kiosk-bearer-token": "tok-123", "number": 5},
		"secret/data/kiosk/tokens/lobby1": {"value": "tok-lobby"},
	})

	ctx := context.Background()

	v, err := client.GetKeyValue(ctx, "kiosk-bearer-token")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", v)

	v, err = client.GetKeyValue(ctx, "tokens/lobby1")
	require.NoError(t, err)
	assert.Equal(t, "tok-lobby", v)

	_, err = client.GetKeyValue(ctx, "missing")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	_, err = client.GetKeyValue(ctx, "number")
	assert.ErrorContains(t, err, "not a string")

	_, err = client.GetKeyValue(ctx, "tokens/none")
	assert.Error(t, err)
}

func TestSetKeyValue_PreservesSiblings(t *testing.T) {
	t.Parallel()

	client, fv := newTestClient(t, map[string]map[string]interface{}{
		"secret/data/kiosk/keys": {"other": "keep"},
	})

	require.NoError(t, client.SetKeyValue(context.Background(), "kiosk-bearer-token", "rotated"))

	fv.mu.Lock()
	defer fv.mu.Unlock()

	assert.Equal(t, map[string]interface{}{"other": "keep", "kiosk-bearer-token": "rotated"}, fv.secrets["secret/data/kiosk/keys"])
}
