package settings_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/usecase/settings"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

const defaultURL = "https://10.0.1.58/protect/dashboard/all"

func newStore(t *testing.T) *settings.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "protect-kiosk", "config.json")

	return settings.New(path, entity.Settings{DashboardURL: defaultURL, DisplayIndex: 2}, logger.New("error"))
}

func writeFile(t *testing.T, s *settings.Store, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	got := s.Load()

	assert.Equal(t, entity.Settings{DashboardURL: defaultURL, DisplayIndex: 2, IsConfigured: false}, got)
}

func TestNew_DefaultsAreNeverConfigured(t *testing.T) {
	t.Parallel()

	s := settings.New(filepath.Join(t.TempDir(), "c.json"), entity.Settings{DashboardURL: defaultURL, IsConfigured: true}, logger.New("error"))

	assert.False(t, s.Defaults().IsConfigured)
	assert.False(t, s.Load().IsConfigured)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []entity.Settings{
		{DashboardURL: "https://192.168.1.10/protect/dashboard/all", DisplayIndex: 1, IsConfigured: true},
		{DashboardURL: "http://nvr.local:8080/", DisplayIndex: 0, IsConfigured: true},
		{DashboardURL: defaultURL, DisplayIndex: 7, IsConfigured: false},
	}

	for _, rec := range records {
		rec := rec

		t.Run(rec.DashboardURL, func(t *testing.T) {
			t.Parallel()

			s := newStore(t)

			require.NoError(t, s.Save(rec))
			assert.Equal(t, rec, s.Load())
		})
	}
}

func TestSave_WritesExpectedDocument(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	require.NoError(t, s.Save(entity.Settings{
		DashboardURL: "https://192.168.1.10/protect/dashboard/all",
		DisplayIndex: 1,
		IsConfigured: true,
	}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"dashboardUrl":"https://192.168.1.10/protect/dashboard/all","displayIndex":1,"isConfigured":true}`, string(data))
}

func TestSave_OverwritesPriorContent(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	writeFile(t, s, `{"dashboardUrl":"https://old.example/","displayIndex":3,"isConfigured":true,"extra":"field"}`)

	require.NoError(t, s.Save(entity.Settings{DashboardURL: "https://new.example/", DisplayIndex: 0, IsConfigured: true}))

	var doc map[string]interface{}

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "extra")
	assert.Equal(t, "https://new.example/", doc["dashboardUrl"])
}

func TestSave_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))

	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	s := settings.New(filepath.Join(dir, "sub", "config.json"), entity.Settings{DashboardURL: defaultURL}, logger.New("error"))

	err := s.Save(entity.Settings{DashboardURL: "https://x.example/", IsConfigured: true})

	var storeErr settings.StoreError

	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "settings file could not be accessed", storeErr.Console.FriendlyMessage())
}

func TestLoad_Repairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    entity.Settings
	}{
		{
			name:    "malformed json",
			content: `{"dashboardUrl": `,
			want:    entity.Settings{DashboardURL: defaultURL, DisplayIndex: 2},
		},
		{
			name:    "wrong types",
			content: `{"dashboardUrl": 5, "displayIndex": "two"}`,
			want:    entity.Settings{DashboardURL: defaultURL, DisplayIndex: 2},
		},
		{
			name:    "missing fields keep defaults",
			content: `{"isConfigured": true, "dashboardUrl": "https://nvr.example/"}`,
			want:    entity.Settings{DashboardURL: "https://nvr.example/", DisplayIndex: 2, IsConfigured: true},
		},
		{
			name:    "legacy protectUrl key",
			content: `{"protectUrl": "https://10.0.0.9/protect/dashboard/all", "displayIndex": 1, "isConfigured": true}`,
			want:    entity.Settings{DashboardURL: "https://10.0.0.9/protect/dashboard/all", DisplayIndex: 1, IsConfigured: true},
		},
		{
			name:    "dashboardUrl wins over protectUrl",
			content: `{"protectUrl": "https://old.example/", "dashboardUrl": "https://new.example/", "isConfigured": true}`,
			want:    entity.Settings{DashboardURL: "https://new.example/", DisplayIndex: 2, IsConfigured: true},
		},
		{
			name:    "invalid url forces setup",
			content: `{"dashboardUrl": "not a url", "displayIndex": 1, "isConfigured": true}`,
			want:    entity.Settings{DashboardURL: defaultURL, DisplayIndex: 1, IsConfigured: false},
		},
		{
			name:    "empty url forces setup",
			content: `{"dashboardUrl": "", "displayIndex": 0, "isConfigured": true}`,
			want:    entity.Settings{DashboardURL: defaultURL, DisplayIndex: 0, IsConfigured: false},
		},
		{
			name:    "negative index clamped",
			content: `{"dashboardUrl": "https://nvr.example/", "displayIndex": -3, "isConfigured": true}`,
			want:    entity.Settings{DashboardURL: "https://nvr.example/", DisplayIndex: 0, IsConfigured: true},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			writeFile(t, s, tc.content)

			assert.Equal(t, tc.want, s.Load())
		})
	}
}

func TestLoad_UnreadablePathReturnsDefaults(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	require.NoError(t, os.MkdirAll(s.Path(), 0o700))

	assert.Equal(t, s.Defaults(), s.Load())
}
