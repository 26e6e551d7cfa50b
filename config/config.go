package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var KioskConfig *Config

const (
	// DefaultDashboardURL is shown in the setup form until an operator submits another.
	DefaultDashboardURL = "https://10.0.1.58/protect/dashboard/all"
	// DefaultDisplayIndex targets the third attached monitor.
	DefaultDisplayIndex = 2
	// DefaultUserAgent matches a desktop Chrome build the dashboard serves its full UI to.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"
	// DefaultSelector matches the live-view control group; the full-screen toggle is its last button.
	DefaultSelector = ".LiveviewControls__ButtonGroup-sc-6n7ics-1"

	settingsFileName = "config.json"
)

type (
	// Config -.
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"logger"`
		Settings   `yaml:"settings"`
		Browser    `yaml:"browser"`
		Automation `yaml:"automation"`
		Shortcuts  `yaml:"shortcuts"`
		Trust      `yaml:"trust"`
		Secrets    `yaml:"secrets"`
		Setup      `yaml:"setup"`
		Metrics    `yaml:"metrics"`
		HTTP       `yaml:"http"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version string `env-required:"true"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Settings locates the persisted configuration record.
	Settings struct {
		Path                string `yaml:"path" env:"SETTINGS_PATH"`
		DefaultDashboardURL string `yaml:"default_dashboard_url" env:"SETTINGS_DEFAULT_DASHBOARD_URL"`
		DefaultDisplayIndex int    `yaml:"default_display_index" env:"SETTINGS_DEFAULT_DISPLAY_INDEX"`
	}

	// Browser -.
	Browser struct {
		ExecPath     string `yaml:"exec_path" env:"BROWSER_EXEC_PATH"`
		UserDataDir  string `yaml:"user_data_dir" env:"BROWSER_USER_DATA_DIR"`
		KioskMode    bool   `yaml:"kiosk_mode" env:"BROWSER_KIOSK_MODE"`
		DevToolsPort int    `yaml:"devtools_port" env:"BROWSER_DEVTOOLS_PORT"`
	}

	// Automation tunes the full-screen driver.
	Automation struct {
		SettleDelay          time.Duration `yaml:"settle_delay" env:"AUTOMATION_SETTLE_DELAY"`
		Selector             string        `yaml:"selector" env:"AUTOMATION_SELECTOR"`
		RetryTimeout         time.Duration `yaml:"retry_timeout" env:"AUTOMATION_RETRY_TIMEOUT"`
		RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"AUTOMATION_RETRY_INITIAL_INTERVAL"`
		RetryMaxInterval     time.Duration `yaml:"retry_max_interval" env:"AUTOMATION_RETRY_MAX_INTERVAL"`
	}

	// Shortcuts are Electron-style accelerators.
	Shortcuts struct {
		Inspector string `yaml:"inspector" env:"SHORTCUT_INSPECTOR"`
		Trigger   string `yaml:"trigger" env:"SHORTCUT_TRIGGER"`
		Exit      string `yaml:"exit" env:"SHORTCUT_EXIT"`
	}

	// Trust -.
	Trust struct {
		IgnoreCertificateErrors bool          `yaml:"ignore_certificate_errors" env:"TRUST_IGNORE_CERTIFICATE_ERRORS"`
		UserAgent               string        `yaml:"user_agent" env:"TRUST_USER_AGENT"`
		BearerToken             string        `yaml:"bearer_token" env:"TRUST_BEARER_TOKEN"`
		TokenCacheTTL           time.Duration `yaml:"token_cache_ttl" env:"TRUST_TOKEN_CACHE_TTL"`
		VaultKey                string        `yaml:"vault_key" env:"TRUST_VAULT_KEY"`
		SyncBearerToken         bool          `yaml:"sync_bearer_token" env:"TRUST_SYNC_BEARER_TOKEN"`
		KeyringService          string        `yaml:"keyring_service" env:"TRUST_KEYRING_SERVICE"`
		KeyringUser             string        `yaml:"keyring_user" env:"TRUST_KEYRING_USER"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// Setup configures the one-time configuration form.
	Setup struct {
		Host           string   `yaml:"host" env:"SETUP_HOST"`
		Width          int      `yaml:"width" env:"SETUP_WIDTH"`
		Height         int      `yaml:"height" env:"SETUP_HEIGHT"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SETUP_ALLOWED_ORIGINS"`
	}

	// Metrics -.
	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Host    string `yaml:"host" env:"METRICS_HOST"`
		Port    string `yaml:"port" env:"METRICS_PORT"`
	}

	// HTTP applies to the setup and metrics servers.
	HTTP struct {
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	}
)

// Errors.
var (
	ErrSettleDelayNegative  = errors.New("automation settle_delay cannot be negative")
	ErrRetryTimeoutNegative = errors.New("automation retry_timeout cannot be negative")
	ErrSelectorEmpty        = errors.New("automation selector cannot be empty")
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "protect-kiosk",
			Version: "DEVELOPMENT",
		},
		Log: Log{
			Level: "info",
		},
		Settings: Settings{
			Path:                "",
			DefaultDashboardURL: DefaultDashboardURL,
			DefaultDisplayIndex: DefaultDisplayIndex,
		},
		Browser: Browser{
			ExecPath:     "",
			UserDataDir:  "",
			KioskMode:    true,
			DevToolsPort: 0,
		},
		Automation: Automation{
			SettleDelay:          20 * time.Second,
			Selector:             DefaultSelector,
			RetryTimeout:         0,
			RetryInitialInterval: time.Second,
			RetryMaxInterval:     5 * time.Second,
		},
		Shortcuts: Shortcuts{
			Inspector: "CommandOrControl+Shift+I",
			Trigger:   "CommandOrControl+Alt+X",
			Exit:      "Escape",
		},
		Trust: Trust{
			IgnoreCertificateErrors: true,
			UserAgent:               DefaultUserAgent,
			BearerToken:             "",
			TokenCacheTTL:           5 * time.Minute,
			VaultKey:                "kiosk-bearer-token",
			KeyringService:          "",
			KeyringUser:             "bearer-token",
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/kiosk",
		},
		Setup: Setup{
			Host:           "127.0.0.1",
			Width:          600,
			Height:         400,
			AllowedOrigins: []string{"http://127.0.0.1", "http://localhost"},
		},
		Metrics: Metrics{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    "9464",
		},
		HTTP: HTTP{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 3 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		return encoder.Encode(cfg)
	}

	return err
}

// DefaultSettingsPath returns <user config dir>/<app name>/config.json.
func DefaultSettingsPath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appName, settingsFileName), nil
}

// ValidateAutomation rejects automation settings the driver cannot honor.
func ValidateAutomation(a Automation) error {
	if a.SettleDelay < 0 {
		return ErrSettleDelayNegative
	}

	if a.RetryTimeout < 0 {
		return ErrRetryTimeoutNegative
	}

	if a.Selector == "" {
		return ErrSelectorEmpty
	}

	return nil
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	KioskConfig = defaultConfig()

	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, KioskConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(KioskConfig); err != nil {
		return nil, err
	}

	if KioskConfig.Settings.Path == "" {
		path, err := DefaultSettingsPath(KioskConfig.App.Name)
		if err != nil {
			return nil, err
		}

		KioskConfig.Settings.Path = path
	}

	if err := ValidateAutomation(KioskConfig.Automation); err != nil {
		return nil, err
	}

	return KioskConfig, nil
}
