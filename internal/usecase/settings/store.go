// Package settings persists the kiosk's configuration record.
package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/entity/dto/v1"
	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

const (
	_dirPerm  = 0o700
	_filePerm = 0o600
)

var (
	ErrSettingsStore = kioskerrors.CreateConsoleError("SettingsStore")
	ErrStore         = StoreError{Console: ErrSettingsStore}
)

// StoreError wraps a failed read or write of the settings file.
type StoreError struct {
	Console kioskerrors.InternalError
}

func (e StoreError) Error() string {
	return e.Console.Error()
}

func (e StoreError) Unwrap() error {
	return e.Console.OriginalError
}

func (e StoreError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = "settings file could not be accessed"

	return e
}

// Store reads and writes the record at a fixed path. It never returns a read
// error to the caller; every failure degrades to the defaults.
type Store struct {
	path     string
	defaults entity.Settings
	log      logger.Interface
}

// New -.
func New(path string, defaults entity.Settings, log logger.Interface) *Store {
	defaults.IsConfigured = false

	return &Store{
		path:     path,
		defaults: defaults,
		log:      log,
	}
}

// Path -.
func (s *Store) Path() string {
	return s.path
}

// Defaults returns the record used when nothing valid is persisted.
func (s *Store) Defaults() entity.Settings {
	return s.defaults
}

// persisted is the on-disk shape. Pointers distinguish an absent field from
// its zero value so partial files keep the defaults for what they omit.
type persisted struct {
	DashboardURL *string `json:"dashboardUrl"`
	ProtectURL   *string `json:"protectUrl"`
	DisplayIndex *int    `json:"displayIndex"`
	IsConfigured *bool   `json:"isConfigured"`
}

// Load returns the persisted record, or the defaults when the file is
// missing, unreadable or malformed.
func (s *Store) Load() entity.Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info("settings - Load - no settings at %s, using defaults", s.path)
		} else {
			s.log.Warn("settings - Load - %s", ErrStore.Wrap("Load", "os.ReadFile", err))
		}

		return s.defaults
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("settings - Load - %s", ErrStore.Wrap("Load", "json.Unmarshal", err))

		return s.defaults
	}

	return s.repair(p)
}

// repair fills absent fields from the defaults and fixes values that cannot
// be used: a bad URL forces reconfiguration, a negative index is clamped.
func (s *Store) repair(p persisted) entity.Settings {
	out := s.defaults

	switch {
	case p.DashboardURL != nil:
		out.DashboardURL = *p.DashboardURL
	case p.ProtectURL != nil:
		out.DashboardURL = *p.ProtectURL
	}

	if p.DisplayIndex != nil {
		out.DisplayIndex = *p.DisplayIndex
	}

	if p.IsConfigured != nil {
		out.IsConfigured = *p.IsConfigured
	}

	if !dto.IsHTTPURL(out.DashboardURL) {
		s.log.Warn("settings - Load - invalid dashboard url %q, reverting to %q and requiring setup", out.DashboardURL, s.defaults.DashboardURL)

		out.DashboardURL = s.defaults.DashboardURL
		out.IsConfigured = false
	}

	if out.DisplayIndex < 0 {
		s.log.Warn("settings - Load - negative display index %d clamped to 0", out.DisplayIndex)

		out.DisplayIndex = 0
	}

	return out
}

// Save overwrites the whole record. The error is logged here as well so
// callers that keep going with their in-memory copy can ignore it.
func (s *Store) Save(settings entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return s.saveFailed("json.Marshal", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), _dirPerm); err != nil {
		return s.saveFailed("os.MkdirAll", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.json")
	if err != nil {
		return s.saveFailed("os.CreateTemp", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return s.saveFailed("tmp.Write", err)
	}

	if err := tmp.Chmod(_filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return s.saveFailed("tmp.Chmod", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return s.saveFailed("tmp.Close", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return s.saveFailed("os.Rename", err)
	}

	s.log.Info("settings - Save - wrote %s", s.path)

	return nil
}

func (s *Store) saveFailed(function string, err error) error {
	wrapped := ErrStore.Wrap("Save", function, err)
	s.log.Error(wrapped, "settings - Save")

	return wrapped
}
