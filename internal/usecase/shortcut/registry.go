// Package shortcut keeps the kiosk's keyboard accelerators in one registry
// that is torn down on shutdown.
package shortcut

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

var (
	ErrInvalidAccelerator = errors.New("invalid accelerator")
	ErrAlreadyRegistered  = errors.New("accelerator already registered")
	ErrRegistryClosed     = errors.New("shortcut registry closed")
)

// Action runs when its accelerator is pressed.
type Action func(ctx context.Context)

type entry struct {
	name   string
	action Action
}

// Registry -.
type Registry struct {
	goos string
	log  logger.Interface

	mu      sync.Mutex
	entries map[string]entry
	closed  bool
}

// New returns a registry that resolves CommandOrControl for the running OS.
func New(log logger.Interface) *Registry {
	return NewForOS(runtime.GOOS, log)
}

// NewForOS -.
func NewForOS(goos string, log logger.Interface) *Registry {
	return &Registry{
		goos:    goos,
		log:     log,
		entries: make(map[string]entry),
	}
}

// Register binds accelerator to action. name is only used in logs.
func (r *Registry) Register(accelerator, name string, action Action) error {
	key, err := Normalize(r.goos, accelerator)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRegistryClosed
	}

	if existing, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %s is bound to %s", ErrAlreadyRegistered, key, existing.name)
	}

	r.entries[key] = entry{name: name, action: action}

	r.log.Debug("shortcut - Register - %s bound to %s", key, name)

	return nil
}

// Dispatch runs the action bound to accelerator and reports whether one was.
func (r *Registry) Dispatch(ctx context.Context, accelerator string) bool {
	key, err := Normalize(r.goos, accelerator)
	if err != nil {
		return false
	}

	r.mu.Lock()
	e, ok := r.entries[key]
	r.mu.Unlock()

	if !ok {
		return false
	}

	r.log.Debug("shortcut - Dispatch - %s", e.name)

	e.action(ctx)

	return true
}

// Registered lists the bound accelerators in normalized form.
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// UnregisterAll drops every binding and refuses new ones.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]entry)
	r.closed = true
}

const (
	modCtrl = 1 << iota
	modAlt
	modShift
	modMeta
)

var keyAliases = map[string]string{
	"esc":    "Escape",
	"escape": "Escape",
	"return": "Enter",
	"enter":  "Enter",
	"space":  "Space",
	"tab":    "Tab",
	"plus":   "Plus",
	"up":     "ArrowUp",
	"down":   "ArrowDown",
	"left":   "ArrowLeft",
	"right":  "ArrowRight",
}

// Normalize rewrites an Electron-style accelerator to the canonical form
// Ctrl+Alt+Shift+Meta+Key. CommandOrControl is Meta on darwin, Ctrl elsewhere.
func Normalize(goos, accelerator string) (string, error) {
	parts := strings.Split(accelerator, "+")
	mods := 0
	key := ""

	for i, p := range parts {
		p = strings.TrimSpace(p)

		switch strings.ToLower(p) {
		case "commandorcontrol", "cmdorctrl":
			if goos == "darwin" {
				mods |= modMeta
			} else {
				mods |= modCtrl
			}
		case "control", "ctrl":
			mods |= modCtrl
		case "alt", "option":
			mods |= modAlt
		case "shift":
			mods |= modShift
		case "command", "cmd", "meta", "super":
			mods |= modMeta
		default:
			if i != len(parts)-1 || p == "" {
				return "", fmt.Errorf("%w: %q", ErrInvalidAccelerator, accelerator)
			}

			key = canonicalKey(p)
		}
	}

	if key == "" {
		return "", fmt.Errorf("%w: %q has no key", ErrInvalidAccelerator, accelerator)
	}

	var b strings.Builder

	for _, m := range []struct {
		bit  int
		name string
	}{{modCtrl, "Ctrl"}, {modAlt, "Alt"}, {modShift, "Shift"}, {modMeta, "Meta"}} {
		if mods&m.bit != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}

	b.WriteString(key)

	return b.String(), nil
}

func canonicalKey(k string) string {
	if alias, ok := keyAliases[strings.ToLower(k)]; ok {
		return alias
	}

	if len(k) == 1 {
		return strings.ToUpper(k)
	}

	return strings.ToUpper(k[:1]) + k[1:]
}
