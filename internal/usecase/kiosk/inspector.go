package kiosk

import (
	"context"
	"sync"
)

// inspector is the open/closed toggle of the surface's developer tools.
type inspector struct {
	mu   sync.Mutex
	open bool
}

// toggle asks s for the opposite state and flips only when that succeeds.
func (i *inspector) toggle(ctx context.Context, s Surface) (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	want := !i.open

	if err := s.SetInspectorOpen(ctx, want); err != nil {
		return i.open, err
	}

	i.open = want

	return i.open, nil
}
