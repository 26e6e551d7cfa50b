package shortcut_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmgaston/protect-kiosk/internal/usecase/shortcut"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		goos        string
		accelerator string
		want        string
		wantErr     bool
	}{
		{name: "inspector on linux", goos: "linux", accelerator: "CommandOrControl+Shift+I", want: "Ctrl+Shift+I"},
		{name: "inspector on darwin", goos: "darwin", accelerator: "CommandOrControl+Shift+I", want: "Shift+Meta+I"},
		{name: "modifier order", goos: "windows", accelerator: "Shift+Alt+CmdOrCtrl+x", want: "Ctrl+Alt+Shift+X"},
		{name: "bare key alias", goos: "linux", accelerator: "Esc", want: "Escape"},
		{name: "function key", goos: "linux", accelerator: "f11", want: "F11"},
		{name: "already normalized", goos: "linux", accelerator: "Ctrl+Alt+X", want: "Ctrl+Alt+X"},
		{name: "modifier only", goos: "linux", accelerator: "Ctrl+Shift", wantErr: true},
		{name: "key in the middle", goos: "linux", accelerator: "Ctrl+I+Shift", wantErr: true},
		{name: "empty", goos: "linux", accelerator: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := shortcut.Normalize(tc.goos, tc.accelerator)
			if tc.wantErr {
				require.ErrorIs(t, err, shortcut.ErrInvalidAccelerator)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegistry_DispatchRunsBoundAction(t *testing.T) {
	t.Parallel()

	r := shortcut.NewForOS("linux", logger.New("error"))

	pressed := 0
	require.NoError(t, r.Register("CommandOrControl+Alt+X", "trigger", func(context.Context) { pressed++ }))

	assert.True(t, r.Dispatch(context.Background(), "Ctrl+Alt+X"))
	assert.True(t, r.Dispatch(context.Background(), "Alt+Control+x"))
	assert.False(t, r.Dispatch(context.Background(), "Ctrl+X"))
	assert.False(t, r.Dispatch(context.Background(), "Ctrl+"))
	assert.Equal(t, 2, pressed)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	r := shortcut.NewForOS("linux", logger.New("error"))

	require.NoError(t, r.Register("Escape", "exit", func(context.Context) {}))

	err := r.Register("Esc", "other", func(context.Context) {})
	require.ErrorIs(t, err, shortcut.ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), "exit")
}

func TestRegistry_UnregisterAll(t *testing.T) {
	t.Parallel()

	r := shortcut.NewForOS("linux", logger.New("error"))

	require.NoError(t, r.Register("CommandOrControl+Shift+I", "inspector", func(context.Context) {}))
	require.NoError(t, r.Register("Escape", "exit", func(context.Context) {}))
	assert.Equal(t, []string{"Ctrl+Shift+I", "Escape"}, r.Registered())

	r.UnregisterAll()

	assert.Empty(t, r.Registered())
	assert.False(t, r.Dispatch(context.Background(), "Escape"))
	require.ErrorIs(t, r.Register("Escape", "exit", func(context.Context) {}), shortcut.ErrRegistryClosed)

	r.UnregisterAll()
}
