package kioskerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	base := errors.New("disk full")
	tmpl := CreateConsoleError("SettingsStore")

	wrapped := tmpl
	err := wrapped.Wrap("Save", "os.WriteFile", base)

	assert.Equal(t, "SettingsStore - Save - os.WriteFile: disk full", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Empty(t, tmpl.Call, "template must stay untouched")
}

func TestFriendlyMessage(t *testing.T) {
	t.Parallel()

	e := CreateConsoleError("SetupForm")
	e.Message = "display index out of range"

	assert.Equal(t, "display index out of range", e.FriendlyMessage())
	assert.Equal(t, "SetupForm -  - ", e.Error())
}
