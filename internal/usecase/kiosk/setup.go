package kiosk

import (
	"context"
	"errors"
	"sync"

	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/internal/entity/dto/v1"
	"github.com/nmgaston/protect-kiosk/internal/usecase/display"
	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
)

var (
	ErrAlreadySubmitted = errors.New("settings already submitted")

	ErrSetupForm = dto.NotValidError{Console: kioskerrors.CreateConsoleError("SetupForm")}
)

// SetupForm is the state behind the one-time configuration form. It accepts
// exactly one valid submission.
type SetupForm struct {
	current  entity.Settings
	displays []entity.Display

	mu        sync.Mutex
	submitted bool
	ch        chan entity.Settings
}

// NewSetupForm -.
func NewSetupForm(current entity.Settings, displays []entity.Display) *SetupForm {
	return &SetupForm{
		current:  current,
		displays: displays,
		ch:       make(chan entity.Settings, 1),
	}
}

// View is the form prefilled with the current record.
func (f *SetupForm) View() dto.SetupView {
	return dto.SetupView{
		DashboardURL:  f.current.DashboardURL,
		SelectedIndex: display.DefaultSelection(f.current.DisplayIndex, f.displays),
		Displays:      dto.NewDisplayOptions(f.displays),
	}
}

// Submit validates req and hands the record to the waiting bootstrap.
func (f *SetupForm) Submit(_ context.Context, req dto.SettingsRequest) error {
	if !dto.IsHTTPURL(req.DashboardURL) {
		return ErrSetupForm.Wrap("Submit", "dto.IsHTTPURL", "dashboard URL must be an absolute http or https URL")
	}

	if req.DisplayIndex == nil || *req.DisplayIndex < 0 || *req.DisplayIndex >= len(f.displays) {
		return ErrSetupForm.Wrap("Submit", "displayIndex", "selected display is not attached")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitted {
		return ErrAlreadySubmitted
	}

	f.submitted = true
	f.ch <- entity.Settings{
		DashboardURL: req.DashboardURL,
		DisplayIndex: *req.DisplayIndex,
		IsConfigured: true,
	}

	return nil
}

// Submitted -.
func (f *SetupForm) Submitted() <-chan entity.Settings {
	return f.ch
}
