package dto

import (
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/nmgaston/protect-kiosk/internal/entity"
)

// SettingsRequest is what the setup form submits.
type SettingsRequest struct {
	DashboardURL string `json:"dashboardUrl" form:"dashboardUrl" binding:"required,httpurl" example:"https://192.168.1.10/protect/dashboard/all"`
	DisplayIndex *int   `json:"displayIndex" form:"displayIndex" binding:"required,min=0" example:"1"`
}

// DisplayOption is one entry of the setup form's display select.
type DisplayOption struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Primary bool   `json:"primary"`
}

// SetupView is what the setup form is rendered from.
type SetupView struct {
	DashboardURL  string          `json:"dashboardUrl"`
	SelectedIndex int             `json:"selectedIndex"`
	Displays      []DisplayOption `json:"displays"`
}

// NewDisplayOptions lists displays in host enumeration order.
func NewDisplayOptions(displays []entity.Display) []DisplayOption {
	options := make([]DisplayOption, len(displays))

	for i, d := range displays {
		options[i] = DisplayOption{
			Index:   d.Index,
			Label:   d.Label(),
			Primary: d.Primary,
		}
	}

	return options
}

// IsHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateHTTPURL is the "httpurl" validator.
func ValidateHTTPURL(fl validator.FieldLevel) bool {
	return IsHTTPURL(fl.Field().String())
}
