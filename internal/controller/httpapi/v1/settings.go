package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nmgaston/protect-kiosk/internal/entity/dto/v1"
	"github.com/nmgaston/protect-kiosk/pkg/kioskerrors"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

var ErrSettingsRequest = dto.NotValidError{Console: kioskerrors.CreateConsoleError("SettingsRoutes")}

// SetupForm is the one-time configuration form state.
type SetupForm interface {
	View() dto.SetupView
	Submit(ctx context.Context, req dto.SettingsRequest) error
}

type settingsRoutes struct {
	f SetupForm
	l logger.Interface
}

// NewSettingsRoutes -.
func NewSettingsRoutes(handler *gin.RouterGroup, f SetupForm, l logger.Interface) {
	r := &settingsRoutes{f, l}

	h := handler.Group("/settings")
	{
		h.GET("", r.get)
		h.POST("", r.submit)
	}
}

func (r *settingsRoutes) get(c *gin.Context) {
	c.JSON(http.StatusOK, r.f.View())
}

// submit accepts a JSON body or an urlencoded form post.
func (r *settingsRoutes) submit(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		var validatorErr validator.ValidationErrors
		if !errors.As(err, &validatorErr) {
			err = ErrSettingsRequest.Wrap("submit", "c.ShouldBind", "malformed settings request")
		}

		ErrorResponse(c, err)

		return
	}

	if err := r.f.Submit(c.Request.Context(), req); err != nil {
		r.l.Warn("http - v1 - submit: %v", err)
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusAccepted, response{Message: "settings saved, starting kiosk"})
}
