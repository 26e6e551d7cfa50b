package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nmgaston/protect-kiosk/internal/entity/dto/v1"
	"github.com/nmgaston/protect-kiosk/internal/usecase/kiosk"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		notValidErr  dto.NotValidError
	)

	switch {
	case errors.Is(err, kiosk.ErrAlreadySubmitted):
		msg := err.Error()
		c.AbortWithStatusJSON(http.StatusConflict, response{Error: msg, Message: msg})
	case errors.As(err, &notValidErr):
		notValidErrorHandle(c, notValidErr)
	case errors.As(err, &validatorErr):
		validatorErrorHandle(c, validatorErr)
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}

func notValidErrorHandle(c *gin.Context, err dto.NotValidError) {
	msg := err.Console.FriendlyMessage()
	c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
}

func validatorErrorHandle(c *gin.Context, err validator.ValidationErrors) {
	msg := err.Error()
	c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
}
