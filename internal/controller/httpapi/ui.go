package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/nmgaston/protect-kiosk/internal/controller/httpapi/v1"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

//go:embed ui/*.tmpl
var content embed.FS

const setupTemplate = "setup.html.tmpl"

// setupUIRoutes renders the configuration form at "/".
func setupUIRoutes(handler *gin.Engine, l logger.Interface, form v1.SetupForm) {
	tmpl, err := template.ParseFS(content, "ui/*.tmpl")
	if err != nil {
		l.Fatal(err, "httpapi - setupUIRoutes - template.ParseFS")
	}

	handler.SetHTMLTemplate(tmpl)

	handler.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, setupTemplate, form.View())
	})
}
