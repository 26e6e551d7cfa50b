// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nmgaston/protect-kiosk/config"
	v1 "github.com/nmgaston/protect-kiosk/internal/controller/httpapi/v1"
	"github.com/nmgaston/protect-kiosk/internal/entity/dto/v1"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// NewSetupRouter serves the one-time configuration form and its API.
func NewSetupRouter(handler *gin.Engine, l logger.Interface, form v1.SetupForm, cfg *config.Config) {
	handler.Use(gin.Recovery())

	if len(cfg.Setup.AllowedOrigins) > 0 {
		defaultConfig := cors.DefaultConfig()
		defaultConfig.AllowOrigins = cfg.Setup.AllowedOrigins

		handler.Use(cors.New(defaultConfig))
	}

	registerValidators(l)

	setupUIRoutes(handler, l, form)

	h := handler.Group("/api/v1")
	{
		v1.NewSettingsRoutes(h, form, l)
	}
}

var validatorsOnce sync.Once

// registerValidators adds the custom binding tags to gin's shared validator.
func registerValidators(l logger.Interface) {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		if err := v.RegisterValidation("httpurl", dto.ValidateHTTPURL); err != nil {
			l.Error(err, "httpapi - registerValidators")
		}
	})
}

// NewMetricsRouter exposes prometheus metrics and a health check.
func NewMetricsRouter(handler *gin.Engine, l logger.Interface) {
	handler.Use(gin.Recovery())

	// liveness
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Optionally enable pprof endpoints via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		l.Info("pprof enabled at /debug/pprof/")
	}
}
