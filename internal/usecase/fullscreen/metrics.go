package fullscreen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var attemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kiosk_fullscreen_attempts_total",
		Help: "Full-screen control invocations (per kind and outcome)",
	},
	[]string{"kind", "outcome"},
)
