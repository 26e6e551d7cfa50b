package kiosk

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	launchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_launches_total",
			Help: "Kiosk launches (per mode: setup or configured)",
		},
		[]string{"mode"},
	)

	pageLoadFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kiosk_page_load_failures_total",
			Help: "Top-level dashboard loads that failed",
		},
	)
)
