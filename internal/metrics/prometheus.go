// Package metrics declares the Prometheus collectors of the service. They
// are registered with the default registry and served by promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adspark_generations_total",
			Help: "Campaign generations by outcome (success or error kind)",
		},
		[]string{"outcome"},
	)

	CompletionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adspark_completion_duration_seconds",
			Help:    "Duration of completion provider calls in seconds",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"provider"},
	)

	Scrapes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adspark_scrapes_total",
			Help: "Website scrapes by result",
		},
		[]string{"result"},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(Generations)
	prometheus.MustRegister(CompletionDuration)
	prometheus.MustRegister(Scrapes)
	prometheus.MustRegister(ResponseTime)
}

// OutcomeSuccess labels a generation that returned three variants.
const OutcomeSuccess = "success"
