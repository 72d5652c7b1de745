package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mbz_client",
			Name:      "requests_total",
			Help:      "Requests sent to the web service, by method and status class.",
		},
		[]string{"method", "status_class"},
	)

	rateLimitHoldsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mbz_client",
			Name:      "rate_limit_holds_total",
			Help:      "Cooldown windows installed after the service reported an exhausted quota.",
		},
	)

	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mbz_client",
			Name:      "api_errors_total",
			Help:      "Responses carrying the service's JSON error envelope, by status code.",
		},
		[]string{"status"},
	)
)
