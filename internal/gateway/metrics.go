package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payments_created_total",
		Help: "Payments created, by method.",
	}, []string{"method"})

	paymentsCaptured = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payments_captured_total",
		Help: "Payments that reached the captured state, by method.",
	}, []string{"method"})

	paymentsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payments_failed_total",
		Help: "Payments that reached the failed state, by method.",
	}, []string{"method"})
)
