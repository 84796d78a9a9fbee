package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of successfully placed orders",
		},
	)

	ordersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of orders rejected by validation",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "orders",
			Name:      "failed_total",
			Help:      "Total number of order placements that failed in storage",
		},
	)

	placeOrderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bookstore",
			Subsystem: "orders",
			Name:      "place_duration_seconds",
			Help:      "Histogram of order placement durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		ordersRejected,
		ordersFailed,
		placeOrderDuration,
	)
}
