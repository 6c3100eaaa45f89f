// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gateway hub's Prometheus instrumentation. The teacher's
// go.mod carries prometheus/client_golang without wiring it into
// cluster-gateway; this gives it a concrete home on the request-scoped hub
// path, the natural analogue of the reconcile-duration metrics the teacher
// wires elsewhere.
type Metrics struct {
	InFlightRequests prometheus.Gauge
	ListenerCount    prometheus.Gauge
	RouteMatches     *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// NewMetrics registers the gateway hub's metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InFlightRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rednet_gateway",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently suspended awaiting an rednet RPC reply.",
		}),
		ListenerCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rednet_gateway",
			Name:      "connected_listeners",
			Help:      "Number of computers currently connected over /link.",
		}),
		RouteMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rednet_gateway",
			Name:      "route_match_total",
			Help:      "Count of gateway requests by route match outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rednet_gateway",
			Name:      "request_duration_seconds",
			Help:      "End-to-end duration of /gateway requests by outcome status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	reg.MustRegister(m.InFlightRequests, m.ListenerCount, m.RouteMatches, m.RequestDuration)
	return m
}
