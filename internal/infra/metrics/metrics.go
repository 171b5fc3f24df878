// Package metrics exposes auth flow counters to Prometheus.
package metrics

import (
	"net/http"

	"gatehouse/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// authMetrics counts every flow step by outcome.
type authMetrics struct {
	events *prometheus.CounterVec
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewAuthMetrics registers gatehouse_auth_events_total with reg.
// Panics if registration fails (following prometheus convention).
func NewAuthMetrics(reg prometheus.Registerer) service.AuthMetrics {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gatehouse_auth_events_total",
			Help: "Total number of auth flow steps by outcome",
		},
		[]string{"flow", "outcome"},
	)
	reg.MustRegister(events)

	return &authMetrics{events: events}
}

func (m *authMetrics) Record(flow, outcome string) {
	m.events.WithLabelValues(flow, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		NewAuthMetrics,
	),
)
