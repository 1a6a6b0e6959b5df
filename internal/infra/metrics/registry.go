// Package metrics provides the Prometheus registry shared by the process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Result exposes one registry as both Registerer and Gatherer.
type Result struct {
	fx.Out

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// New creates a registry with the Go runtime and process collectors.
func New() Result {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Result{Registerer: reg, Gatherer: reg}
}
