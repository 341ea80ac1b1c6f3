// Package observability holds the process-wide metrics and tracer.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Tracer is a no-op until the host installs a TracerProvider.
var Tracer = otel.Tracer("github.com/eeue56/derw-sub000")

// Metrics definitions
var (
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "derw_stage_seconds",
		Help:    "Time spent in one pipeline stage for one module.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	DiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "derw_diagnostics_total",
		Help: "Diagnostics reported, by kind.",
	}, []string{"kind"})

	ModulesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "derw_modules_total",
		Help: "Modules pushed through the pipeline.",
	})
)

// Diagnostic kinds used as DiagnosticsTotal labels.
const (
	KindUnknownBlock = "unknown_block"
	KindCollision    = "collision"
	KindUnresolved   = "unresolved_name"
	KindDecode       = "decode"
)
