package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for one Manager. It is net-new
// relative to the teacher (which has no metrics surface at all) but is
// carried as ambient observability, grounded on
// gezibash-arc-node/internal/observability/metrics.go's
// NewRegistry+MustRegister pattern.
type Metrics struct {
	Registry         *prometheus.Registry
	FiltersActive    prometheus.Gauge
	FramesDispatched prometheus.Counter
	FramesDiscarded  prometheus.Counter
	DecodeErrors     prometheus.Counter
	Timeouts         prometheus.Counter
	PeakHeight       prometheus.Gauge
}

// NewMetrics creates a fresh, isolated registry and standard engine metrics.
// Each Manager gets its own so that two providers in the same process don't
// collide on metric names when registered against a shared default
// registerer.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	filtersActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chialite_engine_filters_active",
		Help: "Number of filters currently installed in the registry.",
	})
	framesDispatched := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chialite_engine_frames_dispatched_total",
		Help: "Total number of inbound frames decoded and run through the filter registry.",
	})
	framesDiscarded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chialite_engine_frames_discarded_total",
		Help: "Total number of inbound frames that matched no installed filter.",
	})
	decodeErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chialite_engine_decode_errors_total",
		Help: "Total number of frames dropped because they failed to decode.",
	})
	timeouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chialite_engine_timeouts_total",
		Help: "Total number of one-shot filters that timed out waiting for a match.",
	})
	peakHeight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chialite_engine_peak_height",
		Help: "Latest peak height observed from the connected full node.",
	})

	reg.MustRegister(filtersActive, framesDispatched, framesDiscarded, decodeErrors, timeouts, peakHeight)

	return &Metrics{
		Registry:         reg,
		FiltersActive:    filtersActive,
		FramesDispatched: framesDispatched,
		FramesDiscarded:  framesDiscarded,
		DecodeErrors:     decodeErrors,
		Timeouts:         timeouts,
		PeakHeight:       peakHeight,
	}
}
