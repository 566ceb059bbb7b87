package observer

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "patterns"
	subsystem = "observer"
)

// MetricsObserver exports what it sees as Prometheus metrics.
type MetricsObserver struct {
	last    prometheus.Gauge
	updates prometheus.Counter
}

// NewMetricsObserver creates the metrics labelled with generator and
// registers them with reg. A nil reg leaves them unregistered.
// Registering the same generator label twice on one registry panics, as
// promauto does.
func NewMetricsObserver(reg prometheus.Registerer, generator string) *MetricsObserver {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"generator": generator}
	return &MetricsObserver{
		last: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "last_number",
			Help:        "Most recent number published by the generator",
			ConstLabels: labels,
		}),
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "updates_total",
			Help:        "Number of updates received from the generator",
			ConstLabels: labels,
		}),
	}
}

// Update records the number.
func (o *MetricsObserver) Update(_ context.Context, g NumberGenerator) error {
	o.last.Set(float64(g.Number()))
	o.updates.Inc()
	return nil
}

// Last returns the gauge, for scraping in tests and demos.
func (o *MetricsObserver) Last() prometheus.Gauge { return o.last }

// Updates returns the counter.
func (o *MetricsObserver) Updates() prometheus.Counter { return o.updates }

var _ Observer = (*MetricsObserver)(nil)
