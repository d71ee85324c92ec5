// Package prommetrics exports batch processing metrics to Prometheus.
//
//	c, err := prommetrics.New(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	p := batch.New(batch.WithMetricsCollector(c))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/vecmath/batch"
)

var _ batch.MetricsCollector = (*Collector)(nil)

// Collector implements batch.MetricsCollector with Prometheus metrics.
type Collector struct {
	latency *prometheus.HistogramVec
	vectors *prometheus.CounterVec
}

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace. Defaults to "vecmath".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets sets the latency histogram buckets in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	opts := options{
		namespace: "vecmath",
		buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.namespace,
			Name:      "batch_duration_seconds",
			Help:      "Latency of batch vector operations",
			Buckets:   opts.buckets,
		}, []string{"op", "status"}),
		vectors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.namespace,
			Name:      "batch_vectors_total",
			Help:      "Vectors processed by completed batch operations",
		}, []string{"op"}),
	}

	for _, col := range []prometheus.Collector{c.latency, c.vectors} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordBatch implements batch.MetricsCollector.
func (c *Collector) RecordBatch(op string, count int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.latency.WithLabelValues(op, status).Observe(duration.Seconds())
	if err == nil {
		c.vectors.WithLabelValues(op).Add(float64(count))
	}
}
