package batch

import (
	"runtime"

	"github.com/hupe1980/vecmath"
)

// DefaultChunkSize is the number of vectors handed to one goroutine.
const DefaultChunkSize = 4096

type options struct {
	workers   int
	chunkSize int
	logger    *vecmath.Logger
	metrics   MetricsCollector
}

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    vecmath.NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures a Processor.
type Option func(*options)

// WithWorkers bounds the number of goroutines per operation.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the number of vectors per chunk. Slices no longer than
// one chunk are processed inline. Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *vecmath.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecmath.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}
