package batch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one record per batch operation.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordBatch is called after each operation. count is the number of
	// vectors requested, err is nil if the operation completed.
	RecordBatch(op string, count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

// RecordBatch implements MetricsCollector.
func (NoopMetricsCollector) RecordBatch(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	Batches    atomic.Int64
	Vectors    atomic.Int64
	Errors     atomic.Int64
	TotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, count int, duration time.Duration, err error) {
	b.Batches.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
		return
	}
	b.Vectors.Add(int64(count))
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	Batches    int64
	Vectors    int64
	Errors     int64
	AvgLatency time.Duration
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		Batches: b.Batches.Load(),
		Vectors: b.Vectors.Load(),
		Errors:  b.Errors.Load(),
	}
	if stats.Batches > 0 {
		stats.AvgLatency = time.Duration(b.TotalNanos.Load() / stats.Batches)
	}
	return stats
}
