package intvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    opLatency *prometheus.HistogramVec
//	    grows     prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordGrow(from, to int) {
//	    p.grows.Inc()
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken including growth, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordGet is called after each get operation.
	RecordGet(duration time.Duration, err error)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordGrow is called after each successful reallocation with the old
	// and new capacity.
	RecordGrow(from, to int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(time.Duration, error)    {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error) {}
func (NoopMetricsCollector) RecordGrow(int, int)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	GetCount         atomic.Int64
	GetErrors        atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	GrowCount        atomic.Int64
	PeakCapacity     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(_ time.Duration, err error) {
	b.GetCount.Add(1)
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, to int) {
	b.GrowCount.Add(1)
	for {
		peak := b.PeakCapacity.Load()
		if int64(to) <= peak || b.PeakCapacity.CompareAndSwap(peak, int64(to)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: b.getAvgInsertNanos(),
		GetCount:       b.GetCount.Load(),
		GetErrors:      b.GetErrors.Load(),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteErrors:   b.DeleteErrors.Load(),
		GrowCount:      b.GrowCount.Load(),
		PeakCapacity:   b.PeakCapacity.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	GetCount       int64
	GetErrors      int64
	DeleteCount    int64
	DeleteErrors   int64
	GrowCount      int64
	PeakCapacity   int64
}
