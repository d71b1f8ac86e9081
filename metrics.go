package reclist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by several lists, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordLoad is called after each bulk load.
	// count is the number of stored records, skipped the number of input
	// records dropped for lacking an id.
	RecordLoad(count, skipped int, duration time.Duration)

	// RecordOrder is called after each reordering pass.
	RecordOrder(rules, items int, duration time.Duration)

	// RecordFilter is called after each re-filter pass.
	// matched is the number of records in the filtered sequence.
	RecordFilter(rules, matched int, duration time.Duration)

	// RecordSelection is called after each selection change.
	RecordSelection(selected int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordOrder(int, int, time.Duration)  {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSelection(int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount         atomic.Int64
	LoadedItems       atomic.Int64
	SkippedItems      atomic.Int64
	OrderCount        atomic.Int64
	OrderTotalNanos   atomic.Int64
	FilterCount       atomic.Int64
	FilterTotalNanos  atomic.Int64
	LastMatched       atomic.Int64
	SelectionChanges  atomic.Int64
	LastSelectedCount atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count, skipped int, _ time.Duration) {
	b.LoadCount.Add(1)
	b.LoadedItems.Add(int64(count))
	b.SkippedItems.Add(int64(skipped))
}

// RecordOrder implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOrder(_, _ int, duration time.Duration) {
	b.OrderCount.Add(1)
	b.OrderTotalNanos.Add(duration.Nanoseconds())
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(_, matched int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	b.LastMatched.Store(int64(matched))
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(selected int) {
	b.SelectionChanges.Add(1)
	b.LastSelectedCount.Store(int64(selected))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:         b.LoadCount.Load(),
		LoadedItems:       b.LoadedItems.Load(),
		SkippedItems:      b.SkippedItems.Load(),
		OrderCount:        b.OrderCount.Load(),
		OrderAvgNanos:     avg(b.OrderTotalNanos.Load(), b.OrderCount.Load()),
		FilterCount:       b.FilterCount.Load(),
		FilterAvgNanos:    avg(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
		LastMatched:       b.LastMatched.Load(),
		SelectionChanges:  b.SelectionChanges.Load(),
		LastSelectedCount: b.LastSelectedCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount         int64
	LoadedItems       int64
	SkippedItems      int64
	OrderCount        int64
	OrderAvgNanos     int64
	FilterCount       int64
	FilterAvgNanos    int64
	LastMatched       int64
	SelectionChanges  int64
	LastSelectedCount int64
}
