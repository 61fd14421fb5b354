package infrastructure

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// SystemMetrics records the process footprint of a conversion. Workbooks
// are loaded whole, so heap figures track workbook size closely.
type SystemMetrics struct {
	goRoutines      metric.Int64Gauge
	memoryUsage     metric.Int64Gauge
	memoryAllocated metric.Int64Gauge
	memorySystem    metric.Int64Gauge
	gcCount         metric.Int64Gauge
	processUptime   metric.Float64Gauge
}

// NewSystemMetrics creates the runtime gauges on meter
func NewSystemMetrics(meter metric.Meter) (*SystemMetrics, error) {
	goRoutines, err := meter.Int64Gauge(
		"system_goroutines",
		metric.WithDescription("Number of active goroutines"),
	)
	if err != nil {
		return nil, err
	}

	memoryUsage, err := meter.Int64Gauge(
		"system_memory_usage",
		metric.WithDescription("Heap bytes in use"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	memoryAllocated, err := meter.Int64Gauge(
		"system_memory_allocated",
		metric.WithDescription("Cumulative bytes allocated by the Go runtime"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	memorySystem, err := meter.Int64Gauge(
		"system_memory_system",
		metric.WithDescription("Memory obtained from the OS"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	gcCount, err := meter.Int64Gauge(
		"system_gc_count",
		metric.WithDescription("Completed garbage collection cycles"),
	)
	if err != nil {
		return nil, err
	}

	processUptime, err := meter.Float64Gauge(
		"system_process_uptime",
		metric.WithDescription("Seconds since the process started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &SystemMetrics{
		goRoutines:      goRoutines,
		memoryUsage:     memoryUsage,
		memoryAllocated: memoryAllocated,
		memorySystem:    memorySystem,
		gcCount:         gcCount,
		processUptime:   processUptime,
	}, nil
}

// SystemStats holds a snapshot of runtime statistics
type SystemStats struct {
	GoRoutines      int64
	MemoryUsage     int64
	MemoryAllocated int64
	MemorySystem    int64
	GCCount         uint32
	ProcessUptime   time.Duration
	Timestamp       time.Time
}

// Collect reads the runtime statistics and records them
func (sm *SystemMetrics) Collect(ctx context.Context, startTime time.Time) *SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := &SystemStats{
		GoRoutines:      int64(runtime.NumGoroutine()),
		MemoryUsage:     int64(memStats.Alloc),
		MemoryAllocated: int64(memStats.TotalAlloc),
		MemorySystem:    int64(memStats.Sys),
		GCCount:         memStats.NumGC,
		ProcessUptime:   time.Since(startTime),
		Timestamp:       time.Now(),
	}

	sm.goRoutines.Record(ctx, stats.GoRoutines)
	sm.memoryUsage.Record(ctx, stats.MemoryUsage)
	sm.memoryAllocated.Record(ctx, stats.MemoryAllocated)
	sm.memorySystem.Record(ctx, stats.MemorySystem)
	sm.gcCount.Record(ctx, int64(stats.GCCount))
	sm.processUptime.Record(ctx, stats.ProcessUptime.Seconds())

	return stats
}

// FormatStats returns a log-friendly representation of the snapshot
func (stats *SystemStats) FormatStats() map[string]interface{} {
	return map[string]interface{}{
		"goroutines":       stats.GoRoutines,
		"memory_usage_mb":  stats.MemoryUsage / 1024 / 1024,
		"memory_alloc_mb":  stats.MemoryAllocated / 1024 / 1024,
		"memory_system_mb": stats.MemorySystem / 1024 / 1024,
		"gc_count":         stats.GCCount,
		"uptime_seconds":   stats.ProcessUptime.Seconds(),
	}
}
