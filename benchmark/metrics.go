// Package benchmark - Functionality for benchmarking suppression workloads.
package benchmark

import "time"

// PerformanceMetrics captures detailed performance data for one scenario.
type PerformanceMetrics struct {
	Scenario        Scenario      `json:"scenario"`
	Timestamp       time.Time     `json:"timestamp"`
	TotalDuration   time.Duration `json:"total_duration"`
	LatencyMean     time.Duration `json:"latency_mean"`
	LatencyStdDev   time.Duration `json:"latency_std_dev"`
	BoxesPerSecond  float64       `json:"boxes_per_second"`
	KeptBoxes       int           `json:"kept_boxes"`
	SuppressedBoxes int           `json:"suppressed_boxes"`
	MemoryStats     MemoryMetrics `json:"memory_stats"`
}

// MemoryMetrics captures memory usage statistics over a scenario run.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}
