package benchmark

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/nvr-ai/go-nms/nms"
)

// Suite manages and executes suppression benchmark scenarios.
type Suite struct {
	mu        sync.RWMutex
	scenarios []Scenario
	results   []PerformanceMetrics
}

// NewSuite creates an empty benchmark suite.
func NewSuite() *Suite {
	return &Suite{
		scenarios: make([]Scenario, 0),
		results:   make([]PerformanceMetrics, 0),
	}
}

// AddScenario adds a scenario to the suite.
func (bs *Suite) AddScenario(scenario Scenario) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.scenarios = append(bs.scenarios, scenario)
}

// Results returns a copy of the metrics collected so far.
func (bs *Suite) Results() []PerformanceMetrics {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	out := make([]PerformanceMetrics, len(bs.results))
	copy(out, bs.results)
	return out
}

// RunAll executes every registered scenario in order.
//
// Arguments:
//   - ctx: Cancellation context checked between iterations.
//
// Returns:
//   - The metrics for all scenarios, or the first error encountered.
func (bs *Suite) RunAll(ctx context.Context) ([]PerformanceMetrics, error) {
	bs.mu.RLock()
	scenarios := make([]Scenario, len(bs.scenarios))
	copy(scenarios, bs.scenarios)
	bs.mu.RUnlock()

	for _, scenario := range scenarios {
		if _, err := bs.RunScenario(ctx, scenario); err != nil {
			return nil, err
		}
	}
	return bs.Results(), nil
}

// RunScenario executes a single benchmark scenario and records its metrics.
func (bs *Suite) RunScenario(ctx context.Context, scenario Scenario) (*PerformanceMetrics, error) {
	if scenario.Iterations <= 0 {
		return nil, errors.Errorf("scenario %q has no iterations", scenario.Name)
	}

	boxes, scores := scenario.Generate()
	opts := []nms.Option{
		nms.WithStrategy(scenario.Strategy),
		nms.WithWorkers(scenario.Workers),
	}

	// Warmup runs.
	for i := 0; i < scenario.WarmupRuns; i++ {
		if _, err := nms.Suppress(boxes, scores, scenario.Threshold, opts...); err != nil {
			return nil, errors.Wrapf(err, "scenario %q warmup", scenario.Name)
		}
	}

	var startMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&startMem)

	metrics := &PerformanceMetrics{
		Scenario:  scenario,
		Timestamp: time.Now(),
	}
	latencies := make([]float64, 0, scenario.Iterations)
	kept := 0

	startTime := time.Now()
	for i := 0; i < scenario.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iterStart := time.Now()
		result, err := nms.Suppress(boxes, scores, scenario.Threshold, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q iteration %d", scenario.Name, i)
		}
		latencies = append(latencies, float64(time.Since(iterStart)))
		kept = len(result)
	}
	metrics.TotalDuration = time.Since(startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)

	metrics.LatencyMean = time.Duration(stat.Mean(latencies, nil))
	metrics.LatencyStdDev = time.Duration(stat.StdDev(latencies, nil))
	metrics.KeptBoxes = kept
	metrics.SuppressedBoxes = len(boxes) - kept
	if secs := metrics.TotalDuration.Seconds(); secs > 0 {
		metrics.BoxesPerSecond = float64(len(boxes)*scenario.Iterations) / secs
	}
	metrics.MemoryStats = MemoryMetrics{
		AllocBytes:      endMem.Alloc,
		TotalAllocBytes: endMem.TotalAlloc - startMem.TotalAlloc,
		SysBytes:        endMem.Sys,
		NumGC:           endMem.NumGC - startMem.NumGC,
	}

	bs.mu.Lock()
	bs.results = append(bs.results, *metrics)
	bs.mu.Unlock()

	return metrics, nil
}
