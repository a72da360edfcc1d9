package benchmark

import (
	"fmt"
	"math/rand"

	"github.com/nvr-ai/go-nms/geometry"
	"github.com/nvr-ai/go-nms/nms"
)

// Scenario describes one synthetic suppression workload: a dense grid of
// jittered anchor boxes with random scores, the shape of input a detector
// head produces before NMS collapses it.
type Scenario struct {
	Name       string       `json:"name"`
	Boxes      int          `json:"boxes"`
	GridStride float32      `json:"grid_stride"`
	BoxSize    float32      `json:"box_size"`
	Jitter     float32      `json:"jitter"`
	Threshold  float32      `json:"threshold"`
	Strategy   nms.Strategy `json:"strategy"`
	Workers    int          `json:"workers"`
	Iterations int          `json:"iterations"`
	WarmupRuns int          `json:"warmup_runs"`
	Seed       int64        `json:"seed"`
}

// ScenarioBuilder helps build benchmark scenarios with a fluent API.
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder creates a new scenario builder with workable defaults.
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:       name,
			Boxes:      1000,
			GridStride: 16,
			BoxSize:    48,
			Jitter:     8,
			Threshold:  0.5,
			Iterations: 100,
			WarmupRuns: 10,
			Seed:       1,
		},
	}
}

// WithBoxes sets the number of candidate boxes.
func (sb *ScenarioBuilder) WithBoxes(n int) *ScenarioBuilder {
	sb.scenario.Boxes = n
	return sb
}

// WithGrid sets the anchor grid stride and the generated box size.
func (sb *ScenarioBuilder) WithGrid(stride, boxSize float32) *ScenarioBuilder {
	sb.scenario.GridStride = stride
	sb.scenario.BoxSize = boxSize
	sb.scenario.Name = fmt.Sprintf("%s-stride%v", sb.scenario.Name, stride)
	return sb
}

// WithJitter sets the random corner displacement applied to each anchor.
func (sb *ScenarioBuilder) WithJitter(jitter float32) *ScenarioBuilder {
	sb.scenario.Jitter = jitter
	return sb
}

// WithThreshold sets the suppression IoU threshold.
func (sb *ScenarioBuilder) WithThreshold(t float32) *ScenarioBuilder {
	sb.scenario.Threshold = t
	return sb
}

// WithStrategy sets the scan strategy under test.
func (sb *ScenarioBuilder) WithStrategy(s nms.Strategy) *ScenarioBuilder {
	sb.scenario.Strategy = s
	return sb
}

// WithWorkers sets the inner-loop worker count under test.
func (sb *ScenarioBuilder) WithWorkers(n int) *ScenarioBuilder {
	sb.scenario.Workers = n
	return sb
}

// WithIterations sets the number of measured iterations.
func (sb *ScenarioBuilder) WithIterations(iterations int) *ScenarioBuilder {
	sb.scenario.Iterations = iterations
	return sb
}

// WithWarmupRuns sets the number of unmeasured warmup runs.
func (sb *ScenarioBuilder) WithWarmupRuns(warmups int) *ScenarioBuilder {
	sb.scenario.WarmupRuns = warmups
	return sb
}

// WithSeed fixes the RNG seed so a scenario generates identical inputs on
// every run.
func (sb *ScenarioBuilder) WithSeed(seed int64) *ScenarioBuilder {
	sb.scenario.Seed = seed
	return sb
}

// Build returns the configured scenario.
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// Generate produces the scenario's candidate boxes and scores. Anchors walk
// a square grid at GridStride spacing, each corner displaced by up to Jitter,
// with uniform random scores. The same seed always yields the same input.
func (s Scenario) Generate() ([]geometry.Box[float32], []float32) {
	rng := rand.New(rand.NewSource(s.Seed))
	side := 1
	for side*side < s.Boxes {
		side++
	}

	boxes := make([]geometry.Box[float32], 0, s.Boxes)
	scores := make([]float32, 0, s.Boxes)
	for gy := 0; gy < side && len(boxes) < s.Boxes; gy++ {
		for gx := 0; gx < side && len(boxes) < s.Boxes; gx++ {
			x := float32(gx) * s.GridStride
			y := float32(gy) * s.GridStride
			jx := (rng.Float32()*2 - 1) * s.Jitter
			jy := (rng.Float32()*2 - 1) * s.Jitter
			boxes = append(boxes, geometry.Box[float32]{
				X1: x + jx,
				Y1: y + jy,
				X2: x + jx + s.BoxSize,
				Y2: y + jy + s.BoxSize,
			})
			scores = append(scores, rng.Float32())
		}
	}
	return boxes, scores
}
