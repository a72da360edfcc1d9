package benchmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-nms/nms"
)

func TestScenarioBuilder(t *testing.T) {
	scenario := NewScenarioBuilder("dense").
		WithBoxes(500).
		WithThreshold(0.4).
		WithStrategy(nms.StrategyGrid).
		WithWorkers(2).
		WithIterations(3).
		WithWarmupRuns(1).
		WithSeed(7).
		Build()

	assert.Equal(t, 500, scenario.Boxes)
	assert.Equal(t, float32(0.4), scenario.Threshold)
	assert.Equal(t, nms.StrategyGrid, scenario.Strategy)
	assert.Equal(t, 2, scenario.Workers)
	assert.Equal(t, 3, scenario.Iterations)
	assert.Equal(t, 1, scenario.WarmupRuns)
	assert.Equal(t, int64(7), scenario.Seed)
}

func TestScenarioGenerate_Deterministic(t *testing.T) {
	scenario := NewScenarioBuilder("repeatable").WithBoxes(256).Build()
	boxesA, scoresA := scenario.Generate()
	boxesB, scoresB := scenario.Generate()
	assert.Equal(t, boxesA, boxesB)
	assert.Equal(t, scoresA, scoresB)
	assert.Len(t, boxesA, 256)
	assert.Len(t, scoresA, 256)
}

func TestSuite_RunScenario(t *testing.T) {
	suite := NewSuite()
	scenario := NewScenarioBuilder("smoke").
		WithBoxes(200).
		WithIterations(5).
		WithWarmupRuns(1).
		Build()

	metrics, err := suite.RunScenario(context.Background(), scenario)
	require.NoError(t, err)

	assert.Greater(t, metrics.KeptBoxes, 0)
	assert.Equal(t, 200, metrics.KeptBoxes+metrics.SuppressedBoxes)
	assert.Greater(t, metrics.TotalDuration.Nanoseconds(), int64(0))
	assert.Greater(t, metrics.BoxesPerSecond, 0.0)
	assert.False(t, metrics.Timestamp.IsZero())
	assert.Len(t, suite.Results(), 1)
}

func TestSuite_RunAllRespectsContext(t *testing.T) {
	suite := NewSuite()
	suite.AddScenario(NewScenarioBuilder("cancelled").WithBoxes(100).WithIterations(10).Build())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := suite.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuite_RunScenario_NoIterations(t *testing.T) {
	suite := NewSuite()
	_, err := suite.RunScenario(context.Background(), Scenario{Name: "empty"})
	assert.Error(t, err)
}

// TestStrategiesAgreeOnScenario runs the same generated workload through all
// scan strategies and expects identical kept counts.
func TestStrategiesAgreeOnScenario(t *testing.T) {
	scenario := NewScenarioBuilder("agreement").WithBoxes(400).Build()
	boxes, scores := scenario.Generate()

	want, err := nms.Suppress(boxes, scores, scenario.Threshold)
	require.NoError(t, err)
	grid, err := nms.Suppress(boxes, scores, scenario.Threshold, nms.WithStrategy(nms.StrategyGrid))
	require.NoError(t, err)
	parallel, err := nms.Suppress(boxes, scores, scenario.Threshold, nms.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, want, grid)
	assert.Equal(t, want, parallel)
}
