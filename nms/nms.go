// Package nms - greedy Non-Maximum Suppression over scored candidate boxes.
//
// The package collapses overlapping detector candidates down to one box per
// object: boxes are visited in descending score order and every lower-priority
// box whose IoU with the current anchor reaches the threshold is discarded.
package nms

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/geometry"
)

// ErrShapeMismatch is returned when the box and score collections disagree
// in length. It is the only structural failure mode of a suppression call.
var ErrShapeMismatch = errors.New("box and score counts differ")

// Strategy selects the suppression scan implementation.
type Strategy int

const (
	// StrategySweep is the reference O(N^2) pairwise scan.
	StrategySweep Strategy = iota
	// StrategyGrid prunes pair evaluations with a uniform spatial grid.
	StrategyGrid
)

// Options control a suppression call. The zero value reproduces the legacy
// detector behavior: inclusive-pixel areas and a single-threaded sweep.
type Options struct {
	// Convention selects how areas and overlap extents are measured.
	Convention geometry.Convention
	// Strategy selects the scan implementation.
	Strategy Strategy
	// Workers > 1 parallelizes the inner comparison loop of the sweep.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithConvention overrides the box measurement convention.
func WithConvention(c geometry.Convention) Option {
	return func(o *Options) { o.Convention = c }
}

// WithStrategy selects the scan strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers sets the number of goroutines used for the inner comparison
// loop. Values below 2 keep the scan single-threaded.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// Suppress runs greedy Non-Maximum Suppression.
//
// Arguments:
//   - boxes: Candidate boxes, indexed by their original input position.
//   - scores: Confidence scores, parallel to boxes.
//   - threshold: IoU at or above which a lower-scoring box is suppressed.
//
// Returns:
//   - The kept original indices in ascending index order (not score order),
//     so callers can index back into their own box/score storage.
//   - ErrShapeMismatch if len(boxes) != len(scores). No other failure modes:
//     malformed or zero-area boxes degrade to zero overlap instead of failing.
func Suppress[T geometry.Float](boxes []geometry.Box[T], scores []T, threshold T, opts ...Option) ([]int, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return SuppressScanner(scannerFor[T](o), boxes, scores, threshold, o.Convention)
}

// SuppressScanner runs greedy NMS with an explicit scan implementation.
// All scanners in this package produce identical results; custom scanners
// must preserve the sequential scan semantics documented on Scanner.
func SuppressScanner[T geometry.Float](s Scanner[T], boxes []geometry.Box[T], scores []T, threshold T, c geometry.Convention) ([]int, error) {
	if len(boxes) != len(scores) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d boxes, %d scores", len(boxes), len(scores))
	}
	if len(boxes) == 0 {
		return []int{}, nil
	}

	// Scratch state is allocated fresh per call and owned exclusively by it,
	// so concurrent invocations never share anything.
	pass := &Pass[T]{
		Boxes:      boxes,
		Areas:      geometry.Areas(boxes, c),
		Order:      orderByScore(scores),
		Threshold:  threshold,
		Convention: c,
		Suppressed: make([]bool, len(boxes)),
	}
	s.Scan(pass)

	kept := make([]int, 0, len(boxes))
	for i, gone := range pass.Suppressed {
		if !gone {
			kept = append(kept, i)
		}
	}
	return kept, nil
}

func scannerFor[T geometry.Float](o Options) Scanner[T] {
	if o.Strategy == StrategyGrid {
		return Grid[T]{}
	}
	if o.Workers > 1 {
		return Parallel[T]{Workers: o.Workers}
	}
	return Sweep[T]{}
}
