package nms

import "github.com/nvr-ai/go-nms/geometry"

// Pass bundles the per-invocation state of one suppression scan. Everything
// in it is freshly allocated by SuppressScanner and discarded afterwards;
// Suppressed is the only field a scanner mutates, and flags are never cleared
// once set.
type Pass[T geometry.Float] struct {
	Boxes      []geometry.Box[T]
	Areas      []T
	Order      []int
	Threshold  T
	Convention geometry.Convention
	Suppressed []bool
}

// Scanner marks lower-priority overlapping boxes as suppressed.
//
// Implementations must preserve the sequential scan semantics: anchors are
// taken in Order, an already-suppressed box never becomes an anchor, and only
// boxes later in Order than the current anchor may be suppressed by it.
// Suppressing a pair the sweep would suppress later (because its anchor was
// itself suppressed first) changes results and is not allowed.
type Scanner[T geometry.Float] interface {
	Scan(p *Pass[T])
}

// Sweep is the reference scanner: the plain O(N^2) double loop.
type Sweep[T geometry.Float] struct{}

// Scan walks the priority order and, for each surviving anchor, suppresses
// every lower-priority box whose IoU with it reaches the threshold.
func (Sweep[T]) Scan(p *Pass[T]) {
	n := len(p.Order)
	for oi := 0; oi < n; oi++ {
		i := p.Order[oi]
		if p.Suppressed[i] {
			continue
		}
		for oj := oi + 1; oj < n; oj++ {
			j := p.Order[oj]
			if p.Suppressed[j] {
				continue
			}
			iou := geometry.IoU(p.Boxes[i], p.Boxes[j], p.Areas[i], p.Areas[j], p.Convention)
			if iou >= p.Threshold {
				p.Suppressed[j] = true
			}
		}
	}
}
