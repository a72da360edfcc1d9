package nms

import (
	"math"

	"github.com/nvr-ai/go-nms/geometry"
)

// Grid is a spatially-indexed scanner. It bins boxes into a uniform grid over
// the input extent and only evaluates candidate pairs that share at least one
// cell, which prunes most of the O(N^2) comparisons on spread-out inputs.
// Results are identical to Sweep.
type Grid[T geometry.Float] struct {
	// Cells per axis. Zero derives a cell count from the box count.
	Cells int
}

// Scan implements Scanner.
func (g Grid[T]) Scan(p *Pass[T]) {
	n := len(p.Order)
	if n == 0 {
		return
	}
	// With the legacy >= comparison a threshold at or below zero suppresses
	// even zero-IoU pairs, which cell pruning would miss.
	if p.Threshold <= 0 {
		Sweep[T]{}.Scan(p)
		return
	}
	cells := g.Cells
	if cells <= 0 {
		cells = int(math.Sqrt(float64(n)))
		if cells < 1 {
			cells = 1
		}
		if cells > 64 {
			cells = 64
		}
	}

	// Under the inclusive-pixel convention two boxes can overlap even when
	// their raw coordinate intervals do not touch, so extents are padded by
	// the convention offset before binning.
	off := T(p.Convention.Offset())
	minX, minY := p.Boxes[0].X1, p.Boxes[0].Y1
	maxX, maxY := p.Boxes[0].X2+off, p.Boxes[0].Y2+off
	for _, b := range p.Boxes[1:] {
		minX = min(minX, b.X1)
		minY = min(minY, b.Y1)
		maxX = max(maxX, b.X2+off)
		maxY = max(maxY, b.Y2+off)
	}
	spanX := float64(maxX - minX)
	spanY := float64(maxY - minY)
	if !(spanX > 0) {
		spanX = 1
	}
	if !(spanY > 0) {
		spanY = 1
	}

	cellOf := func(v T, lo T, span float64) int {
		c := int(float64(v-lo) / span * float64(cells))
		if c < 0 {
			c = 0
		}
		if c >= cells {
			c = cells - 1
		}
		return c
	}

	// rank is each box's position in the priority order; a box may only
	// suppress boxes ranked after it.
	rank := make([]int, n)
	for r, idx := range p.Order {
		rank[idx] = r
	}

	type cellRange struct{ cx1, cy1, cx2, cy2 int }
	ranges := make([]cellRange, n)
	buckets := make([][]int, cells*cells)
	for idx, b := range p.Boxes {
		cr := cellRange{
			cx1: cellOf(b.X1, minX, spanX),
			cy1: cellOf(b.Y1, minY, spanY),
			cx2: cellOf(b.X2+off, minX, spanX),
			cy2: cellOf(b.Y2+off, minY, spanY),
		}
		ranges[idx] = cr
		for cy := cr.cy1; cy <= cr.cy2; cy++ {
			for cx := cr.cx1; cx <= cr.cx2; cx++ {
				c := cy*cells + cx
				buckets[c] = append(buckets[c], idx)
			}
		}
	}

	// seen de-duplicates candidates that share several cells with the anchor.
	seen := make([]int, n)
	for i := range seen {
		seen[i] = -1
	}
	for r := 0; r < n; r++ {
		i := p.Order[r]
		if p.Suppressed[i] {
			continue
		}
		cr := ranges[i]
		for cy := cr.cy1; cy <= cr.cy2; cy++ {
			for cx := cr.cx1; cx <= cr.cx2; cx++ {
				for _, j := range buckets[cy*cells+cx] {
					if rank[j] <= r || p.Suppressed[j] || seen[j] == r {
						continue
					}
					seen[j] = r
					iou := geometry.IoU(p.Boxes[i], p.Boxes[j], p.Areas[i], p.Areas[j], p.Convention)
					if iou >= p.Threshold {
						p.Suppressed[j] = true
					}
				}
			}
		}
	}
}
