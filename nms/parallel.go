package nms

import (
	"runtime"
	"sync"

	"github.com/nvr-ai/go-nms/geometry"
)

// Parallel is a scanner that fans the inner comparison loop out across
// goroutines. The outer anchor loop stays sequential: a box's suppression
// decision may depend on suppressions applied by earlier anchors, so only the
// candidates of a fixed anchor are evaluated concurrently. Each worker owns a
// contiguous chunk of the remaining priority order, so every mask slot has a
// single writer between barriers. Results are identical to Sweep.
type Parallel[T geometry.Float] struct {
	// Workers is the number of goroutines. Values below 2 fall back to the
	// sequential sweep, as does GOMAXPROCS when Workers is unset.
	Workers int
}

// Scan implements Scanner.
func (s Parallel[T]) Scan(p *Pass[T]) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(p.Order)
	if workers < 2 || n < 2*workers {
		Sweep[T]{}.Scan(p)
		return
	}

	var wg sync.WaitGroup
	for oi := 0; oi < n; oi++ {
		i := p.Order[oi]
		if p.Suppressed[i] {
			continue
		}
		rest := p.Order[oi+1:]
		chunk := (len(rest) + workers - 1) / workers
		if chunk == 0 {
			continue
		}
		for lo := 0; lo < len(rest); lo += chunk {
			hi := lo + chunk
			if hi > len(rest) {
				hi = len(rest)
			}
			wg.Add(1)
			go func(part []int) {
				defer wg.Done()
				for _, j := range part {
					if p.Suppressed[j] {
						continue
					}
					iou := geometry.IoU(p.Boxes[i], p.Boxes[j], p.Areas[i], p.Areas[j], p.Convention)
					if iou >= p.Threshold {
						p.Suppressed[j] = true
					}
				}
			}(rest[lo:hi])
		}
		wg.Wait()
	}
}
