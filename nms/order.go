package nms

import (
	"math"
	"sort"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-nms/geometry"
)

// orderByScore returns a permutation of indices sorted by descending score.
// Equal scores keep their ascending original-index order (stable sort), so
// results are reproducible for any input. NaN scores sort after every real
// score and therefore never anchor ahead of a real detection.
func orderByScore[T geometry.Float](scores []T) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := scores[order[a]], scores[order[b]]
		if isNaN(sa) {
			return false
		}
		if isNaN(sb) {
			return true
		}
		return sa > sb
	})
	return order
}

func isNaN[T geometry.Float](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math32.IsNaN(x)
	case float64:
		return math.IsNaN(x)
	}
	return v != v
}
