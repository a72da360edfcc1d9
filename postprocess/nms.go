package postprocess

import (
	"github.com/nvr-ai/go-nms/geometry"
	"github.com/nvr-ai/go-nms/nms"
)

// NMSConfig defines parameters for Non-Maximum Suppression.
type NMSConfig struct {
	IoUThreshold float32             // Overlap threshold for suppression.
	ClassAware   bool                // If true, suppress only within the same class.
	NumWorkers   int                 // Goroutines for the inner comparison loop; <2 is sequential.
	Convention   geometry.Convention // Box measurement convention.
}

// ApplyNMS filters overlapping detections using greedy Non-Maximum
// Suppression. Detections do not need to be pre-sorted; higher scores win
// regardless of input order.
//
// Arguments:
//   - detections: Candidate detections in any order.
//   - config: NMS configuration. With ClassAware set, detections of different
//     classes never suppress each other.
//
// Returns:
//   - The surviving detections, in their original input order. Returns nil
//     when no detections are provided.
func ApplyNMS(detections []Result, config *NMSConfig) []Result {
	n := len(detections)
	if n == 0 {
		return nil
	}

	opts := []nms.Option{nms.WithConvention(config.Convention)}
	if config.NumWorkers > 1 {
		opts = append(opts, nms.WithWorkers(config.NumWorkers))
	}

	kept := make([]bool, n)
	if config.ClassAware {
		for _, members := range groupByClass(detections) {
			markKept(detections, members, config.IoUThreshold, kept, opts)
		}
	} else {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		markKept(detections, all, config.IoUThreshold, kept, opts)
	}

	filtered := make([]Result, 0, n)
	for i, keep := range kept {
		if keep {
			filtered = append(filtered, detections[i])
		}
	}
	return filtered
}

// markKept runs suppression over the given detection indices and flags the
// survivors in kept.
func markKept(detections []Result, members []int, threshold float32, kept []bool, opts []nms.Option) {
	boxes := make([]geometry.Box[float32], len(members))
	scores := make([]float32, len(members))
	for i, idx := range members {
		boxes[i] = detections[idx].Box
		scores[i] = detections[idx].Score
	}
	// The slices are built in parallel, so the shape check cannot fail.
	keep, _ := nms.Suppress(boxes, scores, threshold, opts...)
	for _, i := range keep {
		kept[members[i]] = true
	}
}

func groupByClass(detections []Result) map[int][]int {
	groups := make(map[int][]int)
	for i, d := range detections {
		groups[d.Class] = append(groups[d.Class], i)
	}
	return groups
}
