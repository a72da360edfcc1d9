package nms

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-nms/geometry"
)

// SuppressDense runs greedy NMS over dense tensor inputs, the layout detector
// heads usually emit: dets shaped (N, 4) with rows (x1, y1, x2, y2) and
// scores shaped (N). Both tensors must share a floating-point dtype; the call
// dispatches to the matching generic instantiation at runtime.
//
// Arguments:
//   - dets: Candidate boxes, row-major (N, 4).
//   - scores: Confidence scores, (N).
//   - threshold: IoU at or above which a lower-scoring box is suppressed.
//
// Returns:
//   - The kept row indices in ascending order.
//   - ErrShapeMismatch when the row and score counts differ, or an error for
//     malformed shapes and non-float dtypes.
func SuppressDense(dets, scores *tensor.Dense, threshold float64, opts ...Option) ([]int, error) {
	if dets.Dims() != 2 || dets.Shape()[1] != 4 {
		return nil, errors.Errorf("dets must be shaped (N, 4), got %v", dets.Shape())
	}
	if scores.Dims() != 1 {
		return nil, errors.Errorf("scores must be shaped (N), got %v", scores.Shape())
	}
	n := dets.Shape()[0]
	if scores.Shape()[0] != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d boxes, %d scores", n, scores.Shape()[0])
	}
	if dets.Dtype() != scores.Dtype() {
		return nil, errors.Errorf("dets dtype %v does not match scores dtype %v", dets.Dtype(), scores.Dtype())
	}
	prec, err := precisionOf(dets.Dtype())
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	switch prec {
	case PrecisionFP32:
		return Suppress(boxesFromRows(dets.Data().([]float32)), scores.Data().([]float32), float32(threshold), opts...)
	default:
		return Suppress(boxesFromRows(dets.Data().([]float64)), scores.Data().([]float64), threshold, opts...)
	}
}

// boxesFromRows reinterprets a row-major (N, 4) buffer as boxes.
func boxesFromRows[T geometry.Float](data []T) []geometry.Box[T] {
	boxes := make([]geometry.Box[T], len(data)/4)
	for i := range boxes {
		boxes[i] = geometry.Box[T]{
			X1: data[4*i],
			Y1: data[4*i+1],
			X2: data[4*i+2],
			Y2: data[4*i+3],
		}
	}
	return boxes
}
