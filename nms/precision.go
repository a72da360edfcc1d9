package nms

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Precision identifies the floating-point width of a suppression call. The
// generic code paths are instantiated per width; Precision is the runtime tag
// used when the width is only known from tensor metadata.
type Precision string

// Precision constants are the supported suppression precisions.
const (
	PrecisionFP32 Precision = "FP32"
	PrecisionFP64 Precision = "FP64"
)

// precisionOf maps a tensor dtype onto a supported Precision.
func precisionOf(dt tensor.Dtype) (Precision, error) {
	switch dt {
	case tensor.Float32:
		return PrecisionFP32, nil
	case tensor.Float64:
		return PrecisionFP64, nil
	default:
		return "", errors.Errorf("unsupported dtype %v: coordinates and scores must be float32 or float64", dt)
	}
}
