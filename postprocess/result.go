// Package postprocess - detection-pipeline facing wrappers around the core suppression.
package postprocess

import "github.com/nvr-ai/go-nms/geometry"

// Result represents a single detection result.
type Result struct {
	// The bounding box of the result.
	Box geometry.Box[float32]
	// The confidence score of the result.
	Score float32
	// The predicted class index of the result.
	Class int
}
