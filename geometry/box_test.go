package geometry

import (
	"math"
	"testing"
)

// TestIoU_Correctness validates the IoU implementation against known cases
// under both measurement conventions.
func TestIoU_Correctness(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Box[float64]
		convention Convention
		expected   float64
		epsilon    float64
	}{
		{
			name:       "identical boxes inclusive",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{0, 0, 10, 10},
			convention: ConventionPixelInclusive,
			expected:   1.0,
			epsilon:    1e-9,
		},
		{
			name:       "identical boxes continuous",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{0, 0, 10, 10},
			convention: ConventionContinuous,
			expected:   1.0,
			epsilon:    1e-9,
		},
		{
			name:       "no overlap",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{20, 20, 30, 30},
			convention: ConventionPixelInclusive,
			expected:   0.0,
			epsilon:    1e-9,
		},
		{
			name:       "unit shift inclusive",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{1, 1, 11, 11},
			convention: ConventionPixelInclusive,
			// inter = 10*10 = 100, union = 121 + 121 - 100 = 142
			expected: 100.0 / 142.0,
			epsilon:  1e-9,
		},
		{
			name:       "unit shift continuous",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{1, 1, 11, 11},
			convention: ConventionContinuous,
			// inter = 9*9 = 81, union = 100 + 100 - 81 = 119
			expected: 81.0 / 119.0,
			epsilon:  1e-9,
		},
		{
			name:       "one inside other continuous",
			a:          Box[float64]{0, 0, 100, 100},
			b:          Box[float64]{25, 25, 75, 75},
			convention: ConventionContinuous,
			expected:   0.25,
			epsilon:    1e-9,
		},
		{
			name: "touching edges share one inclusive pixel column",
			a:    Box[float64]{0, 0, 10, 10},
			b:    Box[float64]{10, 0, 20, 10},
			// w = 10-10+1 = 1, h = 11, inter = 11, union = 121+121-11
			convention: ConventionPixelInclusive,
			expected:   11.0 / 231.0,
			epsilon:    1e-9,
		},
		{
			name:       "touching edges continuous",
			a:          Box[float64]{0, 0, 10, 10},
			b:          Box[float64]{10, 0, 20, 10},
			convention: ConventionContinuous,
			expected:   0.0,
			epsilon:    1e-9,
		},
		{
			name:       "degenerate zero-area boxes define IoU as zero",
			a:          Box[float64]{5, 5, 5, 5},
			b:          Box[float64]{5, 5, 5, 5},
			convention: ConventionContinuous,
			expected:   0.0,
			epsilon:    1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areaA := tt.a.Area(tt.convention)
			areaB := tt.b.Area(tt.convention)
			got := IoU(tt.a, tt.b, areaA, areaB, tt.convention)
			if math.Abs(got-tt.expected) > tt.epsilon {
				t.Errorf("IoU() = %v, expected %v", got, tt.expected)
			}

			// IoU(a, b) must equal IoU(b, a).
			reverse := IoU(tt.b, tt.a, areaB, areaA, tt.convention)
			if math.Abs(got-reverse) > tt.epsilon {
				t.Errorf("IoU not symmetric: %v != %v", got, reverse)
			}
		})
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		name       string
		box        Box[float32]
		convention Convention
		expected   float32
	}{
		{"inclusive counts both corner pixels", Box[float32]{0, 0, 10, 10}, ConventionPixelInclusive, 121},
		{"continuous is the plain product", Box[float32]{0, 0, 10, 10}, ConventionContinuous, 100},
		{"single pixel inclusive", Box[float32]{5, 5, 5, 5}, ConventionPixelInclusive, 1},
		{"single point continuous", Box[float32]{5, 5, 5, 5}, ConventionContinuous, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Area(tt.convention); got != tt.expected {
				t.Errorf("Area() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAreas(t *testing.T) {
	boxes := []Box[float64]{
		{0, 0, 10, 10},
		{0, 0, 4, 9},
	}
	areas := Areas(boxes, ConventionContinuous)
	if len(areas) != 2 || areas[0] != 100 || areas[1] != 36 {
		t.Errorf("Areas() = %v, expected [100 36]", areas)
	}
}

func TestIntersection_ClampsNegativeExtents(t *testing.T) {
	// Malformed box (x2 < x1) must degrade to zero intersection, not a
	// negative one.
	a := Box[float64]{10, 0, 0, 10}
	b := Box[float64]{0, 0, 10, 10}
	if got := Intersection(a, b, ConventionContinuous); got != 0 {
		t.Errorf("Intersection() = %v, expected 0", got)
	}
}
