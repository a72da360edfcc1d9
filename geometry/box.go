// Package geometry - axis-aligned box primitives shared by the suppression code.
package geometry

// Float is the set of coordinate and score types the library operates on.
type Float interface {
	~float32 | ~float64
}

// Convention selects how box extents are measured.
type Convention int

const (
	// ConventionPixelInclusive treats both corner coordinates as occupied
	// pixels, so a box from x1 to x2 spans x2-x1+1 pixels. This is the
	// legacy detector convention and the default.
	ConventionPixelInclusive Convention = iota
	// ConventionContinuous measures extents as plain coordinate
	// differences, the way modern pipelines define box area.
	ConventionContinuous
)

// Offset returns the width/height correction term for the convention.
func (c Convention) Offset() float64 {
	if c == ConventionPixelInclusive {
		return 1
	}
	return 0
}

// Box is an axis-aligned rectangle given by two corner coordinates.
// Callers are trusted to supply X1 <= X2 and Y1 <= Y2; malformed boxes
// degrade to zero-area intersections rather than failing.
type Box[T Float] struct {
	X1, Y1, X2, Y2 T
}

// Area returns the box area under the given convention.
func (b Box[T]) Area(c Convention) T {
	off := T(c.Offset())
	return (b.X2 - b.X1 + off) * (b.Y2 - b.Y1 + off)
}

// Intersection returns the overlap area of two boxes under the given
// convention. Non-overlapping boxes yield 0.
func Intersection[T Float](a, b Box[T], c Convention) T {
	off := T(c.Offset())

	xx1 := max(a.X1, b.X1)
	yy1 := max(a.Y1, b.Y1)
	xx2 := min(a.X2, b.X2)
	yy2 := min(a.Y2, b.Y2)

	w := max(0, xx2-xx1+off)
	h := max(0, yy2-yy1+off)
	return w * h
}

// IoU computes Intersection over Union between two boxes.
//
// Arguments:
//   - a, b: The boxes to compare.
//   - areaA, areaB: Precomputed areas of a and b under the same convention.
//   - c: The measurement convention.
//
// Returns:
//   - The overlap ratio in [0, 1]. A degenerate union (both boxes have zero
//     area) is defined as non-overlapping and returns 0.
func IoU[T Float](a, b Box[T], areaA, areaB T, c Convention) T {
	inter := Intersection(a, b, c)
	union := areaA + areaB - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// Areas precomputes the area of every box in one pass.
func Areas[T Float](boxes []Box[T], c Convention) []T {
	areas := make([]T, len(boxes))
	for i, b := range boxes {
		areas[i] = b.Area(c)
	}
	return areas
}
