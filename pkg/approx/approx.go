// Package approx tessellates paths into ordered point sequences within a
// tolerance.
//
// Paths are infinite, so a range must be provided to approximate one; the
// points returned lie strictly inside that range, excluding its endpoints,
// which the caller knows anyway.
//
// Approximation is deterministic for a given combination of path and
// tolerance, regardless of the range: the infinite set of candidate sample
// parameters is a fixed lattice computed from path and tolerance alone. The
// range only selects which lattice points are computed, and the order they
// are returned in. Two overlapping or adjacent ranges of the same path,
// approximated independently, therefore yield coincident samples on the
// overlap, which is what keeps assembled meshes watertight.
package approx

import (
	"fmt"
	"iter"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/kerf/pkg/geometry"
)

// RangeOnPath is the range on which a path is to be approximated.
//
// Ranges are normalized on construction: the order of the two boundary
// parameters does not influence the range itself. The approximation code is
// regularly handed ranges that are reversed versions of each other, and
// normalizing first prevents the slightly different sample sets that would
// otherwise result. IsReversed records the original direction, so output
// order can be adjusted afterwards.
type RangeOnPath struct {
	boundary [2]float64
	reversed bool
}

// NewRange constructs a range from a pair of path coordinates.
func NewRange(a, b float64) RangeOnPath {
	if a > b {
		return RangeOnPath{boundary: [2]float64{b, a}, reversed: true}
	}
	return RangeOnPath{boundary: [2]float64{a, b}}
}

// Boundary returns the normalized boundary of the range.
func (r RangeOnPath) Boundary() [2]float64 {
	return r.boundary
}

// IsReversed reports whether the range was reversed during normalization.
func (r RangeOnPath) IsReversed() bool {
	return r.reversed
}

// Point is a single approximation sample: the path coordinate and the
// position it embeds to.
type Point struct {
	T     float64
	Point v3.Vec
}

// Approximate samples a path within a range. Lines are exact, so they
// produce no intermediate samples; circles are sampled on the lattice
// described by Params. If the range was constructed in reverse order, the
// output order is reversed, but the sample parameters are not affected.
func Approximate(path geometry.Path, r RangeOnPath, tolerance geometry.Tolerance) []Point {
	switch p := path.(type) {
	case geometry.Line:
		return nil
	case geometry.Circle:
		return approximateCircle(p, r, tolerance)
	default:
		panic(fmt.Sprintf("approx: unsupported path type %T", path))
	}
}

func approximateCircle(circle geometry.Circle, r RangeOnPath, tolerance geometry.Tolerance) []Point {
	params := ForCircle(circle, tolerance)

	var points []Point
	for t := range params.Points(r) {
		points = append(points, Point{
			T:     t,
			Point: circle.PointFromPathCoords(t),
		})
	}

	if r.IsReversed() {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return points
}

// Params is the sample lattice for one combination of path and tolerance:
// every candidate parameter is an integer multiple of the increment.
type Params struct {
	increment float64
}

// ForCircle computes the lattice for a circle. The minimum number of
// vertices for a full circle is max(3, ceil(pi / acos(1 - tolerance /
// radius))); the increment divides the full turn evenly by that count.
func ForCircle(circle geometry.Circle, tolerance geometry.Tolerance) Params {
	radius := circle.Radius()

	numVertices := math.Ceil(
		math.Pi / math.Acos(1-tolerance.Value()/radius))
	if math.IsNaN(numVertices) || numVertices < 3 {
		numVertices = 3
	}

	return Params{increment: 2 * math.Pi / numVertices}
}

// Increment returns the lattice spacing.
func (p Params) Increment() float64 {
	return p.increment
}

// Points enumerates the lattice parameters strictly inside the range, in
// ascending order. A lattice point landing exactly on a range endpoint is
// excluded.
func (p Params) Points(r RangeOnPath) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		boundary := r.Boundary()
		a := boundary[0] / p.increment
		b := boundary[1] / p.increment

		// No sample exactly at the end of the range; stop one lattice
		// step before it.
		if math.Ceil(b) == b {
			b--
		}
		start := math.Floor(a) + 1

		for i := start; i <= b; i++ {
			if !yield(p.increment * i) {
				return
			}
		}
	}
}
