// Package geometry defines the curve-level geometry kerf is built on:
// boundaries on curves and the interval algebra over them, infinite
// parametric paths (lines and circles), approximation tolerances, and
// surface geometry. Points and vectors are the sdfx vector types.
package geometry

import "fmt"

// Element is the constraint for curve boundary elements. An element must be
// comparable and carry a strict order; for curve parameters the order is
// numeric, for vertex handles it is identity order, which canonicalizes a
// boundary without being geometrically meaningful.
type Element[E any] interface {
	comparable
	Less(E) bool
}

// Param is a 1-D curve parameter.
type Param float64

// Less reports whether p orders before other.
func (p Param) Less(other Param) bool { return p < other }

// CurveBoundary is a directed pair of boundary elements describing a
// sub-interval of a curve. The pair has a canonical, normalized form in
// which the elements appear in element order.
type CurveBoundary[E Element[E]] struct {
	// Inner holds the two boundary elements, in the direction the boundary
	// was constructed with.
	Inner [2]E
}

// BoundaryOf constructs a boundary from an ordered pair of elements.
func BoundaryOf[E Element[E]](a, b E) CurveBoundary[E] {
	return CurveBoundary[E]{Inner: [2]E{a, b}}
}

// IsNormalized reports whether the bounding elements are in canonical
// order. Calling Normalize on a normalized boundary returns an identical
// instance.
func (b CurveBoundary[E]) IsNormalized() bool {
	return !b.Inner[1].Less(b.Inner[0])
}

// Reverse returns the boundary with its direction flipped.
func (b CurveBoundary[E]) Reverse() CurveBoundary[E] {
	return CurveBoundary[E]{Inner: [2]E{b.Inner[1], b.Inner[0]}}
}

// Normalize returns the boundary with its elements in canonical order,
// which allows comparing boundaries while disregarding their direction.
func (b CurveBoundary[E]) Normalize() CurveBoundary[E] {
	if b.IsNormalized() {
		return b
	}
	return b.Reverse()
}

// ParamBoundary is a curve boundary over 1-D curve parameters. Unlike the
// generic form, its element order is geometrically meaningful, which is
// what gives the interval operations below their semantics.
type ParamBoundary CurveBoundary[Param]

// ParamBoundaryOf constructs a parameter boundary from an ordered pair.
func ParamBoundaryOf(a, b Param) ParamBoundary {
	return ParamBoundary{Inner: [2]Param{a, b}}
}

// IsNormalized reports whether the parameters are in ascending order.
func (b ParamBoundary) IsNormalized() bool {
	return CurveBoundary[Param](b).IsNormalized()
}

// Reverse returns the boundary with its direction flipped.
func (b ParamBoundary) Reverse() ParamBoundary {
	return ParamBoundary(CurveBoundary[Param](b).Reverse())
}

// Normalize returns the boundary with its parameters in ascending order.
func (b ParamBoundary) Normalize() ParamBoundary {
	return ParamBoundary(CurveBoundary[Param](b).Normalize())
}

// IsEmpty reports whether the boundary encloses no interval at all.
func (b ParamBoundary) IsEmpty() bool {
	min, max := b.Inner[0], b.Inner[1]
	return min >= max
}

// Contains reports whether the parameter lies in the strict interior of the
// boundary. The boundary elements themselves are not contained.
func (b ParamBoundary) Contains(p Param) bool {
	min, max := b.Inner[0], b.Inner[1]
	return p > min && p < max
}

// Overlaps reports whether two boundaries share any part of the curve.
// Boundaries that merely touch, with their closest elements equal, count as
// overlapping.
func (b ParamBoundary) Overlaps(other ParamBoundary) bool {
	bn := b.Normalize()
	on := other.Normalize()
	return bn.Inner[0] <= on.Inner[1] && bn.Inner[1] >= on.Inner[0]
}

// Subset returns the normalized intersection of two boundaries. The result
// is empty if the boundaries do not overlap.
func (b ParamBoundary) Subset(other ParamBoundary) ParamBoundary {
	bn := b.Normalize()
	on := other.Normalize()
	return ParamBoundaryOf(
		max(bn.Inner[0], on.Inner[0]),
		min(bn.Inner[1], on.Inner[1]),
	)
}

// Union returns the normalized union of two boundaries.
//
// Merging boundaries that do not at least touch would produce an interval
// covering curve sections neither input describes, so that is a contract
// violation: Union panics if the boundaries do not overlap.
func (b ParamBoundary) Union(other ParamBoundary) ParamBoundary {
	if !b.Overlaps(other) {
		panic(fmt.Sprintf(
			"geometry: cannot merge boundaries %v and %v that don't at least touch",
			b.Inner, other.Inner))
	}

	bn := b.Normalize()
	on := other.Normalize()
	return ParamBoundaryOf(
		min(bn.Inner[0], on.Inner[0]),
		max(bn.Inner[1], on.Inner[1]),
	)
}
