// Package intersect implements the point-classification predicates over
// faces. The predicates are pure, synchronous computations over immutable
// inputs; degenerate cases (ray through a vertex, ray collinear with an
// edge) are handled exactly, not with epsilons.
package intersect

import v2 "github.com/deadsy/sdfx/vec/v2"

// HorizontalRay is a ray cast from an origin towards positive u, in the 2D
// parameter space of a surface.
type HorizontalRay struct {
	Origin v2.Vec
}

// RaySegmentIntersection classifies how a horizontal ray relates to a
// directed segment.
type RaySegmentIntersection int

const (
	// RayMissesSegment means the ray does not touch the segment.
	RayMissesSegment RaySegmentIntersection = iota

	// RayStartsOnSegment means the ray's origin lies on the segment's
	// interior.
	RayStartsOnSegment

	// RayStartsOnFirstVertex means the ray's origin coincides with the
	// segment's first vertex.
	RayStartsOnFirstVertex

	// RayStartsOnSecondVertex means the ray's origin coincides with the
	// segment's second vertex.
	RayStartsOnSecondVertex

	// RayHitsSegment means the ray crosses the segment's interior, cleanly.
	RayHitsSegment

	// RayHitsUpperVertex means the ray passes exactly through the
	// segment's upper vertex.
	RayHitsUpperVertex

	// RayHitsLowerVertex means the ray passes exactly through the
	// segment's lower vertex.
	RayHitsLowerVertex

	// RayHitsParallelSegment means the segment lies on the ray's line, at
	// least partly in front of the origin.
	RayHitsParallelSegment
)

func (i RaySegmentIntersection) String() string {
	switch i {
	case RayMissesSegment:
		return "misses segment"
	case RayStartsOnSegment:
		return "starts on segment"
	case RayStartsOnFirstVertex:
		return "starts on first vertex"
	case RayStartsOnSecondVertex:
		return "starts on second vertex"
	case RayHitsSegment:
		return "hits segment"
	case RayHitsUpperVertex:
		return "hits upper vertex"
	case RayHitsLowerVertex:
		return "hits lower vertex"
	case RayHitsParallelSegment:
		return "hits parallel segment"
	default:
		return "unknown"
	}
}

// ClassifySegment classifies the ray against the segment from a to b.
//
// The origin-on-boundary cases take priority: if the origin coincides with
// an endpoint or lies on the segment, that is reported regardless of where
// the rest of the segment is.
func (r HorizontalRay) ClassifySegment(a, b v2.Vec) RaySegmentIntersection {
	origin := r.Origin

	if origin == a {
		return RayStartsOnFirstVertex
	}
	if origin == b {
		return RayStartsOnSecondVertex
	}

	if a.Y == b.Y {
		// The segment is parallel to the ray.
		if origin.Y != a.Y {
			return RayMissesSegment
		}

		left, right := a.X, b.X
		if left > right {
			left, right = right, left
		}
		switch {
		case origin.X > left && origin.X < right:
			return RayStartsOnSegment
		case origin.X <= left:
			// The whole segment is in front of the origin.
			return RayHitsParallelSegment
		default:
			return RayMissesSegment
		}
	}

	lower, upper := a, b
	if lower.Y > upper.Y {
		lower, upper = upper, lower
	}

	if origin.Y < lower.Y || origin.Y > upper.Y {
		return RayMissesSegment
	}

	if origin.Y == upper.Y {
		if upper.X >= origin.X {
			return RayHitsUpperVertex
		}
		return RayMissesSegment
	}
	if origin.Y == lower.Y {
		if lower.X >= origin.X {
			return RayHitsLowerVertex
		}
		return RayMissesSegment
	}

	// The ray's line crosses the segment's interior; find the u coordinate
	// of the crossing.
	u := a.X + (b.X-a.X)*(origin.Y-a.Y)/(b.Y-a.Y)
	switch {
	case u == origin.X:
		return RayStartsOnSegment
	case u > origin.X:
		return RayHitsSegment
	default:
		return RayMissesSegment
	}
}
