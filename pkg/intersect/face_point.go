package intersect

import (
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/kerf/pkg/storage"
	"github.com/chazu/kerf/pkg/topology"
)

// IntersectionKind tags a face-point intersection.
type IntersectionKind int

const (
	// PointIsInsideFace means the point is in the face's interior.
	PointIsInsideFace IntersectionKind = iota

	// PointIsOnEdge means the point is coincident with an edge.
	PointIsOnEdge

	// PointIsOnVertex means the point is coincident with a vertex.
	PointIsOnVertex
)

func (k IntersectionKind) String() string {
	switch k {
	case PointIsInsideFace:
		return "inside face"
	case PointIsOnEdge:
		return "on edge"
	case PointIsOnVertex:
		return "on vertex"
	default:
		return "unknown"
	}
}

// FacePointIntersection is the intersection between a face and a point.
type FacePointIntersection struct {
	Kind IntersectionKind

	// Edge is the coincident edge; only set for PointIsOnEdge.
	Edge storage.Handle[topology.Edge]

	// Vertex is the coincident vertex position in surface coordinates;
	// only set for PointIsOnVertex.
	Vertex v2.Vec
}

// ClassifyFacePoint determines how a 2D point, in the face's surface
// coordinates, relates to the face. The second return value is false if the
// point is outside the face.
//
// A horizontal ray is cast from the point towards positive u and tested
// against every boundary edge of every cycle, accumulating crossing parity.
// A point inside a hole crosses the hole's boundary an extra, odd number of
// times, flipping the result back to outside, so holes need no special
// treatment.
func ClassifyFacePoint(face topology.Face, point v2.Vec) (FacePointIntersection, bool) {
	ray := HorizontalRay{Origin: point}

	numHits := 0

	for cycleHandle := range face.Region.Deref().AllCycles() {
		cycle := cycleHandle.Deref()
		if len(cycle.Edges) == 0 {
			continue
		}

		// The ray passing the boundary at the seam of the polygon, the
		// vertex between the last and the first edge, must be detected
		// with the same adjacency logic as any interior vertex. Seeding
		// the previous hit with the result of the last edge takes care of
		// that. Edges parallel to the ray never update the previous hit,
		// so the seed scan skips them the same way the loop below does.
		previousHit := seedPreviousHit(ray, cycle)

		for edge, next := range cycle.Pairs() {
			hit := ray.ClassifySegment(
				edge.Deref().StartPosition(),
				next.Deref().StartPosition(),
			)

			countHit := false
			switch hit {
			case RayStartsOnSegment:
				// The ray starts on the boundary of the face; nothing
				// else to check.
				return FacePointIntersection{
					Kind: PointIsOnEdge,
					Edge: edge,
				}, true

			case RayStartsOnFirstVertex:
				return FacePointIntersection{
					Kind:   PointIsOnVertex,
					Vertex: edge.Deref().StartPosition(),
				}, true

			case RayStartsOnSecondVertex:
				return FacePointIntersection{
					Kind:   PointIsOnVertex,
					Vertex: next.Deref().StartPosition(),
				}, true

			case RayHitsSegment:
				// Hitting the segment right-on. Clear case.
				countHit = true

			case RayHitsUpperVertex, RayHitsLowerVertex:
				// A hit on a vertex shared by two edges counts only if
				// the hit right before was on the opposite kind of
				// vertex. That means the ray passes through the boundary
				// where the edges touch. Two same-kind vertex hits in a
				// row mean the ray grazes a vertex without passing
				// through anything.
				countHit = hit == opposingVertexHit(previousHit)

			case RayHitsParallelSegment:
				// A parallel edge is ignored completely. Its presence
				// changes nothing, so its neighbors are evaluated as if
				// they were directly connected to each other.
				continue
			}

			if countHit {
				numHits++
			}
			previousHit = hit
		}
	}

	if numHits%2 == 1 {
		return FacePointIntersection{Kind: PointIsInsideFace}, true
	}
	return FacePointIntersection{}, false
}

// seedPreviousHit computes the classification of the last edge whose result
// would have updated the previous-hit state, walking backwards past edges
// parallel to the ray.
func seedPreviousHit(ray HorizontalRay, cycle *topology.Cycle) RaySegmentIntersection {
	n := len(cycle.Edges)
	for i := n - 1; i >= 0; i-- {
		edge := cycle.Edges[i]
		next := cycle.Edges[(i+1)%n]
		hit := ray.ClassifySegment(
			edge.Deref().StartPosition(),
			next.Deref().StartPosition(),
		)
		if hit != RayHitsParallelSegment {
			return hit
		}
	}
	return RayMissesSegment
}

// opposingVertexHit returns the vertex hit opposite to the given one, or
// RayMissesSegment if the given hit is not a vertex hit.
func opposingVertexHit(hit RaySegmentIntersection) RaySegmentIntersection {
	switch hit {
	case RayHitsUpperVertex:
		return RayHitsLowerVertex
	case RayHitsLowerVertex:
		return RayHitsUpperVertex
	default:
		return RayMissesSegment
	}
}
