package intersect

import (
	"fmt"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/kerf/pkg/build"
	"github.com/chazu/kerf/pkg/topology"
)

// xyFace builds a face on the xy-plane from an exterior polygon and
// optional holes, returning the dereferenced face.
func xyFace(objects *topology.Objects, exterior []v2.Vec, holes ...[]v2.Vec) topology.Face {
	handle := build.PolygonFace(
		objects.Surfaces.XYPlane(), exterior, holes, objects)
	return *handle.Deref()
}

// rotated returns the polygon re-enumerated to start at offset i.
func rotated(points []v2.Vec, i int) []v2.Vec {
	out := make([]v2.Vec, 0, len(points))
	out = append(out, points[i:]...)
	out = append(out, points[:i]...)
	return out
}

func TestClassifyFacePoint(t *testing.T) {
	tests := []struct {
		name    string
		polygon []v2.Vec
		point   v2.Vec
		want    IntersectionKind
		outside bool
	}{
		{
			name:    "point is outside face",
			polygon: []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}},
			point:   v2.Vec{X: 2, Y: 1},
			outside: true,
		},
		{
			name:    "ray hits vertex while passing outside",
			polygon: []v2.Vec{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}},
			point:   v2.Vec{X: 1, Y: 1},
			want:    PointIsInsideFace,
		},
		{
			name:    "ray hits vertex at cycle seam",
			polygon: []v2.Vec{{X: 4, Y: 2}, {X: 0, Y: 4}, {X: 0, Y: 0}},
			point:   v2.Vec{X: 1, Y: 2},
			want:    PointIsInsideFace,
		},
		{
			name: "ray hits vertex while staying inside",
			polygon: []v2.Vec{
				{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 0}, {X: 3, Y: 4},
			},
			point: v2.Vec{X: 1, Y: 1},
			want:  PointIsInsideFace,
		},
		{
			name: "ray hits parallel edge and leaves face at vertex",
			polygon: []v2.Vec{
				{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 2},
			},
			point: v2.Vec{X: 1, Y: 1},
			want:  PointIsInsideFace,
		},
		{
			name: "ray hits parallel edge and does not leave face there",
			polygon: []v2.Vec{
				{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 0},
				{X: 4, Y: 5},
			},
			point: v2.Vec{X: 1, Y: 1},
			want:  PointIsInsideFace,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Classification must not depend on which edge the cycle's
			// enumeration happens to start at.
			for i := range tt.polygon {
				objects := topology.NewObjects()
				face := xyFace(objects, rotated(tt.polygon, i))

				got, ok := ClassifyFacePoint(face, tt.point)
				if tt.outside {
					if ok {
						t.Errorf("rotation %d: got %v, want outside", i, got.Kind)
					}
					continue
				}
				if !ok {
					t.Errorf("rotation %d: got outside, want %v", i, tt.want)
					continue
				}
				if got.Kind != tt.want {
					t.Errorf("rotation %d: got %v, want %v", i, got.Kind, tt.want)
				}
			}
		})
	}
}

func TestPointIsCoincidentWithEdge(t *testing.T) {
	objects := topology.NewObjects()
	face := xyFace(objects, []v2.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1},
	})

	got, ok := ClassifyFacePoint(face, v2.Vec{X: 1, Y: 0})
	if !ok || got.Kind != PointIsOnEdge {
		t.Fatalf("got %v (ok=%v), want on edge", got.Kind, ok)
	}

	start := got.Edge.Deref().StartPosition()
	if (start != v2.Vec{X: 0, Y: 0}) {
		t.Errorf("coincident edge starts at %v, want (0,0)", start)
	}
}

func TestPointIsCoincidentWithVertex(t *testing.T) {
	objects := topology.NewObjects()
	face := xyFace(objects, []v2.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	})

	got, ok := ClassifyFacePoint(face, v2.Vec{X: 1, Y: 0})
	if !ok || got.Kind != PointIsOnVertex {
		t.Fatalf("got %v (ok=%v), want on vertex", got.Kind, ok)
	}
	if (got.Vertex != v2.Vec{X: 1, Y: 0}) {
		t.Errorf("coincident vertex = %v, want (1,0)", got.Vertex)
	}
}

func TestParallelEdgeDoesNotChangeClassification(t *testing.T) {
	// The base triangle and the same triangle with an extra edge inserted
	// exactly parallel to the ray at y=1. For every probe point and every
	// cyclic re-enumeration of either polygon, the classification of
	// interior/exterior must agree.
	base := []v2.Vec{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}}
	withParallel := []v2.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 2},
	}

	probes := []v2.Vec{
		{X: 0.5, Y: 1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: 0.5, Y: 0.5},
		{X: 5, Y: 1},
	}

	for _, probe := range probes {
		t.Run(fmt.Sprintf("probe %v", probe), func(t *testing.T) {
			objects := topology.NewObjects()
			_, wantInside := ClassifyFacePoint(xyFace(objects, base), probe)

			for i := range withParallel {
				objects := topology.NewObjects()
				face := xyFace(objects, rotated(withParallel, i))

				_, gotInside := ClassifyFacePoint(face, probe)
				if gotInside != wantInside {
					t.Errorf("rotation %d: inside = %v, want %v",
						i, gotInside, wantInside)
				}
			}
		})
	}
}

func TestPointInsideHoleIsOutsideFace(t *testing.T) {
	square := []v2.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	hole := []v2.Vec{
		{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3},
	}

	tests := []struct {
		name   string
		point  v2.Vec
		inside bool
	}{
		{"inside the hole", v2.Vec{X: 2, Y: 2}, false},
		{"between hole and boundary", v2.Vec{X: 0.5, Y: 2}, true},
		{"outside the face", v2.Vec{X: 5, Y: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects := topology.NewObjects()
			face := xyFace(objects, square, hole)

			got, ok := ClassifyFacePoint(face, tt.point)
			if ok != tt.inside {
				t.Errorf("inside = %v, want %v", ok, tt.inside)
			}
			if ok && got.Kind != PointIsInsideFace {
				t.Errorf("Kind = %v, want inside", got.Kind)
			}
		})
	}
}
