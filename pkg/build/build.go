// Package build provides thin, declarative constructors that assemble
// faces, cycles, and their supporting objects in the object stores. The
// heavy lifting lives in the stores and predicates; this layer only decides
// what to reserve and insert, in what order.
package build

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/golang/glog"

	"github.com/chazu/kerf/pkg/geometry"
	"github.com/chazu/kerf/pkg/storage"
	"github.com/chazu/kerf/pkg/topology"
)

// Polygon builds a closed cycle of line edges through the given points, in
// order, on the given surface. Each edge gets its own curve and starts at
// the vertex embedded from its 2D start position.
func Polygon(
	surface storage.Handle[topology.Surface],
	points []v2.Vec,
	objects *topology.Objects,
) storage.Handle[topology.Cycle] {
	glog.V(2).Infof("build: polygon with %d points", len(points))

	cycle := topology.Cycle{
		Edges: make([]storage.Handle[topology.Edge], 0, len(points)),
	}
	for _, point := range points {
		cycle.Edges = append(cycle.Edges, lineEdge(surface, point, objects))
	}

	handle := objects.Cycles.Reserve()
	objects.Cycles.Insert(handle, cycle)
	return handle
}

// CircleCycle builds a cycle consisting of a single full-circle edge around
// the given center.
func CircleCycle(
	surface storage.Handle[topology.Surface],
	center v2.Vec,
	radius float64,
	objects *topology.Objects,
) storage.Handle[topology.Cycle] {
	glog.V(2).Infof("build: circle cycle at %v, radius %v", center, radius)

	start := v2.Vec{X: center.X + radius, Y: center.Y}

	curve := objects.Curves.Reserve()
	objects.Curves.Insert(curve, topology.Curve{})

	vertex := vertexAt(surface, start, objects)

	edge := objects.Edges.Reserve()
	objects.Edges.Insert(edge, topology.Edge{
		Curve:       storage.Wrap(curve),
		Boundary:    geometry.ParamBoundaryOf(0, 2*math.Pi),
		Start:       start,
		StartVertex: vertex,
	})

	handle := objects.Cycles.Reserve()
	objects.Cycles.Insert(handle, topology.Cycle{
		Edges: []storage.Handle[topology.Edge]{edge},
	})
	return handle
}

// PolygonFace builds a face on the given surface from an exterior polygon
// and zero or more polygonal holes.
func PolygonFace(
	surface storage.Handle[topology.Surface],
	exterior []v2.Vec,
	holes [][]v2.Vec,
	objects *topology.Objects,
) storage.Handle[topology.Face] {
	region := topology.Region{
		Exterior: Polygon(surface, exterior, objects),
	}
	for _, hole := range holes {
		region.Interiors = append(
			region.Interiors, Polygon(surface, hole, objects))
	}

	regionHandle := objects.Regions.Reserve()
	objects.Regions.Insert(regionHandle, region)

	face := objects.Faces.Reserve()
	objects.Faces.Insert(face, topology.Face{
		Surface: surface,
		Region:  regionHandle,
	})
	return face
}

// lineEdge builds a unit-parameterized line edge starting at the given
// surface point, with its own curve and start vertex.
func lineEdge(
	surface storage.Handle[topology.Surface],
	start v2.Vec,
	objects *topology.Objects,
) storage.Handle[topology.Edge] {
	curve := objects.Curves.Reserve()
	objects.Curves.Insert(curve, topology.Curve{})

	edge := objects.Edges.Reserve()
	objects.Edges.Insert(edge, topology.Edge{
		Curve:       storage.Wrap(curve),
		Boundary:    geometry.ParamBoundaryOf(0, 1),
		Start:       start,
		StartVertex: vertexAt(surface, start, objects),
	})
	return edge
}

// vertexAt inserts the vertex for a surface point, embedded into global
// coordinates through the surface's geometry.
func vertexAt(
	surface storage.Handle[topology.Surface],
	point v2.Vec,
	objects *topology.Objects,
) storage.Handle[topology.Vertex] {
	vertex := objects.Vertices.Reserve()
	objects.Vertices.Insert(vertex, topology.Vertex{
		Position: surface.Deref().Geometry.PointFromSurfaceCoords(point),
	})
	return vertex
}
