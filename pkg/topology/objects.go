// Package topology defines the boundary-representation object types — from
// vertices up to solids — and the registry of stores they live in. Objects
// reference each other through store handles, never through owning
// pointers, so an evolving shape shares its unchanged parts structurally.
package topology

import (
	"iter"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/kerf/pkg/geometry"
	"github.com/chazu/kerf/pkg/storage"
)

// Vertex is a point in global 3D space.
type Vertex struct {
	Position v3.Vec
}

// Curve is the identity of a curve shared between edges. It carries no data
// of its own; edges coincide on the same curve exactly if they reference
// the same curve object.
type Curve struct{}

// VertexBoundary is a curve boundary whose elements are vertex identities.
// Its canonical order is identity order, useful for keying only.
type VertexBoundary = geometry.CurveBoundary[storage.HandleWrapper[Vertex]]

// Edge is a directed piece of a curve, bounded in the curve's 1-D
// coordinate space, living in the 2D parameter space of some surface.
type Edge struct {
	// Curve identifies the curve this edge is defined on.
	Curve storage.HandleWrapper[Curve]

	// Boundary bounds the edge on its curve.
	Boundary geometry.ParamBoundary

	// Start is the edge's starting position in surface coordinates. The
	// end position is the start of the next edge in the cycle.
	Start v2.Vec

	// StartVertex is the vertex at the edge's starting position.
	StartVertex storage.Handle[Vertex]
}

// StartPosition returns the edge's starting position in surface
// coordinates.
func (e Edge) StartPosition() v2.Vec {
	return e.Start
}

// Cycle is a closed loop of edges bounding a region or a hole. Each edge
// ends where the next one starts, and the last edge ends where the first
// one starts.
type Cycle struct {
	Edges []storage.Handle[Edge]
}

// Pairs enumerates the cycle's edges together with their successors,
// wrapping around from the last edge to the first.
func (c Cycle) Pairs() iter.Seq2[storage.Handle[Edge], storage.Handle[Edge]] {
	return func(yield func(storage.Handle[Edge], storage.Handle[Edge]) bool) {
		n := len(c.Edges)
		for i, edge := range c.Edges {
			if !yield(edge, c.Edges[(i+1)%n]) {
				return
			}
		}
	}
}

// Region is a bounded area of a surface: one exterior cycle and zero or
// more interior cycles, each bounding a hole.
type Region struct {
	Exterior  storage.Handle[Cycle]
	Interiors []storage.Handle[Cycle]
}

// AllCycles enumerates the exterior cycle, then the interior ones.
func (r Region) AllCycles() iter.Seq[storage.Handle[Cycle]] {
	return func(yield func(storage.Handle[Cycle]) bool) {
		if !yield(r.Exterior) {
			return
		}
		for _, interior := range r.Interiors {
			if !yield(interior) {
				return
			}
		}
	}
}

// Surface is a two-dimensional object, infinite in size.
type Surface struct {
	Geometry geometry.SurfaceGeometry
}

// Face is a bounded area of a surface: the surface plus a region on it.
type Face struct {
	Surface storage.Handle[Surface]
	Region  storage.Handle[Region]
}

// Shell is a connected set of faces bounding a volume.
type Shell struct {
	Faces []storage.Handle[Face]
}

// Sketch is a set of regions in a shared 2D space, intended to be swept
// into solids.
type Sketch struct {
	Regions []storage.Handle[Region]
}

// Solid is a volume bounded by one or more shells.
type Solid struct {
	Shells []storage.Handle[Shell]
}
