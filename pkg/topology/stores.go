package topology

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/kerf/pkg/geometry"
	"github.com/chazu/kerf/pkg/storage"
)

// Objects is the registry of object stores, one per object type. All
// construction inserts into these stores and hands out handles.
type Objects struct {
	Curves   *storage.Store[Curve]
	Cycles   *storage.Store[Cycle]
	Edges    *storage.Store[Edge]
	Faces    *storage.Store[Face]
	Regions  *storage.Store[Region]
	Shells   *storage.Store[Shell]
	Sketches *storage.Store[Sketch]
	Solids   *storage.Store[Solid]
	Surfaces *SurfaceStore
	Vertices *storage.Store[Vertex]
}

// NewObjects creates a fresh registry with empty stores and the base planes
// seeded into the surface store.
func NewObjects() *Objects {
	return &Objects{
		Curves:   storage.New[Curve](),
		Cycles:   storage.New[Cycle](),
		Edges:    storage.New[Edge](),
		Faces:    storage.New[Face](),
		Regions:  storage.New[Region](),
		Shells:   storage.New[Shell](),
		Sketches: storage.New[Sketch](),
		Solids:   storage.New[Solid](),
		Surfaces: newSurfaceStore(),
		Vertices: storage.New[Vertex](),
	}
}

// SurfaceStore is the store for surfaces, with the three base planes
// pre-inserted. The planes are shared: every access returns a handle to the
// same object, so faces on the same base plane reference identical
// surfaces.
type SurfaceStore struct {
	store *storage.Store[Surface]

	xyPlane storage.Handle[Surface]
	xzPlane storage.Handle[Surface]
	yzPlane storage.Handle[Surface]
}

func newSurfaceStore() *SurfaceStore {
	store := storage.New[Surface]()

	seed := func(u geometry.Line, v v3.Vec) storage.Handle[Surface] {
		handle := store.Reserve()
		store.Insert(handle, Surface{
			Geometry: geometry.SurfaceGeometry{U: u, V: v},
		})
		return handle
	}

	return &SurfaceStore{
		store:   store,
		xyPlane: seed(geometry.XAxis(), v3.Vec{Y: 1}),
		xzPlane: seed(geometry.XAxis(), v3.Vec{Z: 1}),
		yzPlane: seed(geometry.YAxis(), v3.Vec{Z: 1}),
	}
}

// Reserve allocates an empty slot for a surface.
func (s *SurfaceStore) Reserve() storage.Handle[Surface] {
	return s.store.Reserve()
}

// Insert fills a previously reserved surface slot.
func (s *SurfaceStore) Insert(handle storage.Handle[Surface], surface Surface) {
	s.store.Insert(handle, surface)
}

// XYPlane returns the shared xy-plane.
func (s *SurfaceStore) XYPlane() storage.Handle[Surface] {
	return s.xyPlane
}

// XZPlane returns the shared xz-plane.
func (s *SurfaceStore) XZPlane() storage.Handle[Surface] {
	return s.xzPlane
}

// YZPlane returns the shared yz-plane.
func (s *SurfaceStore) YZPlane() storage.Handle[Surface] {
	return s.yzPlane
}
