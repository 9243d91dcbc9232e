package geometry

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SurfaceGeometry describes a surface swept from a path: the u-coordinate
// runs along the path, the v-coordinate along a fixed vector. A plane is a
// line path swept along a vector.
type SurfaceGeometry struct {
	U Path
	V v3.Vec
}

// PointFromSurfaceCoords embeds a 2D point in surface coordinates into
// global 3D space.
func (s SurfaceGeometry) PointFromSurfaceCoords(point v2.Vec) v3.Vec {
	return s.U.PointFromPathCoords(point.X).Add(s.V.MulScalar(point.Y))
}
