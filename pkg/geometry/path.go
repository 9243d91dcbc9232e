package geometry

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Path is an infinite parametric curve in global coordinates. Paths have an
// infinite 1-D coordinate space even when, like circles, they connect back
// to themselves in global coordinates; a boundary or range is needed to
// select a finite piece of one.
type Path interface {
	// PointFromPathCoords returns the global position at path coordinate t.
	PointFromPathCoords(t float64) v3.Vec
}

// Line is a straight path through an origin with a direction. The direction
// is also the 1-D coordinate scale: t=1 lands one direction-length from the
// origin.
type Line struct {
	Origin    v3.Vec
	Direction v3.Vec
}

// PointFromPathCoords returns the global position at path coordinate t.
func (l Line) PointFromPathCoords(t float64) v3.Vec {
	return l.Origin.Add(l.Direction.MulScalar(t))
}

// XAxis returns the line along the global x-axis.
func XAxis() Line {
	return Line{Direction: v3.Vec{X: 1}}
}

// YAxis returns the line along the global y-axis.
func YAxis() Line {
	return Line{Direction: v3.Vec{Y: 1}}
}

// ZAxis returns the line along the global z-axis.
func ZAxis() Line {
	return Line{Direction: v3.Vec{Z: 1}}
}

// Circle is a circular path around a center. A and B are the two radius
// vectors spanning the circle's plane: the position at path coordinate t is
// center + A*cos(t) + B*sin(t), so the 1-D coordinate space is the angle in
// radians and repeats with period 2*pi.
type Circle struct {
	Center v3.Vec
	A      v3.Vec
	B      v3.Vec
}

// CircleFromCenterAndRadius constructs a circle in the global XY plane.
func CircleFromCenterAndRadius(center v3.Vec, radius float64) Circle {
	return Circle{
		Center: center,
		A:      v3.Vec{X: radius},
		B:      v3.Vec{Y: radius},
	}
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 {
	return c.A.Length()
}

// PointFromPathCoords returns the global position at path coordinate t.
func (c Circle) PointFromPathCoords(t float64) v3.Vec {
	return c.Center.
		Add(c.A.MulScalar(math.Cos(t))).
		Add(c.B.MulScalar(math.Sin(t)))
}
