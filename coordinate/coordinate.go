// Package coordinate maps points between a surface's 3D local frame and its 2D
// surface parameterization.
//
// Project works on a point that is already local (the caller applied
// PointToLocal). GlobalToLocal and LocalToGlobal take the surface placement as a
// Frame, which transform.Transform3 satisfies, and do the frame change as well.
//
//	Cartesian2   (x, y, z) -> (x, y)
//	Polar2       (x, y, z) -> (r, φ)        r = √(x²+y²), φ = atan2(y, x)
//	Cylindrical2 (x, y, z) -> (r·φ, z)
//	Line2        (x, y, z) -> (z, ±r)       along the wire, distance from it
//
// Projectors are zero-sized values without state; any instance can be shared.
package coordinate

import "github.com/akmonengine/algebra"

// Frame is the placement of a surface in the global frame.
type Frame[T algebra.Scalar] interface {
	PointToLocal(p algebra.Point3[T]) algebra.Point3[T]
	PointToGlobal(p algebra.Point3[T]) algebra.Point3[T]
	Translation() algebra.Point3[T]
	Z() algebra.Vector3[T]
}
