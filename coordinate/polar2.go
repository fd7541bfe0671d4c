package coordinate

import (
	"math"

	"github.com/akmonengine/algebra"
)

// Polar2 parameterizes disc-like surfaces by (r, φ) in the local xy plane.
type Polar2[T algebra.Scalar] struct{}

// Project returns (perp, phi) of p; z is ignored.
func (Polar2[T]) Project(p algebra.Point3[T]) algebra.Point2[T] {
	return algebra.Point2[T]{p.Perp(), p.Phi()}
}

// ProjectPoint2 is Project for a point already on the surface plane.
func (Polar2[T]) ProjectPoint2(p algebra.Point2[T]) algebra.Point2[T] {
	return algebra.Point2[T]{p.Perp(), p.Phi()}
}

func (pl Polar2[T]) GlobalToLocal(f Frame[T], p algebra.Point3[T]) algebra.Point2[T] {
	return pl.Project(f.PointToLocal(p))
}

// LocalToGlobal places (r·cos φ, r·sin φ, 0) in the global frame.
func (Polar2[T]) LocalToGlobal(f Frame[T], p algebra.Point2[T]) algebra.Point3[T] {
	r, phi := float64(p[0]), float64(p[1])
	return f.PointToGlobal(algebra.Point3[T]{T(r * math.Cos(phi)), T(r * math.Sin(phi)), 0})
}
