package coordinate

import (
	"math"

	"github.com/akmonengine/algebra"
)

// Cylindrical2 parameterizes cylinder surfaces coaxial with the local z axis by
// the arc length r·φ and the height z.
type Cylindrical2[T algebra.Scalar] struct{}

func (Cylindrical2[T]) Project(p algebra.Point3[T]) algebra.Point2[T] {
	return algebra.Point2[T]{p.Perp() * p.Phi(), p[2]}
}

func (c Cylindrical2[T]) GlobalToLocal(f Frame[T], p algebra.Point3[T]) algebra.Point2[T] {
	return c.Project(f.PointToLocal(p))
}

// LocalToGlobal places the point at arc length p[0] and height p[1] on the
// cylinder of the given radius.
func (Cylindrical2[T]) LocalToGlobal(f Frame[T], radius T, p algebra.Point2[T]) algebra.Point3[T] {
	r := float64(radius)
	phi := float64(p[0]) / r
	return f.PointToGlobal(algebra.Point3[T]{T(r * math.Cos(phi)), T(r * math.Sin(phi)), p[1]})
}
