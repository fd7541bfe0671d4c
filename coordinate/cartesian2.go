package coordinate

import "github.com/akmonengine/algebra"

// Cartesian2 parameterizes planar surfaces by their local (x, y).
type Cartesian2[T algebra.Scalar] struct{}

// Project drops the local z component.
func (Cartesian2[T]) Project(p algebra.Point3[T]) algebra.Point2[T] {
	return algebra.Point2[T]{p[0], p[1]}
}

func (c Cartesian2[T]) GlobalToLocal(f Frame[T], p algebra.Point3[T]) algebra.Point2[T] {
	return c.Project(f.PointToLocal(p))
}

// LocalToGlobal places (x, y, 0) in the global frame.
func (Cartesian2[T]) LocalToGlobal(f Frame[T], p algebra.Point2[T]) algebra.Point3[T] {
	return f.PointToGlobal(algebra.Point3[T]{p[0], p[1], 0})
}
