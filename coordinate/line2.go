package coordinate

import "github.com/akmonengine/algebra"

// Line2 parameterizes wire surfaces whose wire runs along the local z axis.
// The first coordinate is the position along the wire, the second the distance
// from it.
//
// The distance is signed with a reference direction d, normally the track
// direction: with r = z × d, points on the side of +r are positive and points
// on the side of -r negative. Project has no reference direction and returns
// the unsigned distance.
type Line2[T algebra.Scalar] struct{}

// Project returns (z, perp) of a local point.
func (Line2[T]) Project(p algebra.Point3[T]) algebra.Point2[T] {
	return algebra.Point2[T]{p[2], p.Perp()}
}

// GlobalToLocal returns the position along the wire and the signed distance
// from it of global point p.
func (Line2[T]) GlobalToLocal(f Frame[T], p algebra.Point3[T], d algebra.Vector3[T]) algebra.Point2[T] {
	local := f.PointToLocal(p)
	r := f.Z().Cross(d)

	sign := T(1)
	if r.Dot(f.Translation().Sub(p)) > 0 {
		sign = -1
	}
	return algebra.Point2[T]{local[2], sign * local.Perp()}
}

// LocalToGlobal inverts GlobalToLocal for the same reference direction.
func (Line2[T]) LocalToGlobal(f Frame[T], p algebra.Point2[T], d algebra.Vector3[T]) algebra.Point3[T] {
	r := f.Z().Cross(d).Normalize()
	onWire := f.PointToGlobal(algebra.Point3[T]{0, 0, p[0]})
	return onWire.Add(r.Mul(p[1]))
}
