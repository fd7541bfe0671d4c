// Package transform provides Transform3, the rigid rotation+translation that
// places a surface's local frame in the global frame.
//
// The transform is stored as the 4x4 homogeneous matrix
//
//	| x0 y0 z0 t0 |
//	| x1 y1 z1 t1 |
//	| x2 y2 z2 t2 |
//	|  0  0  0  1 |
//
// where the columns x, y, z are the local axes expressed in global coordinates
// and t is the local origin. Because the rotation block is orthonormal its
// inverse is its transpose, which is what PointToLocal and VectorToLocal use
// instead of a general matrix inverse.
package transform

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/matrix"
)

// Transform3 is immutable once built; reassign the whole value to change it.
type Transform3[T algebra.Scalar, M algebra.Matrix[T]] struct {
	actor matrix.Actor[T, M]
	data  M
}

// New builds the transform with origin t, local z axis z and local x axis x.
// The y axis is z × x. The inputs are used as given: the caller passes unit,
// orthogonal axes, otherwise the rotation block is not orthonormal.
func New[T algebra.Scalar, M algebra.Matrix[T]](actor matrix.Actor[T, M], t algebra.Point3[T], z, x algebra.Vector3[T]) Transform3[T, M] {
	y := z.Cross(x)

	data := actor.Zero(4, 4)
	actor.SetVector3(data, 0, 0, x)
	actor.SetVector3(data, 0, 1, y)
	actor.SetVector3(data, 0, 2, z)
	actor.SetVector3(data, 0, 3, t)
	data.Set(3, 3, 1)

	return Transform3[T, M]{actor: actor, data: data}
}

// FromTranslation builds a pure translation: identity rotation, origin t.
func FromTranslation[T algebra.Scalar, M algebra.Matrix[T]](actor matrix.Actor[T, M], t algebra.Point3[T]) Transform3[T, M] {
	data := actor.Identity(4, 4)
	actor.SetVector3(data, 0, 3, t)
	return Transform3[T, M]{actor: actor, data: data}
}

// Identity is the transform whose local frame is the global frame.
func Identity[T algebra.Scalar, M algebra.Matrix[T]](actor matrix.Actor[T, M]) Transform3[T, M] {
	return Transform3[T, M]{actor: actor, data: actor.Identity(4, 4)}
}

// FromMatrix copies the upper-left 4x4 block of m. Matrices smaller than 4x4
// panic with algebra.ErrShape.
func FromMatrix[T algebra.Scalar, M algebra.Matrix[T]](actor matrix.Actor[T, M], m M) Transform3[T, M] {
	// Block checks the shape.
	return Transform3[T, M]{actor: actor, data: actor.Copy(actor.Block(m, 0, 0, 4, 4))}
}

// FromArray reads 16 entries in row-major order: a[4*row+col].
func FromArray[T algebra.Scalar, M algebra.Matrix[T]](actor matrix.Actor[T, M], a [16]T) Transform3[T, M] {
	data := actor.Zero(4, 4)
	for i := range 4 {
		for j := range 4 {
			data.Set(i, j, a[4*i+j])
		}
	}
	return Transform3[T, M]{actor: actor, data: data}
}

// Rotation returns a copy of the upper-left 3x3 block.
func (tr Transform3[T, M]) Rotation() M {
	return tr.actor.Copy(tr.actor.Block(tr.data, 0, 0, 3, 3))
}

// Translation returns the local origin in global coordinates.
func (tr Transform3[T, M]) Translation() algebra.Point3[T] {
	return tr.actor.Vector3(tr.data, 0, 3)
}

// Matrix returns a copy of the 4x4 homogeneous matrix.
func (tr Transform3[T, M]) Matrix() M {
	return tr.actor.Copy(tr.data)
}

// X is the local x axis in global coordinates.
func (tr Transform3[T, M]) X() algebra.Vector3[T] {
	return tr.actor.Vector3(tr.data, 0, 0)
}

// Y is the local y axis in global coordinates.
func (tr Transform3[T, M]) Y() algebra.Vector3[T] {
	return tr.actor.Vector3(tr.data, 0, 1)
}

// Z is the local z axis in global coordinates.
func (tr Transform3[T, M]) Z() algebra.Vector3[T] {
	return tr.actor.Vector3(tr.data, 0, 2)
}

// PointToGlobal returns R·p + t.
func (tr Transform3[T, M]) PointToGlobal(p algebra.Point3[T]) algebra.Point3[T] {
	return tr.VectorToGlobal(p).Add(tr.Translation())
}

// PointToLocal returns Rᵀ·(p - t).
func (tr Transform3[T, M]) PointToLocal(p algebra.Point3[T]) algebra.Point3[T] {
	return tr.VectorToLocal(p.Sub(tr.Translation()))
}

// VectorToGlobal returns R·v. Vectors ignore the translation.
func (tr Transform3[T, M]) VectorToGlobal(v algebra.Vector3[T]) algebra.Vector3[T] {
	m := tr.data
	var out algebra.Vector3[T]
	for i := range 3 {
		out[i] = m.At(i, 0)*v[0] + m.At(i, 1)*v[1] + m.At(i, 2)*v[2]
	}
	return out
}

// VectorToLocal returns Rᵀ·v.
func (tr Transform3[T, M]) VectorToLocal(v algebra.Vector3[T]) algebra.Vector3[T] {
	m := tr.data
	var out algebra.Vector3[T]
	for j := range 3 {
		out[j] = m.At(0, j)*v[0] + m.At(1, j)*v[1] + m.At(2, j)*v[2]
	}
	return out
}

// Equal reports whether both 4x4 matrices are identical entry by entry.
func (tr Transform3[T, M]) Equal(o Transform3[T, M]) bool {
	return tr.actor.Equal(tr.data, o.data)
}

// Compose returns tr·o: the transform applying o first, then tr. With o placing
// a surface inside a module and tr placing the module in the world, the result
// places the surface in the world.
func (tr Transform3[T, M]) Compose(o Transform3[T, M]) Transform3[T, M] {
	return Transform3[T, M]{actor: tr.actor, data: tr.actor.Mul(tr.data, o.data)}
}

// Inverse returns the transform mapping global to local, [Rᵀ | -Rᵀ·t].
func (tr Transform3[T, M]) Inverse() Transform3[T, M] {
	data := tr.actor.Identity(4, 4)
	for i := range 3 {
		for j := range 3 {
			data.Set(i, j, tr.data.At(j, i))
		}
	}
	tr.actor.SetVector3(data, 0, 3, tr.VectorToLocal(tr.Translation()).Mul(-1))
	return Transform3[T, M]{actor: tr.actor, data: data}
}

// MatrixInverse inverts the full homogeneous matrix with the actor's 4x4
// inverse strategy. It does not assume an orthonormal rotation.
func (tr Transform3[T, M]) MatrixInverse() M {
	return tr.actor.Inverse(tr.data)
}

// Actor returns the matrix actor the transform was built with.
func (tr Transform3[T, M]) Actor() matrix.Actor[T, M] {
	return tr.actor
}
