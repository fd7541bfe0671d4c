package mgl

import (
	"fmt"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and an orientation, the way scene graphs usually store a
// placement. It converts to and from Transform64.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose creates an identity pose
func NewPose() Pose {
	return Pose{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Transform builds the transform whose local axes are the rotated global axes
// and whose origin is the position. The rotation is normalized first.
func (p Pose) Transform(actor Actor64) Transform64 {
	r := p.Rotation.Normalize().Mat4()
	return transform.New(actor, FromVec3(p.Position), FromVec3(r.Col(2).Vec3()), FromVec3(r.Col(0).Vec3()))
}

// PoseOf reads the position and orientation back out of a transform.
func PoseOf(tr Transform64) Pose {
	return Pose{
		Position: Vec3(tr.Translation()),
		Rotation: mgl64.Mat4ToQuat(ToMat4(tr.Matrix())),
	}
}

// Vec3 converts an algebra vector to mathgl.
func Vec3(v algebra.Vector3[float64]) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// FromVec3 converts a mathgl vector to algebra.
func FromVec3(v mgl64.Vec3) algebra.Vector3[float64] {
	return algebra.Vector3[float64]{v[0], v[1], v[2]}
}

// ToMat4 copies a 4x4 matrix into a mgl64.Mat4. Other shapes panic with
// algebra.ErrShape.
func ToMat4(m Matrix64) mgl64.Mat4 {
	if m.Rows() != 4 || m.Cols() != 4 {
		panic(fmt.Errorf("mgl: Mat4 from %dx%d: %w", m.Rows(), m.Cols(), algebra.ErrShape))
	}
	var out mgl64.Mat4
	for i := range 4 {
		for j := range 4 {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// FromMat4 copies a mgl64.Mat4 into a new Matrix64.
func FromMat4(m mgl64.Mat4) Matrix64 {
	out := Storage64{}.New(4, 4)
	for i := range 4 {
		for j := range 4 {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}
