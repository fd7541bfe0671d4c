package mgl

import (
	"errors"
	"math"
	"testing"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/internal/conformance"
	"github.com/akmonengine/algebra/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec3Near(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-12, "component %d of %v", i, got)
	}
}

func TestConformance(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		conformance.Run(t, conformance.Float64(NewActor64(), false))
	})
	t.Run("float32", func(t *testing.T) {
		conformance.Run(t, conformance.Float32(NewActor32(), false))
	})
}

func TestNewIsZeroed(t *testing.T) {
	s := Storage64{}
	// Products allocate and release temporaries from the mathgl pool.
	for range 4 {
		m := FromMat4(mgl64.Ident4().Mul(3))
		m.MatMxN().MulMxN(m.MatMxN(), m.MatMxN())
	}
	m := s.New(4, 4)
	for i := range 4 {
		for j := range 4 {
			assert.Zero(t, m.At(i, j))
		}
	}
}

func TestMat4RoundTrip(t *testing.T) {
	src := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DZ(math.Pi / 6))
	m := FromMat4(src)
	assert.Equal(t, 1.0, m.At(0, 3))
	assert.Equal(t, 3.0, m.At(2, 3))
	assert.True(t, src.ApproxEqual(ToMat4(m)))
}

func TestToMat4Shape(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, algebra.ErrShape))
	}()
	ToMat4(Storage64{}.New(3, 4))
}

func TestActorMatchesMat4(t *testing.T) {
	src := mgl64.Mat4{
		2, 1, 0, -1,
		-1, 4, 3, 2,
		0, 2, 5, 1,
		3, -2, 1, 6,
	}
	a := NewActor64()
	m := FromMat4(src)

	assert.InDelta(t, src.Det(), a.Determinant(m), 1e-9)
	inv := ToMat4(a.Inverse(m))
	for i, want := range src.Inv() {
		assert.InDelta(t, want, inv[i], 1e-9, "entry %d", i)
	}
	assert.True(t, src.Transpose().ApproxEqual(ToMat4(a.Transpose(m))))
	assert.True(t, src.Mul4(src).ApproxEqual(ToMat4(a.Mul(m, m))))
}

func TestPoseIdentity(t *testing.T) {
	a := NewActor64()
	tr := NewPose().Transform(a)
	assert.True(t, tr.Equal(transform.Identity(a)))
	assert.Equal(t, algebra.Point3[float64]{}, tr.Translation())
	assert.Equal(t, algebra.Vector3[float64]{1, 0, 0}, tr.X())
	assert.Equal(t, algebra.Vector3[float64]{0, 0, 1}, tr.Z())
}

func TestPoseTransform(t *testing.T) {
	pose := Pose{
		Position: mgl64.Vec3{1, 2, 3},
		Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	}
	tr := pose.Transform(NewActor64())

	// The quarter turn leaves round-off (~2e-16) where exact zeros are
	// expected, so compare with an absolute tolerance.
	vec3Near(t, mgl64.Vec3{0, 1, 0}, Vec3(tr.X()))
	vec3Near(t, mgl64.Vec3{-1, 0, 0}, Vec3(tr.Y()))
	vec3Near(t, mgl64.Vec3{0, 0, 1}, Vec3(tr.Z()))

	// The transform agrees with rotating then translating through mathgl.
	local := mgl64.Vec3{0.5, -2, 4}
	want := pose.Rotation.Rotate(local).Add(pose.Position)
	got := Vec3(tr.PointToGlobal(FromVec3(local)))
	vec3Near(t, want, got)

	back := PoseOf(tr)
	vec3Near(t, pose.Position, back.Position)
	assert.True(t, back.Rotation.OrientationEqualThreshold(pose.Rotation, 1e-9))
}

func TestStorage32(t *testing.T) {
	s := Storage32{}
	a := NewActor32()
	m := a.Identity(2, 3)
	sum := s.Add(m, s.Scale(m, 2))
	assert.Equal(t, float32(3), sum.At(1, 1))
	assert.Equal(t, float32(0), sum.At(1, 2))
	tp := s.Transpose(sum)
	assert.Equal(t, 3, tp.Rows())
	assert.Equal(t, 2, tp.Cols())
	assert.Equal(t, Vec3x32(algebra.Vector3[float32]{1, 2, 3})[2], float32(3))
}
