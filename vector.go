package algebra

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a direction in a 2D surface-local frame.
type Vector2[T Scalar] [2]T

// Vector3 is a direction in 3D. Vectors are translation invariant: a transform
// only rotates them.
type Vector3[T Scalar] [3]T

// Point2 is a position on a surface. It shares the representation of Vector2.
type Point2[T Scalar] = Vector2[T]

// Point3 is a position in 3D. It shares the representation of Vector3 but a
// transform rotates and translates it.
type Point3[T Scalar] = Vector3[T]

// The vector operations run on mathgl: float32 instantiations on mgl32, every
// other Scalar on mgl64.
func single[T Scalar]() bool {
	_, ok := any(T(0)).(float32)
	return ok
}

func (v Vector2[T]) vec64() mgl64.Vec2 { return mgl64.Vec2{float64(v[0]), float64(v[1])} }
func (v Vector2[T]) vec32() mgl32.Vec2 { return mgl32.Vec2{float32(v[0]), float32(v[1])} }

func vector2From64[T Scalar](v mgl64.Vec2) Vector2[T] { return Vector2[T]{T(v[0]), T(v[1])} }
func vector2From32[T Scalar](v mgl32.Vec2) Vector2[T] { return Vector2[T]{T(v[0]), T(v[1])} }

func (v Vector3[T]) vec64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (v Vector3[T]) vec32() mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func vector3From64[T Scalar](v mgl64.Vec3) Vector3[T] { return Vector3[T]{T(v[0]), T(v[1]), T(v[2])} }
func vector3From32[T Scalar](v mgl32.Vec3) Vector3[T] { return Vector3[T]{T(v[0]), T(v[1]), T(v[2])} }

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	if single[T]() {
		return vector2From32[T](v.vec32().Add(o.vec32()))
	}
	return vector2From64[T](v.vec64().Add(o.vec64()))
}

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	if single[T]() {
		return vector2From32[T](v.vec32().Sub(o.vec32()))
	}
	return vector2From64[T](v.vec64().Sub(o.vec64()))
}

// Mul scales v by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	if single[T]() {
		return vector2From32[T](v.vec32().Mul(float32(s)))
	}
	return vector2From64[T](v.vec64().Mul(float64(s)))
}

func (v Vector2[T]) Dot(o Vector2[T]) T {
	if single[T]() {
		return T(v.vec32().Dot(o.vec32()))
	}
	return T(v.vec64().Dot(o.vec64()))
}

// Phi is the azimuthal angle atan2(y, x).
func (v Vector2[T]) Phi() T {
	return v.Vec3(0).Phi()
}

// Perp is the distance to the origin, identical to Norm in 2D.
func (v Vector2[T]) Perp() T {
	if single[T]() {
		return T(v.vec32().Len())
	}
	return T(v.vec64().Len())
}

func (v Vector2[T]) Norm() T {
	return v.Perp()
}

// Normalize returns v scaled to unit length. A zero vector yields NaN components.
func (v Vector2[T]) Normalize() Vector2[T] {
	if single[T]() {
		return vector2From32[T](v.vec32().Normalize())
	}
	return vector2From64[T](v.vec64().Normalize())
}

// Vec3 lifts v into 3D with the given third component.
func (v Vector2[T]) Vec3(z T) Vector3[T] {
	return Vector3[T]{v[0], v[1], z}
}

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	if single[T]() {
		return vector3From32[T](v.vec32().Add(o.vec32()))
	}
	return vector3From64[T](v.vec64().Add(o.vec64()))
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	if single[T]() {
		return vector3From32[T](v.vec32().Sub(o.vec32()))
	}
	return vector3From64[T](v.vec64().Sub(o.vec64()))
}

// Mul scales v by s.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	if single[T]() {
		return vector3From32[T](v.vec32().Mul(float32(s)))
	}
	return vector3From64[T](v.vec64().Mul(float64(s)))
}

func (v Vector3[T]) Dot(o Vector3[T]) T {
	if single[T]() {
		return T(v.vec32().Dot(o.vec32()))
	}
	return T(v.vec64().Dot(o.vec64()))
}

// Cross returns the right-handed cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	if single[T]() {
		return vector3From32[T](v.vec32().Cross(o.vec32()))
	}
	return vector3From64[T](v.vec64().Cross(o.vec64()))
}

// cylindrical returns the transverse distance and the azimuth.
func (v Vector3[T]) cylindrical() (rho, phi T) {
	if single[T]() {
		r, p, _ := mgl32.CartesianToCylindical(v.vec32())
		return T(r), T(p)
	}
	r, p, _ := mgl64.CartesianToCylindical(v.vec64())
	return T(r), T(p)
}

// Phi is the azimuthal angle of the transverse projection.
func (v Vector3[T]) Phi() T {
	_, phi := v.cylindrical()
	return phi
}

// Theta is the polar angle measured from the z axis. Unlike an acos of z/|v|
// it is 0 for the zero vector.
func (v Vector3[T]) Theta() T {
	return T(math.Atan2(float64(v.Perp()), float64(v[2])))
}

// Eta is the pseudorapidity, -ln(tan(theta/2)).
func (v Vector3[T]) Eta() T {
	return T(math.Atanh(float64(v[2]) / float64(v.Norm())))
}

// Perp is the transverse distance sqrt(x²+y²).
func (v Vector3[T]) Perp() T {
	rho, _ := v.cylindrical()
	return rho
}

func (v Vector3[T]) Norm() T {
	if single[T]() {
		return T(v.vec32().Len())
	}
	return T(v.vec64().Len())
}

// Normalize returns v scaled to unit length. A zero vector yields NaN components.
func (v Vector3[T]) Normalize() Vector3[T] {
	if single[T]() {
		return vector3From32[T](v.vec32().Normalize())
	}
	return vector3From64[T](v.vec64().Normalize())
}

// Vec2 drops the third component.
func (v Vector3[T]) Vec2() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}
