// Package conformance holds the behaviour every storage backend must share.
// Backend test files instantiate Backend for their element types and call Run.
package conformance

import (
	"math"
	"testing"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backend describes the backend under test.
type Backend[T algebra.Scalar, M algebra.Matrix[T]] struct {
	Actor matrix.Actor[T, M]

	// BlockViews is true when blocks alias their parent.
	BlockViews bool

	// Epsilon bounds results that only go through a couple of roundings,
	// IsClose results of longer computations (inverses, products, round trips).
	Epsilon T
	IsClose T
}

// Float64 returns the tolerances used for double precision backends.
func Float64[M algebra.Matrix[float64]](actor matrix.Actor[float64, M], views bool) Backend[float64, M] {
	return Backend[float64, M]{Actor: actor, BlockViews: views, Epsilon: 1e-12, IsClose: 1e-9}
}

// Float32 returns the tolerances used for single precision backends.
func Float32[M algebra.Matrix[float32]](actor matrix.Actor[float32, M], views bool) Backend[float32, M] {
	return Backend[float32, M]{Actor: actor, BlockViews: views, Epsilon: 1e-6, IsClose: 1e-3}
}

// Run executes the whole suite as subtests of t.
func Run[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	t.Run("Matrix64", func(t *testing.T) { testMatrix64(t, b) })
	t.Run("Matrix22", func(t *testing.T) { testMatrix22(t, b) })
	t.Run("DeterminantOfTranspose", func(t *testing.T) { testDeterminantOfTranspose(t, b) })
	t.Run("InverseProduct", func(t *testing.T) { testInverseProduct(t, b) })
	t.Run("CofactorFallback", func(t *testing.T) { testCofactorFallback(t, b) })
	t.Run("Transform3", func(t *testing.T) { testTransform3(t, b) })
	t.Run("GlobalTransformations", func(t *testing.T) { testGlobalTransformations(t, b) })
	t.Run("TransformInverse", func(t *testing.T) { testTransformInverse(t, b) })
	t.Run("LocalTransformations", func(t *testing.T) { testLocalTransformations(t, b) })
}

// fromRows fills a new matrix of the backend row by row.
func fromRows[T algebra.Scalar, M algebra.Matrix[T]](b Backend[T, M], rows ...[]float64) M {
	m := b.Actor.Zero(len(rows), len(rows[0]))
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, T(v))
		}
	}
	return m
}

func elementNear[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, m M, row, col int, want float64, delta T) {
	t.Helper()
	assert.InDeltaf(t, want, float64(m.At(row, col)), float64(delta), "element (%d,%d)", row, col)
}

func vec3Near[T algebra.Scalar](t *testing.T, want, got algebra.Vector3[T], delta T) {
	t.Helper()
	for i := range 3 {
		assert.InDeltaf(t, float64(want[i]), float64(got[i]), float64(delta), "component %d of %v vs %v", i, want, got)
	}
}

func identityNear[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, m M, delta T) {
	t.Helper()
	for i := range m.Rows() {
		for j := range m.Cols() {
			want := 0.0
			if i == j {
				want = 1
			}
			elementNear[T, M](t, m, i, j, want, delta)
		}
	}
}

// axes returns the reference frame used by the transform cases.
func axes[T algebra.Scalar]() (t algebra.Point3[T], z, x, y algebra.Vector3[T]) {
	z = algebra.Vector3[T]{3, 2, 1}.Normalize()
	x = algebra.Vector3[T]{2, -3, 0}.Normalize()
	return algebra.Point3[T]{2, 3, 4}, z, x, z.Cross(x)
}

func testMatrix64[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	const rows, cols = 6, 4
	a := b.Actor
	m := a.Zero(rows, cols)
	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())

	for i := range rows {
		for j := range cols {
			a.SetElement(m, i, j, T(0.5*float64(i)+float64(j)))
		}
	}
	for i := range rows {
		for j := range cols {
			elementNear[T, M](t, m, i, j, 0.5*float64(i)+float64(j), b.Epsilon)
		}
	}

	a.SetZero(m)
	for i := range rows {
		for j := range cols {
			elementNear[T, M](t, m, i, j, 0, b.Epsilon)
		}
	}

	a.SetIdentity(m)
	identityNear[T, M](t, m, b.Epsilon)

	b32 := a.Block(m, 1, 1, 3, 2)
	require.Equal(t, 3, b32.Rows())
	require.Equal(t, 2, b32.Cols())
	elementNear[T, M](t, b32, 0, 0, 1, b.Epsilon)
	elementNear[T, M](t, b32, 1, 1, 1, b.Epsilon)
	elementNear[T, M](t, b32, 2, 0, 0, b.Epsilon)

	a.SetElement(b32, 0, 0, 2)
	elementNear[T, M](t, b32, 0, 0, 2, b.Epsilon)
	if b.BlockViews {
		elementNear[T, M](t, m, 1, 1, 2, b.Epsilon)
	} else {
		elementNear[T, M](t, m, 1, 1, 1, b.Epsilon)
	}
}

func testMatrix22[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor

	m22 := fromRows(b, []float64{4, 3}, []float64{12, 13})
	assert.InDelta(t, 16, float64(a.Determinant(m22)), float64(b.IsClose))

	m22Inv := a.Inverse(m22)
	elementNear[T, M](t, m22Inv, 0, 0, 13/16., b.IsClose)
	elementNear[T, M](t, m22Inv, 0, 1, -3/16., b.IsClose)
	elementNear[T, M](t, m22Inv, 1, 0, -12/16., b.IsClose)
	elementNear[T, M](t, m22Inv, 1, 1, 4/16., b.IsClose)

	m33 := fromRows(b, []float64{1, 5, 7}, []float64{3, 5, 6}, []float64{2, 8, 9})
	assert.InDelta(t, 20, float64(a.Determinant(m33)), float64(b.IsClose))

	m33Inv := a.Inverse(m33)
	want33 := [3][3]float64{
		{-3 / 20., 11 / 20., -5 / 20.},
		{-15 / 20., -5 / 20., 15 / 20.},
		{14 / 20., 2 / 20., -10 / 20.},
	}
	for i := range 3 {
		for j := range 3 {
			elementNear[T, M](t, m33Inv, i, j, want33[i][j], b.IsClose)
		}
	}

	m23 := a.Zero(2, 3)
	for j, v := range []T{2, 3, 4} {
		a.SetElement(m23, 0, j, a.Element(m23, 0, j)+v)
	}
	for j, v := range []T{5, 6, 7} {
		a.SetElement(m23, 1, j, a.Element(m23, 1, j)+v)
	}

	m23 = a.Scale(m23, 2)
	want23 := [2][3]float64{{4, 6, 8}, {10, 12, 14}}
	for i := range 2 {
		for j := range 3 {
			elementNear[T, M](t, m23, i, j, want23[i][j], b.Epsilon)
		}
	}

	m32 := a.Transpose(m23)
	m32 = a.Add(m32, a.Identity(3, 2))
	m32 = a.Scale(m32, 2)
	want32 := [3][2]float64{{10, 20}, {12, 26}, {16, 28}}
	for i := range 3 {
		for j := range 2 {
			elementNear[T, M](t, m32, i, j, want32[i][j], b.Epsilon)
		}
	}

	m22 = a.MulChain(m22Inv, m23, m33Inv, m32)
	require.Equal(t, 2, m22.Rows())
	require.Equal(t, 2, m22.Cols())
	elementNear[T, M](t, m22, 0, 0, 6.225, b.IsClose)
	elementNear[T, M](t, m22, 0, 1, 14.675, b.IsClose)
	elementNear[T, M](t, m22, 1, 0, -3.3, b.IsClose)
	elementNear[T, M](t, m22, 1, 1, -7.9, b.IsClose)

	diff := a.Sub(m32, m32)
	for i := range 3 {
		for j := range 2 {
			elementNear[T, M](t, diff, i, j, 0, b.Epsilon)
		}
	}
}

var square = map[int][][]float64{
	2: {{4, 3}, {12, 13}},
	3: {{1, 5, 7}, {3, 5, 6}, {2, 8, 9}},
	4: {
		{2, -1, 0, 3},
		{1, 4, 2, -2},
		{0, 3, 5, 1},
		{-1, 2, 1, 6},
	},
}

func testDeterminantOfTranspose[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	for n := 2; n <= 4; n++ {
		m := fromRows(b, square[n]...)
		det := float64(a.Determinant(m))
		assert.NotZero(t, det)
		assert.InDeltaf(t, det, float64(a.Determinant(a.Transpose(m))), float64(b.IsClose), "%dx%d", n, n)
	}
}

func testInverseProduct[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	for n := 2; n <= 4; n++ {
		m := fromRows(b, square[n]...)
		inv := a.Inverse(m)
		identityNear[T, M](t, a.Mul(m, inv), b.IsClose)
		identityNear[T, M](t, a.Mul(inv, m), b.IsClose)
	}

	one := fromRows(b, []float64{4})
	assert.InDelta(t, 4, float64(a.Determinant(one)), float64(b.Epsilon))
	elementNear[T, M](t, a.Inverse(one), 0, 0, 0.25, b.Epsilon)
}

// testCofactorFallback uses a 5x5 matrix, a size only the expansion handles in
// the default preset. m = L·U with unit L, so det(m) = 2·1·3·1·2.
func testCofactorFallback[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	l := fromRows(b,
		[]float64{1, 0, 0, 0, 0},
		[]float64{1, 1, 0, 0, 0},
		[]float64{0, 2, 1, 0, 0},
		[]float64{1, 0, 1, 1, 0},
		[]float64{0, 1, 0, 2, 1},
	)
	u := fromRows(b,
		[]float64{2, 1, 0, 1, 0},
		[]float64{0, 1, 1, 0, 2},
		[]float64{0, 0, 3, 1, 1},
		[]float64{0, 0, 0, 1, 1},
		[]float64{0, 0, 0, 0, 2},
	)
	m := a.Mul(l, u)

	assert.InDelta(t, 12, float64(a.Determinant(m)), float64(b.IsClose))
	identityNear[T, M](t, a.Mul(m, a.Inverse(m)), b.IsClose)
}

func testTransform3[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	tr, z, x, y := axes[T]()

	trf1 := transform.New(a, tr, z, x)
	assert.True(t, trf1.Equal(trf1))
	trf2 := trf1

	checkRotation := func(rot M, x, y, z algebra.Vector3[T]) {
		t.Helper()
		require.Equal(t, 3, rot.Rows())
		require.Equal(t, 3, rot.Cols())
		for i := range 3 {
			elementNear[T, M](t, rot, i, 0, float64(x[i]), b.Epsilon)
			elementNear[T, M](t, rot, i, 1, float64(y[i]), b.Epsilon)
			elementNear[T, M](t, rot, i, 2, float64(z[i]), b.Epsilon)
		}
	}

	checkRotation(trf2.Rotation(), x, y, z)
	vec3Near(t, algebra.Vector3[T]{2, 3, 4}, trf2.Translation(), b.Epsilon)
	vec3Near(t, x, trf2.X(), b.Epsilon)
	vec3Near(t, y, trf2.Y(), b.Epsilon)
	vec3Near(t, z, trf2.Z(), b.Epsilon)

	m44 := trf2.Matrix()
	require.Equal(t, 4, m44.Rows())
	elementNear[T, M](t, m44, 3, 3, 1, b.Epsilon)
	for j := range 3 {
		elementNear[T, M](t, m44, 3, j, 0, b.Epsilon)
	}
	vec3Near(t, x, a.Vector3(m44, 0, 0), b.Epsilon)
	vec3Near(t, y, a.Vector3(m44, 0, 1), b.Epsilon)
	vec3Near(t, z, a.Vector3(m44, 0, 2), b.Epsilon)

	trfm := transform.FromMatrix(a, m44)
	assert.True(t, trfm.Equal(trf2))
	checkRotation(trfm.Rotation(), x, y, z)
	vec3Near(t, algebra.Vector3[T]{2, 3, 4}, trfm.Translation(), b.Epsilon)

	// Writing to a returned matrix never changes the transform.
	a.SetZero(m44)
	a.SetZero(trf2.Rotation())
	checkRotation(trf2.Rotation(), x, y, z)

	trfa := transform.FromArray(a, [16]T{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
	})
	identityNear[T, M](t, trfa.Rotation(), b.Epsilon)
	vec3Near(t, algebra.Vector3[T]{}, trfa.Translation(), b.Epsilon)

	shifted := transform.FromArray(a, [16]T{
		1, 0, 0, 7,
		0, 1, 0, 8,
		0, 0, 1, 9,
		0, 0, 0, 1,
	})
	vec3Near(t, algebra.Vector3[T]{7, 8, 9}, shifted.Translation(), b.Epsilon)
	assert.True(t, shifted.Equal(transform.FromTranslation(a, algebra.Point3[T]{7, 8, 9})))

	assert.Panics(t, func() { transform.FromMatrix(a, a.Zero(3, 3)) })
}

func testGlobalTransformations[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	tr, z, x, _ := axes[T]()
	trf := transform.New(a, tr, z, x)

	vec3Near(t, tr, trf.PointToGlobal(algebra.Point3[T]{}), b.Epsilon)

	lpoint := algebra.Point3[T]{3, 4, 5}
	vec3Near(t, lpoint, trf.PointToLocal(trf.PointToGlobal(lpoint)), b.IsClose)

	ttrf := transform.FromTranslation(a, tr)
	gvector := algebra.Vector3[T]{1, 1, 1}
	vec3Near(t, gvector, ttrf.VectorToLocal(gvector), b.IsClose)
	vec3Near(t, gvector, ttrf.VectorToGlobal(gvector), b.IsClose)

	lvector := algebra.Vector3[T]{7, 8, 9}
	vec3Near(t, lvector, trf.VectorToGlobal(trf.VectorToLocal(lvector)), b.IsClose)

	// Local axes map to the transform's columns.
	vec3Near(t, x, trf.VectorToGlobal(algebra.Vector3[T]{1, 0, 0}), b.Epsilon)
	vec3Near(t, z, trf.VectorToGlobal(algebra.Vector3[T]{0, 0, 1}), b.Epsilon)

	id := transform.Identity(a)
	vec3Near(t, lpoint, id.PointToGlobal(lpoint), b.Epsilon)
}

func testTransformInverse[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	a := b.Actor
	tr, z, x, _ := axes[T]()
	trf := transform.New(a, tr, z, x)
	inv := trf.Inverse()

	p := algebra.Point3[T]{-1, 5, 2}
	vec3Near(t, trf.PointToLocal(p), inv.PointToGlobal(p), b.IsClose)
	vec3Near(t, trf.PointToGlobal(p), inv.PointToLocal(p), b.IsClose)

	assert.True(t, a.ApproxEqual(inv.Matrix(), trf.MatrixInverse(), b.IsClose))
	identityNear[T, M](t, trf.Compose(inv).Matrix(), b.IsClose)

	// Compose applies the right operand first.
	shift := transform.FromTranslation(a, algebra.Point3[T]{1, 0, 0})
	vec3Near(t, trf.PointToGlobal(algebra.Point3[T]{1, 0, 0}), trf.Compose(shift).PointToGlobal(algebra.Point3[T]{}), b.IsClose)
}

func testLocalTransformations[T algebra.Scalar, M algebra.Matrix[T]](t *testing.T, b Backend[T, M]) {
	p2 := algebra.Point2[T]{3, 3}
	p3 := algebra.Point3[T]{3, 3, 5}

	cart := coordinate.Cartesian2[T]{}.Project(p3)
	assert.InDelta(t, float64(p2[0]), float64(cart[0]), float64(b.Epsilon))
	assert.InDelta(t, float64(p2[1]), float64(cart[1]), float64(b.Epsilon))

	pol2 := coordinate.Polar2[T]{}
	polFrom2 := pol2.ProjectPoint2(p2)
	polFrom3 := pol2.Project(p3)
	assert.InDelta(t, math.Sqrt(18), float64(polFrom2[0]), float64(b.IsClose))
	assert.InDelta(t, math.Pi/4, float64(polFrom2[1]), float64(b.IsClose))
	assert.InDelta(t, float64(polFrom2[0]), float64(polFrom3[0]), float64(b.Epsilon))
	assert.InDelta(t, float64(polFrom2[1]), float64(polFrom3[1]), float64(b.Epsilon))

	tr, z, x, _ := axes[T]()
	trf := transform.New(b.Actor, tr, z, x)

	local := algebra.Point2[T]{1.5, -0.5}
	g := coordinate.Cartesian2[T]{}.LocalToGlobal(trf, local)
	back := coordinate.Cartesian2[T]{}.GlobalToLocal(trf, g)
	assert.InDelta(t, float64(local[0]), float64(back[0]), float64(b.IsClose))
	assert.InDelta(t, float64(local[1]), float64(back[1]), float64(b.IsClose))

	polar := algebra.Point2[T]{2, 1}
	back = pol2.GlobalToLocal(trf, pol2.LocalToGlobal(trf, polar))
	assert.InDelta(t, float64(polar[0]), float64(back[0]), float64(b.IsClose))
	assert.InDelta(t, float64(polar[1]), float64(back[1]), float64(b.IsClose))
}
