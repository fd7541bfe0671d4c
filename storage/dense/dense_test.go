package dense

import (
	"math"
	"testing"

	"github.com/akmonengine/algebra/internal/conformance"
	"github.com/akmonengine/algebra/matrix"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestConformance(t *testing.T) {
	conformance.Run(t, conformance.Float64(NewActor(), true))
}

func TestConformanceLU(t *testing.T) {
	a := NewActor(
		matrix.WithDeterminant[float64, Matrix](LU()),
		matrix.WithInverse[float64, Matrix](LU()),
	)
	conformance.Run(t, conformance.Float64(a, true))
}

// hilbertLike returns a well-conditioned n x n matrix with a dominant diagonal.
func hilbertLike(n int) Matrix {
	m := Storage{}.New(n, n)
	for i := range n {
		for j := range n {
			v := 1 / float64(i+j+1)
			if i == j {
				v += float64(n)
			}
			m.Set(i, j, v)
		}
	}
	return m
}

func TestStrategiesAgreeWithGonum(t *testing.T) {
	a := NewActor()
	for n := 1; n <= 7; n++ {
		m := hilbertLike(n)
		want := mat.Det(m.Dense())

		assert.InDeltaf(t, want, a.Determinant(m), 1e-9*math.Abs(want), "default %dx%d", n, n)
		assert.InDeltaf(t, want, LU().Determinant(m), 1e-9*math.Abs(want), "lu %dx%d", n, n)

		var inv mat.Dense
		assert.NoError(t, inv.Inverse(m.Dense()))
		assert.Truef(t, mat.EqualApprox(&inv, a.Inverse(m).Dense(), 1e-9), "inverse %dx%d", n, n)
	}
}

func TestLUSizes(t *testing.T) {
	lu := LU(5, 6)
	assert.True(t, lu.Handles(5))
	assert.False(t, lu.Handles(4))
	assert.False(t, LU().Handles(0))
	assert.True(t, LU().Handles(12))

	a := NewActor(matrix.WithDeterminant[float64, Matrix](
		matrix.HardCoded[float64, Matrix](Storage{}),
		lu,
		matrix.Cofactor[float64, Matrix](Storage{}),
	))
	m := hilbertLike(6)
	assert.InDelta(t, mat.Det(m.Dense()), a.Determinant(m), 1e-6)
}

func TestLUSingular(t *testing.T) {
	m := FromRows([]float64{1, 2}, []float64{2, 4})
	assert.Zero(t, LU().Determinant(m))
	inv := LU().Inverse(m)
	assert.True(t, math.IsInf(inv.At(0, 0), 1))
}

func TestBlockIsGonumView(t *testing.T) {
	a := NewActor()
	m := a.Identity(4, 4)
	blk := a.Block(m, 2, 1, 2, 3)
	blk.Set(1, 2, 7)
	assert.Equal(t, 7.0, m.At(3, 3))

	r, c := blk.Dense().Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestArithmeticViaGonum(t *testing.T) {
	s := Storage{}
	x := FromRows([]float64{1, 2}, []float64{3, 4})
	y := FromRows([]float64{0, 1}, []float64{1, 0})

	assert.True(t, mat.Equal(s.Add(x, y).Dense(), mat.NewDense(2, 2, []float64{1, 3, 4, 4})))
	assert.True(t, mat.Equal(s.Scale(x, 0.5).Dense(), mat.NewDense(2, 2, []float64{0.5, 1, 1.5, 2})))
	assert.True(t, mat.Equal(s.Mul(x, y).Dense(), mat.NewDense(2, 2, []float64{2, 1, 4, 3})))
	assert.True(t, mat.Equal(s.Transpose(x).Dense(), mat.NewDense(2, 2, []float64{1, 3, 2, 4})))

	// Transpose copies: it never aliases its input.
	tp := s.Transpose(x)
	tp.Set(0, 1, 100)
	assert.Equal(t, 2.0, x.At(0, 1))
}
