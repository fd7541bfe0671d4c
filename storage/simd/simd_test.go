package simd

import (
	"runtime"
	"testing"

	"github.com/akmonengine/algebra/internal/conformance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		conformance.Run(t, conformance.Float64(NewActor[float64](), false))
	})
	t.Run("float32", func(t *testing.T) {
		conformance.Run(t, conformance.Float32(NewActor[float32](), false))
	})
}

func TestKernels(t *testing.T) {
	s := Storage[float64]{}
	a := FromRows([]float64{1, 2}, []float64{3, 4})
	b := FromRows([]float64{10, 20}, []float64{30, 40})

	sum := s.Add(a, b)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.data)
	// Operands are left untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.data)

	assert.Equal(t, []float64{-2, -4, -6, -8}, s.Scale(a, -2).data)

	// [1 2; 3 4]·[10 20; 30 40]
	assert.Equal(t, []float64{70, 100, 150, 220}, s.Mul(a, b).data)
	assert.Equal(t, []float64{1, 3, 2, 4}, s.Transpose(a).data)
}

func TestKernelsFloat32(t *testing.T) {
	s := Storage[float32]{}
	a := FromRows([]float32{1, 2, 3})
	col := FromRows([]float32{4}, []float32{5}, []float32{6})

	p := s.Mul(a, col)
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())
	assert.Equal(t, float32(32), p.At(0, 0))
}

func TestBlockCopies(t *testing.T) {
	s := Storage[float64]{}
	m := FromRows([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	blk := s.Block(m, 1, 1, 2, 2)
	assert.Equal(t, []float64{5, 6, 8, 9}, blk.data)

	blk.Set(0, 0, 0)
	assert.Equal(t, 5.0, m.At(1, 1))
}

func TestInfo(t *testing.T) {
	assert.Equal(t, runtime.GOARCH, Info().Architecture)
}
