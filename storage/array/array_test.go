package array

import (
	"testing"

	"github.com/akmonengine/algebra/internal/conformance"
	"github.com/stretchr/testify/assert"
)

func TestConformance(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		conformance.Run(t, conformance.Float64(NewActor[float64](), true))
	})
	t.Run("float32", func(t *testing.T) {
		conformance.Run(t, conformance.Float32(NewActor[float32](), true))
	})
}

func TestColumnMajorLayout(t *testing.T) {
	m := FromRows([]float64{1, 2, 3}, []float64{4, 5, 6})
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.data)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestBlockOfBlock(t *testing.T) {
	a := NewActor[float64]()
	m := a.Identity(5, 5)

	outer := a.Block(m, 1, 1, 4, 4)
	inner := a.Block(outer, 1, 1, 2, 2)
	assert.Equal(t, 1.0, inner.At(0, 0))
	assert.Equal(t, 0.0, inner.At(0, 1))

	inner.Set(1, 0, 9)
	assert.Equal(t, 9.0, m.At(3, 2))
	assert.Equal(t, 9.0, outer.At(2, 1))
}

func TestCopyDoesNotAlias(t *testing.T) {
	a := NewActor[float32]()
	m := a.Identity(3, 3)
	c := a.Copy(a.Block(m, 0, 0, 2, 2))
	c.Set(0, 0, 5)
	assert.Equal(t, float32(1), m.At(0, 0))
}
