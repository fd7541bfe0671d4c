// Package simd is the vectorized storage backend. Matrices are dense row-major
// slices and the element-wise kernels (sum, scalar product, row·column dot
// products) run through github.com/viterin/vek, which uses AVX2/NEON when the
// CPU has them and optimized Go loops otherwise.
//
// Blocks are copies: writing to a block never changes its parent.
package simd

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
)

// Float restricts the backend to the two element types vek has kernels for.
type Float interface {
	float32 | float64
}

// Matrix is a row-major rows x cols matrix. Copying the value shares entries.
type Matrix[T Float] struct {
	data []T
	rows int
	cols int
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

func (m Matrix[T]) At(row, col int) T {
	return m.data[row*m.cols+col]
}

func (m Matrix[T]) Set(row, col int, v T) {
	m.data[row*m.cols+col] = v
}

// Row returns the backing slice of row i.
func (m Matrix[T]) Row(i int) []T {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Storage creates simd matrices and provides the vectorized kernels.
type Storage[T Float] struct{}

func (Storage[T]) New(rows, cols int) Matrix[T] {
	return Matrix[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// Block copies the requested rows x cols window out of m.
func (s Storage[T]) Block(m Matrix[T], row, col, rows, cols int) Matrix[T] {
	out := s.New(rows, cols)
	for i := range rows {
		src := m.Row(row + i)
		copy(out.Row(i), src[col : col+cols])
	}
	return out
}

func (s Storage[T]) Add(a, b Matrix[T]) Matrix[T] {
	out := Matrix[T]{data: clone(a.data), rows: a.rows, cols: a.cols}
	addInplace(out.data, b.data)
	return out
}

func (s Storage[T]) Scale(m Matrix[T], f T) Matrix[T] {
	out := Matrix[T]{data: clone(m.data), rows: m.rows, cols: m.cols}
	scaleInplace(out.data, f)
	return out
}

// Mul computes every entry as the dot product of a row of a with a column of
// b; the columns of b are gathered once into contiguous rows of its transpose.
func (s Storage[T]) Mul(a, b Matrix[T]) Matrix[T] {
	bt := s.Transpose(b)
	out := s.New(a.rows, b.cols)
	for i := range a.rows {
		row := a.Row(i)
		for j := range b.cols {
			out.Set(i, j, dot(row, bt.Row(j)))
		}
	}
	return out
}

func (s Storage[T]) Transpose(m Matrix[T]) Matrix[T] {
	out := s.New(m.cols, m.rows)
	for i := range m.rows {
		for j := range m.cols {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// FromRows builds a matrix from row slices of equal length.
func FromRows[T Float](rows ...[]T) Matrix[T] {
	m := Storage[T]{}.New(len(rows), len(rows[0]))
	for i, r := range rows {
		copy(m.Row(i), r)
	}
	return m
}

func clone[T Float](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

type (
	Actor[T Float]        = matrix.Actor[T, Matrix[T]]
	Transform3[T Float]   = transform.Transform3[T, Matrix[T]]
	Cartesian2[T Float]   = coordinate.Cartesian2[T]
	Polar2[T Float]       = coordinate.Polar2[T]
	Cylindrical2[T Float] = coordinate.Cylindrical2[T]
	Line2[T Float]        = coordinate.Line2[T]
)

// NewActor returns the actor with the default strategy preset.
func NewActor[T Float]() Actor[T] {
	return matrix.New[T, Matrix[T]](Storage[T]{})
}

var (
	_ algebra.Storage[float32, Matrix[float32]] = Storage[float32]{}
	_ matrix.Multiplier[Matrix[float64]]         = Storage[float64]{}
)
