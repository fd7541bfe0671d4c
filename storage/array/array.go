// Package array is the plain-slice storage backend. Matrices are column-major
// views over a shared []T, so blocks alias their parent: writing to a block
// writes to the parent matrix.
package array

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
)

// Matrix is a column-major rows x cols window over data. Copying a Matrix
// value shares the entries; use Actor.Copy for an independent matrix.
type Matrix[T algebra.Scalar] struct {
	data   []T
	rows   int
	cols   int
	stride int
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

func (m Matrix[T]) At(row, col int) T {
	return m.data[col*m.stride+row]
}

func (m Matrix[T]) Set(row, col int, v T) {
	m.data[col*m.stride+row] = v
}

// Storage creates array matrices.
type Storage[T algebra.Scalar] struct{}

func (Storage[T]) New(rows, cols int) Matrix[T] {
	return Matrix[T]{data: make([]T, rows*cols), rows: rows, cols: cols, stride: rows}
}

// Block returns a view: it shares m's entries.
func (Storage[T]) Block(m Matrix[T], row, col, rows, cols int) Matrix[T] {
	start := col*m.stride + row
	end := (col+cols-1)*m.stride + row + rows
	return Matrix[T]{data: m.data[start:end], rows: rows, cols: cols, stride: m.stride}
}

// FromRows builds a matrix from row slices of equal length.
func FromRows[T algebra.Scalar](rows ...[]T) Matrix[T] {
	m := Storage[T]{}.New(len(rows), len(rows[0]))
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, v)
		}
	}
	return m
}

type (
	Actor[T algebra.Scalar]        = matrix.Actor[T, Matrix[T]]
	Transform3[T algebra.Scalar]   = transform.Transform3[T, Matrix[T]]
	Cartesian2[T algebra.Scalar]   = coordinate.Cartesian2[T]
	Polar2[T algebra.Scalar]       = coordinate.Polar2[T]
	Cylindrical2[T algebra.Scalar] = coordinate.Cylindrical2[T]
	Line2[T algebra.Scalar]        = coordinate.Line2[T]
)

// NewActor returns the actor with the default strategy preset.
func NewActor[T algebra.Scalar]() Actor[T] {
	return matrix.New[T, Matrix[T]](Storage[T]{})
}
