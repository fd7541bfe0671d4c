// Package dense is the gonum.org/v1/gonum/mat storage backend, double
// precision only. Blocks are gonum slices, so they alias their parent the way
// the array backend does. Sums, scalar products, products and transposes are
// delegated to *mat.Dense, which reaches BLAS for the product.
//
// LU adds a determinant/inverse strategy on top of gonum's LU factorization for
// sizes where cofactor expansion is too slow.
package dense

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a *mat.Dense. Copying the value shares the entries.
type Matrix struct {
	d *mat.Dense
}

func (m Matrix) Rows() int {
	r, _ := m.d.Dims()
	return r
}

func (m Matrix) Cols() int {
	_, c := m.d.Dims()
	return c
}

func (m Matrix) At(row, col int) float64 {
	return m.d.At(row, col)
}

func (m Matrix) Set(row, col int, v float64) {
	m.d.Set(row, col, v)
}

// Dense exposes the wrapped gonum matrix.
func (m Matrix) Dense() *mat.Dense {
	return m.d
}

// Storage creates dense matrices and forwards arithmetic to gonum.
type Storage struct{}

func (Storage) New(rows, cols int) Matrix {
	return Matrix{d: mat.NewDense(rows, cols, nil)}
}

// Block returns a view: it shares m's entries.
func (Storage) Block(m Matrix, row, col, rows, cols int) Matrix {
	return Matrix{d: m.d.Slice(row, row+rows, col, col+cols).(*mat.Dense)}
}

func (Storage) Add(a, b Matrix) Matrix {
	var out mat.Dense
	out.Add(a.d, b.d)
	return Matrix{d: &out}
}

func (Storage) Scale(m Matrix, s float64) Matrix {
	var out mat.Dense
	out.Scale(s, m.d)
	return Matrix{d: &out}
}

func (Storage) Mul(a, b Matrix) Matrix {
	var out mat.Dense
	out.Mul(a.d, b.d)
	return Matrix{d: &out}
}

func (Storage) Transpose(m Matrix) Matrix {
	return Matrix{d: mat.DenseCopyOf(m.d.T())}
}

// FromDense wraps an existing gonum matrix without copying it.
func FromDense(d *mat.Dense) Matrix {
	return Matrix{d: d}
}

// FromRows builds a matrix from row slices of equal length.
func FromRows(rows ...[]float64) Matrix {
	m := Storage{}.New(len(rows), len(rows[0]))
	for i, r := range rows {
		m.d.SetRow(i, r)
	}
	return m
}

type (
	Actor        = matrix.Actor[float64, Matrix]
	Transform3   = transform.Transform3[float64, Matrix]
	Cartesian2   = coordinate.Cartesian2[float64]
	Polar2       = coordinate.Polar2[float64]
	Cylindrical2 = coordinate.Cylindrical2[float64]
	Line2        = coordinate.Line2[float64]
)

// NewActor returns the actor with the default strategy preset.
func NewActor(opts ...matrix.Option[float64, Matrix]) Actor {
	return matrix.New[float64, Matrix](Storage{}, opts...)
}

var (
	_ algebra.Storage[float64, Matrix] = Storage{}
	_ matrix.Adder[Matrix]             = Storage{}
	_ matrix.Scaler[float64, Matrix]   = Storage{}
	_ matrix.Multiplier[Matrix]        = Storage{}
	_ matrix.Transposer[Matrix]        = Storage{}
)
