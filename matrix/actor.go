package matrix

import (
	"fmt"
	"math"

	"github.com/akmonengine/algebra"
)

// Actor is the dispatch surface for matrix operations on one backend. It has
// no state besides its configuration and is safe to copy and share.
type Actor[T algebra.Scalar, M algebra.Matrix[T]] struct {
	storage     algebra.Storage[T, M]
	determinant Determinants[T, M]
	inverse     Inverses[T, M]
}

// New returns an actor over storage using the default strategies unless
// overridden by opts.
func New[T algebra.Scalar, M algebra.Matrix[T]](storage algebra.Storage[T, M], opts ...Option[T, M]) Actor[T, M] {
	a := Actor[T, M]{
		storage:     storage,
		determinant: DefaultDeterminants(storage),
		inverse:     DefaultInverses(storage),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Storage returns the backend the actor was built over.
func (a Actor[T, M]) Storage() algebra.Storage[T, M] {
	return a.storage
}

// Element returns m(row, col).
func (a Actor[T, M]) Element(m M, row, col int) T {
	return m.At(row, col)
}

// SetElement assigns m(row, col).
func (a Actor[T, M]) SetElement(m M, row, col int, v T) {
	m.Set(row, col, v)
}

// Block returns the rows x cols sub-matrix starting at (row, col). Whether it
// aliases m is the backend's policy.
func (a Actor[T, M]) Block(m M, row, col, rows, cols int) M {
	if row < 0 || col < 0 || rows < 1 || cols < 1 || row+rows > m.Rows() || col+cols > m.Cols() {
		panic(fmt.Errorf("matrix: block %dx%d at (%d,%d) of %dx%d: %w",
			rows, cols, row, col, m.Rows(), m.Cols(), algebra.ErrShape))
	}
	return a.storage.Block(m, row, col, rows, cols)
}

// Vector3 reads the three entries of column col starting at row.
func (a Actor[T, M]) Vector3(m M, row, col int) algebra.Vector3[T] {
	return algebra.Vector3[T]{m.At(row, col), m.At(row+1, col), m.At(row+2, col)}
}

// SetVector3 writes v into column col starting at row.
func (a Actor[T, M]) SetVector3(m M, row, col int, v algebra.Vector3[T]) {
	m.Set(row, col, v[0])
	m.Set(row+1, col, v[1])
	m.Set(row+2, col, v[2])
}

// SetZero sets every entry of m to zero.
func (a Actor[T, M]) SetZero(m M) {
	for i := range m.Rows() {
		for j := range m.Cols() {
			m.Set(i, j, 0)
		}
	}
}

// SetIdentity sets ones on the main diagonal of m and zero elsewhere. Non-square
// matrices get ones on the leading diagonal only.
func (a Actor[T, M]) SetIdentity(m M) {
	for i := range m.Rows() {
		for j := range m.Cols() {
			if i == j {
				m.Set(i, j, 1)
			} else {
				m.Set(i, j, 0)
			}
		}
	}
}

func (a Actor[T, M]) Zero(rows, cols int) M {
	return a.storage.New(rows, cols)
}

func (a Actor[T, M]) Identity(rows, cols int) M {
	m := a.storage.New(rows, cols)
	for i := range min(rows, cols) {
		m.Set(i, i, 1)
	}
	return m
}

// Copy returns a matrix with the entries of m that never aliases it.
func (a Actor[T, M]) Copy(m M) M {
	out := a.storage.New(m.Rows(), m.Cols())
	for i := range m.Rows() {
		for j := range m.Cols() {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// Transpose returns the cols x rows matrix with out(j,i) = m(i,j).
func (a Actor[T, M]) Transpose(m M) M {
	if t, ok := a.storage.(Transposer[M]); ok {
		return t.Transpose(m)
	}
	out := a.storage.New(m.Cols(), m.Rows())
	for i := range m.Rows() {
		for j := range m.Cols() {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Determinant dispatches to the first determinant strategy handling m's size.
func (a Actor[T, M]) Determinant(m M) T {
	mustSquare[T, M](m, "determinant")
	return a.determinant.Determinant(m)
}

// Inverse dispatches to the first inverse strategy handling m's size. A
// singular m gives non-finite entries.
func (a Actor[T, M]) Inverse(m M) M {
	mustSquare[T, M](m, "inverse")
	return a.inverse.Inverse(m)
}

// Equal reports whether x and y have the same shape and identical entries.
func (a Actor[T, M]) Equal(x, y M) bool {
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		return false
	}
	for i := range x.Rows() {
		for j := range x.Cols() {
			if x.At(i, j) != y.At(i, j) {
				return false
			}
		}
	}
	return true
}

// ApproxEqual is Equal with an absolute tolerance per entry.
func (a Actor[T, M]) ApproxEqual(x, y M, eps T) bool {
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		return false
	}
	for i := range x.Rows() {
		for j := range x.Cols() {
			d := x.At(i, j) - y.At(i, j)
			if d > eps || d < -eps || math.IsNaN(float64(d)) {
				return false
			}
		}
	}
	return true
}

func mustSquare[T algebra.Scalar, M algebra.Matrix[T]](m M, op string) {
	if m.Rows() != m.Cols() {
		panic(fmt.Errorf("matrix: %s of %dx%d: %w", op, m.Rows(), m.Cols(), algebra.ErrSquare))
	}
}
