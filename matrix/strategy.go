package matrix

import (
	"fmt"
	"slices"

	"github.com/akmonengine/algebra"
)

// DeterminantStrategy computes determinants of the square sizes it handles.
type DeterminantStrategy[T algebra.Scalar, M algebra.Matrix[T]] interface {
	Handles(n int) bool
	Determinant(m M) T
}

// InverseStrategy computes inverses of the square sizes it handles.
type InverseStrategy[T algebra.Scalar, M algebra.Matrix[T]] interface {
	Handles(n int) bool
	Inverse(m M) M
}

// Determinants dispatches by size to the first strategy that handles it.
type Determinants[T algebra.Scalar, M algebra.Matrix[T]] []DeterminantStrategy[T, M]

// Determinant panics with algebra.ErrNoStrategy when no strategy claims the size.
func (d Determinants[T, M]) Determinant(m M) T {
	n := m.Rows()
	for _, s := range d {
		if s.Handles(n) {
			return s.Determinant(m)
		}
	}
	panic(fmt.Errorf("matrix: determinant of %dx%d: %w", n, n, algebra.ErrNoStrategy))
}

// Handles reports whether any strategy claims size n.
func (d Determinants[T, M]) Handles(n int) bool {
	return slices.ContainsFunc(d, func(s DeterminantStrategy[T, M]) bool { return s.Handles(n) })
}

// Inverses dispatches by size to the first strategy that handles it.
type Inverses[T algebra.Scalar, M algebra.Matrix[T]] []InverseStrategy[T, M]

// Inverse panics with algebra.ErrNoStrategy when no strategy claims the size.
func (i Inverses[T, M]) Inverse(m M) M {
	n := m.Rows()
	for _, s := range i {
		if s.Handles(n) {
			return s.Inverse(m)
		}
	}
	panic(fmt.Errorf("matrix: inverse of %dx%d: %w", n, n, algebra.ErrNoStrategy))
}

// Handles reports whether any strategy claims size n.
func (i Inverses[T, M]) Handles(n int) bool {
	return slices.ContainsFunc(i, func(s InverseStrategy[T, M]) bool { return s.Handles(n) })
}

// sizeSet is the list of sizes a strategy was restricted to. Empty means any.
type sizeSet []int

func (s sizeSet) handles(n int) bool {
	if n < 1 {
		return false
	}
	return len(s) == 0 || slices.Contains(s, n)
}
