package matrix

import "github.com/akmonengine/algebra"

// CofactorStrategy computes determinants by Laplace expansion along the first
// row and inverses through the adjugate. It works for any square size.
type CofactorStrategy[T algebra.Scalar, M algebra.Matrix[T]] struct {
	storage algebra.Storage[T, M]
	sizes   sizeSet
}

// Cofactor returns the expansion strategy, restricted to sizes when given.
func Cofactor[T algebra.Scalar, M algebra.Matrix[T]](storage algebra.Storage[T, M], sizes ...int) *CofactorStrategy[T, M] {
	return &CofactorStrategy[T, M]{storage: storage, sizes: sizes}
}

func (c *CofactorStrategy[T, M]) Handles(n int) bool {
	return c.sizes.handles(n)
}

func (c *CofactorStrategy[T, M]) Determinant(m M) T {
	n := m.Rows()
	return minorDeterminant[T, M](m, indices(n), indices(n))
}

// Inverse returns adjugate(m)/det(m). The determinant is the first-row
// expansion over the cofactors already computed for the adjugate.
func (c *CofactorStrategy[T, M]) Inverse(m M) M {
	n := m.Rows()
	out := c.storage.New(n, n)
	if n == 1 {
		out.Set(0, 0, 1/m.At(0, 0))
		return out
	}

	rows := make([]int, n-1)
	cols := make([]int, n-1)
	var det T
	for i := range n {
		skip(rows, n, i)
		for j := range n {
			skip(cols, n, j)
			cof := minorDeterminant[T, M](m, rows, cols)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			// adjugate is the transposed cofactor matrix
			out.Set(j, i, cof)
			if i == 0 {
				det += m.At(0, j) * cof
			}
		}
	}

	inv := 1 / det
	for i := range n {
		for j := range n {
			out.Set(i, j, out.At(i, j)*inv)
		}
	}
	return out
}

// minorDeterminant is the determinant of the sub-matrix of m made of the given
// rows and columns, expanded along rows[0].
func minorDeterminant[T algebra.Scalar, M algebra.Matrix[T]](m M, rows, cols []int) T {
	switch len(cols) {
	case 1:
		return m.At(rows[0], cols[0])
	case 2:
		return m.At(rows[0], cols[0])*m.At(rows[1], cols[1]) -
			m.At(rows[0], cols[1])*m.At(rows[1], cols[0])
	}

	sub := make([]int, len(cols)-1)
	var det T
	sign := T(1)
	for j, col := range cols {
		copy(sub, cols[:j])
		copy(sub[j:], cols[j+1:])
		det += sign * m.At(rows[0], col) * minorDeterminant[T, M](m, rows[1:], sub)
		sign = -sign
	}
	return det
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// skip fills dst with 0..n-1 minus k.
func skip(dst []int, n, k int) {
	j := 0
	for i := range n {
		if i != k {
			dst[j] = i
			j++
		}
	}
}
