package dense

import (
	"math"
	"slices"

	"github.com/akmonengine/algebra/matrix"
	"gonum.org/v1/gonum/mat"
)

// LUStrategy computes determinants and inverses through gonum's LU
// factorization with partial pivoting. It costs O(n³) where cofactor expansion
// costs O(n!).
type LUStrategy struct {
	sizes []int
}

// LU handles the given sizes, or every size when none is given. Put it ahead
// of or instead of matrix.Cofactor:
//
//	actor := dense.NewActor(
//		matrix.WithDeterminant[float64, dense.Matrix](
//			matrix.HardCoded[float64, dense.Matrix](dense.Storage{}, 2, 3, 4),
//			dense.LU(),
//		),
//	)
func LU(sizes ...int) *LUStrategy {
	return &LUStrategy{sizes: sizes}
}

func (s *LUStrategy) Handles(n int) bool {
	return n >= 1 && (len(s.sizes) == 0 || slices.Contains(s.sizes, n))
}

func (s *LUStrategy) Determinant(m Matrix) float64 {
	return mat.Det(m.d)
}

// Inverse does not report singular input, like the other strategies: an
// exactly singular matrix yields +Inf entries. Ill-conditioned matrices keep
// gonum's result.
func (s *LUStrategy) Inverse(m Matrix) Matrix {
	var out mat.Dense
	err := out.Inverse(m.d)
	if cond, ok := err.(mat.Condition); ok && math.IsInf(float64(cond), 1) {
		out.Apply(func(int, int, float64) float64 { return math.Inf(1) }, &out)
	}
	return Matrix{d: &out}
}

var (
	_ matrix.DeterminantStrategy[float64, Matrix] = (*LUStrategy)(nil)
	_ matrix.InverseStrategy[float64, Matrix]     = (*LUStrategy)(nil)
)
