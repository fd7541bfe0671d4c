// Package matrix implements the Matrix Actor: determinant, inverse, identity, zero,
// transpose, block extraction and arithmetic for small matrices, written once
// against the algebra.Matrix / algebra.Storage contract and instantiated per
// storage backend.
//
// Determinant and inverse are delegated to strategies. A strategy declares the
// square sizes it handles; an aggregator (Determinants, Inverses) holds an
// ordered list of strategies and the first one claiming the size wins.
// Two families ship with the package:
//
//   - HardCoded: closed forms for 2x2, 3x3 and 4x4. They are flat, branch-free
//     expressions, cheaper than recursion at these sizes.
//   - Cofactor: Laplace expansion along the first row for any size,
//     det = Σ_j (-1)^j · m(0,j) · det(minor(m,0,j)), with the inverse computed as
//     adjugate/det where adjugate(i,j) = cofactor(j,i).
//
// The default configuration puts HardCoded(2, 4) ahead of Cofactor(), so 2x2 and
// 4x4 matrices take the closed forms and every other size falls back to the
// expansion:
//
//	actor := matrix.New(array.Storage[float64]{})
//	det := actor.Determinant(m)
//	inv := actor.Inverse(m)
//
// Singular matrices are not detected. Their inverse holds ±Inf/NaN entries;
// callers needing safety test Determinant against zero before inverting.
//
// Backends may implement Adder, Scaler, Multiplier or Transposer on their
// Storage type; the actor then routes the corresponding operation to the
// backend (SIMD kernels, gonum, mathgl) after checking shapes.
package matrix
