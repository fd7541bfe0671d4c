package algebra

import "errors"

// Sentinel values carried by the panics of the core. They are programmer errors:
// recover() yields an error wrapping one of them, so errors.Is works on it.
var (
	// ErrShape is raised when operand shapes do not conform, e.g. Add on different
	// shapes, Mul where a.Cols() != b.Rows(), or a block that leaves its parent.
	ErrShape = errors.New("algebra: dimension mismatch")

	// ErrSquare is raised when a square matrix is required but the input is not.
	ErrSquare = errors.New("algebra: matrix is not square")

	// ErrNoStrategy is raised when no registered determinant or inverse strategy
	// claims the requested size.
	ErrNoStrategy = errors.New("algebra: no strategy for matrix size")
)
