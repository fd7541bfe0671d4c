package algebra

// Scalar is the floating point element type of a backend instantiation.
type Scalar interface {
	~float32 | ~float64
}

// Matrix is the element access contract every backend matrix type satisfies.
// At and Set are O(1); indices outside [0,Rows()) x [0,Cols()) are undefined
// behaviour and most backends panic on them.
type Matrix[T Scalar] interface {
	Rows() int
	Cols() int
	At(row, col int) T
	Set(row, col int, v T)
}

// Storage creates matrices of one concrete backend type and extracts blocks.
//
// New returns a zero-filled rows x cols matrix. Block returns the rows x cols
// sub-matrix whose top-left entry is m(row, col); whether writes to the block
// reach m is backend policy and is documented on each implementation.
type Storage[T Scalar, M Matrix[T]] interface {
	New(rows, cols int) M
	Block(m M, row, col, rows, cols int) M
}
