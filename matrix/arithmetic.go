package matrix

import (
	"fmt"

	"github.com/akmonengine/algebra"
)

// Adder is implemented by storages with a native element-wise sum.
// Shapes are checked by the actor before the call.
type Adder[M any] interface {
	Add(a, b M) M
}

// Scaler is implemented by storages with a native scalar product.
type Scaler[T algebra.Scalar, M any] interface {
	Scale(m M, s T) M
}

// Multiplier is implemented by storages with a native matrix product.
// Inner dimensions are checked by the actor before the call.
type Multiplier[M any] interface {
	Mul(a, b M) M
}

// Transposer is implemented by storages with a native transpose.
type Transposer[M any] interface {
	Transpose(m M) M
}

// Add returns the element-wise sum of two matrices of the same shape.
func (a Actor[T, M]) Add(x, y M) M {
	mustSameShape[T, M](x, y, "add")
	if f, ok := a.storage.(Adder[M]); ok {
		return f.Add(x, y)
	}
	out := a.storage.New(x.Rows(), x.Cols())
	for i := range x.Rows() {
		for j := range x.Cols() {
			out.Set(i, j, x.At(i, j)+y.At(i, j))
		}
	}
	return out
}

// Sub returns x - y for matrices of the same shape.
func (a Actor[T, M]) Sub(x, y M) M {
	mustSameShape[T, M](x, y, "sub")
	return a.Add(x, a.Scale(y, -1))
}

// Scale returns s·m. Scalar products commute, so this serves both m*s and s*m.
func (a Actor[T, M]) Scale(m M, s T) M {
	if f, ok := a.storage.(Scaler[T, M]); ok {
		return f.Scale(m, s)
	}
	out := a.storage.New(m.Rows(), m.Cols())
	for i := range m.Rows() {
		for j := range m.Cols() {
			out.Set(i, j, m.At(i, j)*s)
		}
	}
	return out
}

// Mul returns the product of an r x k and a k x c matrix.
func (a Actor[T, M]) Mul(x, y M) M {
	if x.Cols() != y.Rows() {
		panic(fmt.Errorf("matrix: mul %dx%d by %dx%d: %w",
			x.Rows(), x.Cols(), y.Rows(), y.Cols(), algebra.ErrShape))
	}
	if f, ok := a.storage.(Multiplier[M]); ok {
		return f.Mul(x, y)
	}
	out := a.storage.New(x.Rows(), y.Cols())
	for i := range x.Rows() {
		for j := range y.Cols() {
			var sum T
			for k := range x.Cols() {
				sum += x.At(i, k) * y.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// MulChain multiplies left to right: first·rest[0]·rest[1]·…
func (a Actor[T, M]) MulChain(first M, rest ...M) M {
	out := first
	for _, m := range rest {
		out = a.Mul(out, m)
	}
	return out
}

func mustSameShape[T algebra.Scalar, M algebra.Matrix[T]](x, y M, op string) {
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		panic(fmt.Errorf("matrix: %s %dx%d and %dx%d: %w",
			op, x.Rows(), x.Cols(), y.Rows(), y.Cols(), algebra.ErrShape))
	}
}
