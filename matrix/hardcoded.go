package matrix

import (
	"fmt"

	"github.com/akmonengine/algebra"
)

// HardCodedStrategy evaluates closed-form determinants and inverses for 2x2,
// 3x3 and 4x4 matrices.
type HardCodedStrategy[T algebra.Scalar, M algebra.Matrix[T]] struct {
	storage algebra.Storage[T, M]
	sizes   sizeSet
}

// HardCoded returns the closed-form strategy for the given sizes, all of 2, 3
// and 4 when none are given. A size without a closed form panics with
// algebra.ErrNoStrategy.
func HardCoded[T algebra.Scalar, M algebra.Matrix[T]](storage algebra.Storage[T, M], sizes ...int) *HardCodedStrategy[T, M] {
	if len(sizes) == 0 {
		sizes = []int{2, 3, 4}
	}
	for _, n := range sizes {
		if n < 2 || n > 4 {
			panic(fmt.Errorf("matrix: no closed form for %dx%d: %w", n, n, algebra.ErrNoStrategy))
		}
	}
	return &HardCodedStrategy[T, M]{storage: storage, sizes: sizes}
}

func (h *HardCodedStrategy[T, M]) Handles(n int) bool {
	return h.sizes.handles(n)
}

func (h *HardCodedStrategy[T, M]) Determinant(m M) T {
	switch m.Rows() {
	case 2:
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	case 3:
		return det3[T, M](m)
	case 4:
		s, c := subDeterminants4[T, M](m)
		return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	}
	panic(fmt.Errorf("matrix: hard-coded determinant of %dx%d: %w", m.Rows(), m.Cols(), algebra.ErrNoStrategy))
}

func (h *HardCodedStrategy[T, M]) Inverse(m M) M {
	switch m.Rows() {
	case 2:
		return h.inverse2(m)
	case 3:
		return h.inverse3(m)
	case 4:
		return h.inverse4(m)
	}
	panic(fmt.Errorf("matrix: hard-coded inverse of %dx%d: %w", m.Rows(), m.Cols(), algebra.ErrNoStrategy))
}

func det3[T algebra.Scalar, M algebra.Matrix[T]](m M) T {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(1, 2)*m.At(2, 0)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}

func (h *HardCodedStrategy[T, M]) inverse2(m M) M {
	a, b := m.At(0, 0), m.At(0, 1)
	c, d := m.At(1, 0), m.At(1, 1)
	idet := 1 / (a*d - b*c)

	out := h.storage.New(2, 2)
	out.Set(0, 0, d*idet)
	out.Set(0, 1, -b*idet)
	out.Set(1, 0, -c*idet)
	out.Set(1, 1, a*idet)
	return out
}

func (h *HardCodedStrategy[T, M]) inverse3(m M) M {
	a, b, c := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	d, e, f := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	g, k, l := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	c00 := e*l - f*k
	c01 := f*g - d*l
	c02 := d*k - e*g
	idet := 1 / (a*c00 + b*c01 + c*c02)

	out := h.storage.New(3, 3)
	out.Set(0, 0, c00*idet)
	out.Set(0, 1, (c*k-b*l)*idet)
	out.Set(0, 2, (b*f-c*e)*idet)
	out.Set(1, 0, c01*idet)
	out.Set(1, 1, (a*l-c*g)*idet)
	out.Set(1, 2, (c*d-a*f)*idet)
	out.Set(2, 0, c02*idet)
	out.Set(2, 1, (b*g-a*k)*idet)
	out.Set(2, 2, (a*e-b*d)*idet)
	return out
}

// subDeterminants4 returns the six 2x2 determinants of rows 0-1 (s) and
// rows 2-3 (c) used by the 4x4 closed forms.
func subDeterminants4[T algebra.Scalar, M algebra.Matrix[T]](m M) (s, c [6]T) {
	n := func(i, j int) T { return m.At(i, j) }
	s[0] = n(0, 0)*n(1, 1) - n(0, 1)*n(1, 0)
	s[1] = n(0, 0)*n(1, 2) - n(0, 2)*n(1, 0)
	s[2] = n(0, 0)*n(1, 3) - n(0, 3)*n(1, 0)
	s[3] = n(0, 1)*n(1, 2) - n(0, 2)*n(1, 1)
	s[4] = n(0, 1)*n(1, 3) - n(0, 3)*n(1, 1)
	s[5] = n(0, 2)*n(1, 3) - n(0, 3)*n(1, 2)
	c[0] = n(2, 0)*n(3, 1) - n(2, 1)*n(3, 0)
	c[1] = n(2, 0)*n(3, 2) - n(2, 2)*n(3, 0)
	c[2] = n(2, 0)*n(3, 3) - n(2, 3)*n(3, 0)
	c[3] = n(2, 1)*n(3, 2) - n(2, 2)*n(3, 1)
	c[4] = n(2, 1)*n(3, 3) - n(2, 3)*n(3, 1)
	c[5] = n(2, 2)*n(3, 3) - n(2, 3)*n(3, 2)
	return s, c
}

func (h *HardCodedStrategy[T, M]) inverse4(m M) M {
	s, c := subDeterminants4[T, M](m)
	n := func(i, j int) T { return m.At(i, j) }
	idet := 1 / (s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0])

	out := h.storage.New(4, 4)
	out.Set(0, 0, (c[5]*n(1, 1)-c[4]*n(1, 2)+c[3]*n(1, 3))*idet)
	out.Set(0, 1, (-c[5]*n(0, 1)+c[4]*n(0, 2)-c[3]*n(0, 3))*idet)
	out.Set(0, 2, (s[5]*n(3, 1)-s[4]*n(3, 2)+s[3]*n(3, 3))*idet)
	out.Set(0, 3, (-s[5]*n(2, 1)+s[4]*n(2, 2)-s[3]*n(2, 3))*idet)
	out.Set(1, 0, (-c[5]*n(1, 0)+c[2]*n(1, 2)-c[1]*n(1, 3))*idet)
	out.Set(1, 1, (c[5]*n(0, 0)-c[2]*n(0, 2)+c[1]*n(0, 3))*idet)
	out.Set(1, 2, (-s[5]*n(3, 0)+s[2]*n(3, 2)-s[1]*n(3, 3))*idet)
	out.Set(1, 3, (s[5]*n(2, 0)-s[2]*n(2, 2)+s[1]*n(2, 3))*idet)
	out.Set(2, 0, (c[4]*n(1, 0)-c[2]*n(1, 1)+c[0]*n(1, 3))*idet)
	out.Set(2, 1, (-c[4]*n(0, 0)+c[2]*n(0, 1)-c[0]*n(0, 3))*idet)
	out.Set(2, 2, (s[4]*n(3, 0)-s[2]*n(3, 1)+s[0]*n(3, 3))*idet)
	out.Set(2, 3, (-s[4]*n(2, 0)+s[2]*n(2, 1)-s[0]*n(2, 3))*idet)
	out.Set(3, 0, (-c[3]*n(1, 0)+c[1]*n(1, 1)-c[0]*n(1, 2))*idet)
	out.Set(3, 1, (c[3]*n(0, 0)-c[1]*n(0, 1)+c[0]*n(0, 2))*idet)
	out.Set(3, 2, (-s[3]*n(3, 0)+s[1]*n(3, 1)-s[0]*n(3, 2))*idet)
	out.Set(3, 3, (s[3]*n(2, 0)-s[1]*n(2, 1)+s[0]*n(2, 2))*idet)
	return out
}
