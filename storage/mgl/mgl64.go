// Package mgl is the github.com/go-gl/mathgl storage backend. Double precision
// matrices wrap mgl64.MatMxN and single precision ones wrap mgl32.MatMxN; sums,
// scalar products, products and transposes go through MatMxN's own methods.
//
// Blocks are copies: MatMxN has no sub-matrix views.
//
// The package also bridges to mathgl's fixed-size types, so code already
// holding mgl64.Vec3, mgl64.Quat or mgl64.Mat4 values can build transforms and
// read them back (see Pose).
package mgl

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Matrix64 is a double precision matrix backed by *mgl64.MatMxN.
type Matrix64 struct {
	m *mgl64.MatMxN
}

func (m Matrix64) Rows() int { return m.m.NumRows() }
func (m Matrix64) Cols() int { return m.m.NumCols() }

func (m Matrix64) At(row, col int) float64 {
	return m.m.At(row, col)
}

func (m Matrix64) Set(row, col int, v float64) {
	m.m.Set(row, col, v)
}

// MatMxN exposes the wrapped mathgl matrix.
func (m Matrix64) MatMxN() *mgl64.MatMxN {
	return m.m
}

// Storage64 creates Matrix64 values.
type Storage64 struct{}

func (Storage64) New(rows, cols int) Matrix64 {
	// NewMatrix may hand out a pooled slice with stale entries.
	m := mgl64.NewMatrix(rows, cols)
	m.Zero(rows, cols)
	return Matrix64{m: m}
}

// Block copies the window out of m.
func (s Storage64) Block(m Matrix64, row, col, rows, cols int) Matrix64 {
	out := s.New(rows, cols)
	for i := range rows {
		for j := range cols {
			out.Set(i, j, m.At(row+i, col+j))
		}
	}
	return out
}

func (Storage64) Add(a, b Matrix64) Matrix64 {
	return Matrix64{m: a.m.Add(nil, b.m)}
}

func (Storage64) Scale(m Matrix64, s float64) Matrix64 {
	return Matrix64{m: m.m.Mul(nil, s)}
}

func (Storage64) Mul(a, b Matrix64) Matrix64 {
	return Matrix64{m: a.m.MulMxN(nil, b.m)}
}

func (Storage64) Transpose(m Matrix64) Matrix64 {
	return Matrix64{m: m.m.Transpose(nil)}
}

// FromMatMxN wraps an existing mathgl matrix without copying it.
func FromMatMxN(m *mgl64.MatMxN) Matrix64 {
	return Matrix64{m: m}
}

type (
	Actor64     = matrix.Actor[float64, Matrix64]
	Transform64 = transform.Transform3[float64, Matrix64]
)

// NewActor64 returns the double precision actor with the default strategies.
func NewActor64() Actor64 {
	return matrix.New[float64, Matrix64](Storage64{})
}

var (
	_ algebra.Storage[float64, Matrix64] = Storage64{}
	_ matrix.Multiplier[Matrix64]        = Storage64{}
)
