package mgl

import (
	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Matrix32 is a single precision matrix backed by *mgl32.MatMxN.
type Matrix32 struct {
	m *mgl32.MatMxN
}

func (m Matrix32) Rows() int { return m.m.NumRows() }
func (m Matrix32) Cols() int { return m.m.NumCols() }

func (m Matrix32) At(row, col int) float32 {
	return m.m.At(row, col)
}

func (m Matrix32) Set(row, col int, v float32) {
	m.m.Set(row, col, v)
}

func (m Matrix32) MatMxN() *mgl32.MatMxN {
	return m.m
}

// Storage32 creates Matrix32 values.
type Storage32 struct{}

func (Storage32) New(rows, cols int) Matrix32 {
	m := mgl32.NewMatrix(rows, cols)
	m.Zero(rows, cols)
	return Matrix32{m: m}
}

func (s Storage32) Block(m Matrix32, row, col, rows, cols int) Matrix32 {
	out := s.New(rows, cols)
	for i := range rows {
		for j := range cols {
			out.Set(i, j, m.At(row+i, col+j))
		}
	}
	return out
}

func (Storage32) Add(a, b Matrix32) Matrix32 {
	return Matrix32{m: a.m.Add(nil, b.m)}
}

func (Storage32) Scale(m Matrix32, s float32) Matrix32 {
	return Matrix32{m: m.m.Mul(nil, s)}
}

func (Storage32) Mul(a, b Matrix32) Matrix32 {
	return Matrix32{m: a.m.MulMxN(nil, b.m)}
}

func (Storage32) Transpose(m Matrix32) Matrix32 {
	return Matrix32{m: m.m.Transpose(nil)}
}

type (
	Actor32     = matrix.Actor[float32, Matrix32]
	Transform32 = transform.Transform3[float32, Matrix32]
)

func NewActor32() Actor32 {
	return matrix.New[float32, Matrix32](Storage32{})
}

// Vec3x32 converts an algebra vector to mathgl.
func Vec3x32(v algebra.Vector3[float32]) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

var (
	_ algebra.Storage[float32, Matrix32] = Storage32{}
	_ matrix.Transposer[Matrix32]        = Storage32{}
)
