package transform_test

import (
	"math"
	"testing"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/storage/array"
	"github.com/akmonengine/algebra/transform"
	"github.com/stretchr/testify/assert"
)

type vec3 = algebra.Vector3[float64]

func vec3Equal(a, b vec3, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) < tolerance &&
		math.Abs(a[1]-b[1]) < tolerance &&
		math.Abs(a[2]-b[2]) < tolerance
}

func TestNewBuildsColumns(t *testing.T) {
	a := array.NewActor[float64]()
	tr := transform.New(a, vec3{1, 2, 3}, vec3{0, 0, 1}, vec3{0, 1, 0})

	tests := []struct {
		name string
		got  vec3
		want vec3
	}{
		{"x", tr.X(), vec3{0, 1, 0}},
		{"y is z cross x", tr.Y(), vec3{-1, 0, 0}},
		{"z", tr.Z(), vec3{0, 0, 1}},
		{"translation", tr.Translation(), vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec3Equal(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	m := tr.Matrix()
	for j, want := range []float64{0, 0, 0, 1} {
		if m.At(3, j) != want {
			t.Errorf("bottom row (3,%d) = %v, want %v", j, m.At(3, j), want)
		}
	}
}

func TestPointVersusVector(t *testing.T) {
	a := array.NewActor[float64]()
	// Quarter turn about z, origin at (10, 0, 0).
	tr := transform.New(a, vec3{10, 0, 0}, vec3{0, 0, 1}, vec3{0, 1, 0})

	tests := []struct {
		name string
		got  vec3
		want vec3
	}{
		{"point to global", tr.PointToGlobal(vec3{1, 0, 0}), vec3{10, 1, 0}},
		{"vector to global", tr.VectorToGlobal(vec3{1, 0, 0}), vec3{0, 1, 0}},
		{"point to local", tr.PointToLocal(vec3{10, 1, 0}), vec3{1, 0, 0}},
		{"vector to local", tr.VectorToLocal(vec3{0, 1, 0}), vec3{1, 0, 0}},
		{"origin to local", tr.PointToLocal(vec3{10, 0, 0}), vec3{}},
		{"height is kept", tr.PointToGlobal(vec3{0, 0, 5}), vec3{10, 0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec3Equal(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestComposePlacesNestedFrames(t *testing.T) {
	a := array.NewActor[float64]()
	module := transform.New(a, vec3{100, 0, 0}, vec3{0, 0, 1}, vec3{0, 1, 0})
	sensor := transform.FromTranslation(a, vec3{0, 5, 0})

	world := module.Compose(sensor)
	want := module.PointToGlobal(sensor.PointToGlobal(vec3{1, 2, 3}))
	if got := world.PointToGlobal(vec3{1, 2, 3}); !vec3Equal(got, want, 1e-12) {
		t.Errorf("composed point %v, want %v", got, want)
	}
	// Sensor origin (0,5,0) in the module is (-5,0,0) from the module origin.
	assert.True(t, vec3Equal(world.Translation(), vec3{95, 0, 0}, 1e-12))
}

func TestInverse(t *testing.T) {
	a := array.NewActor[float64]()
	z := vec3{3, 2, 1}.Normalize()
	x := vec3{2, -3, 0}.Normalize()
	tr := transform.New(a, vec3{2, 3, 4}, z, x)
	inv := tr.Inverse()

	assert.True(t, a.ApproxEqual(inv.Matrix(), tr.MatrixInverse(), 1e-12))
	assert.True(t, a.ApproxEqual(a.Identity(4, 4), inv.Compose(tr).Matrix(), 1e-12))
	assert.True(t, vec3Equal(inv.Inverse().Translation(), tr.Translation(), 1e-12))
	assert.InDelta(t, 1.0, a.Determinant(tr.Rotation()), 1e-12)
}

func TestFromArrayIsRowMajor(t *testing.T) {
	a := array.NewActor[float32]()
	tr := transform.FromArray(a, [16]float32{
		1, 0, 0, 4,
		0, 0, -1, 5,
		0, 1, 0, 6,
		0, 0, 0, 1,
	})
	assert.Equal(t, algebra.Vector3[float32]{4, 5, 6}, tr.Translation())
	assert.Equal(t, algebra.Vector3[float32]{0, 0, 1}, tr.Y())
	assert.Equal(t, algebra.Vector3[float32]{0, -1, 0}, tr.Z())
}

func TestFromMatrixCopies(t *testing.T) {
	a := array.NewActor[float64]()
	src := a.Identity(4, 4)
	tr := transform.FromMatrix(a, src)
	src.Set(0, 3, 7)
	assert.Equal(t, vec3{}, tr.Translation())

	// A larger matrix contributes its upper-left 4x4 block.
	big := a.Identity(5, 5)
	big.Set(1, 3, 2)
	assert.Equal(t, vec3{0, 2, 0}, transform.FromMatrix(a, big).Translation())
}

func TestEqual(t *testing.T) {
	a := array.NewActor[float64]()
	p := transform.FromTranslation(a, vec3{1, 0, 0})
	q := transform.FromTranslation(a, vec3{1, 0, 0})
	r := transform.FromTranslation(a, vec3{0, 1, 0})
	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(r))
	assert.True(t, transform.Identity(a).Equal(transform.FromTranslation(a, vec3{})))
}
