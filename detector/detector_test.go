package detector

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point2Equal(a, b Point2, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) < tolerance && math.Abs(a[1]-b[1]) < tolerance
}

func point3Equal(a, b Point3, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) < tolerance &&
		math.Abs(a[1]-b[1]) < tolerance &&
		math.Abs(a[2]-b[2]) < tolerance
}

func TestLoadFile(t *testing.T) {
	det, err := LoadFile("testdata/geometry.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"barrel-0", "disc-1", "module-7", "straw-3"}, det.Surfaces())

	s, err := det.Surface("barrel-0")
	require.NoError(t, err)
	assert.Equal(t, KindCylindrical, s.Kind)
	assert.Equal(t, 32.0, s.Radius)
}

func TestConversions(t *testing.T) {
	det, err := LoadFile("testdata/geometry.yaml")
	require.NoError(t, err)

	along := Vector3{0, 1, 0}
	tests := []struct {
		name   string
		id     string
		global Point3
		local  Point2
	}{
		{"disc", "disc-1", Point3{3, 3, 600}, Point2{math.Sqrt(18), math.Pi / 4}},
		{"barrel", "barrel-0", Point3{0, 32, 10}, Point2{32 * math.Pi / 2, 10}},
		{"module on barrel", "module-7", Point3{32, 2, 5}, Point2{2, 5}},
		{"straw positive x", "straw-3", Point3{103, 50, 7}, Point2{7, -3}},
		{"straw negative x", "straw-3", Point3{98, 50, -1}, Point2{-1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, err := det.GlobalToLocal(tt.id, tt.global, along)
			require.NoError(t, err)
			if !point2Equal(local, tt.local, 1e-9) {
				t.Errorf("GlobalToLocal = %v, want %v", local, tt.local)
			}

			global, err := det.LocalToGlobal(tt.id, tt.local, along)
			require.NoError(t, err)
			if !point3Equal(global, tt.global, 1e-9) {
				t.Errorf("LocalToGlobal = %v, want %v", global, tt.global)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"duplicate", "surfaces:\n  - {id: a, kind: polar}\n  - {id: a, kind: cartesian}\n", ErrDuplicateSurface},
		{"missing id", "surfaces:\n  - {kind: polar}\n", ErrDuplicateSurface},
		{"unknown kind", "surfaces:\n  - {id: a, kind: sphere}\n", ErrUnknownKind},
		{"no radius", "surfaces:\n  - {id: a, kind: cylindrical}\n", ErrRadius},
		{"negative radius", "surfaces:\n  - {id: a, kind: cylindrical, radius: -1}\n", ErrRadius},
		{"x along z", "surfaces:\n  - {id: a, kind: polar, z: [0, 0, 1], x: [0, 0, 5]}\n", ErrDegenerateBasis},
		{"parent after child", "surfaces:\n  - {id: a, kind: polar, parent: b}\n  - {id: b, kind: polar}\n", ErrUnknownSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("surfaces:\n  - {id: a, kind: polar, colour: red}\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("surfaces:\n  - {id: a, kind: polar, z: [0, 1]}\n"))
	assert.Error(t, err)
}

func TestEmptyGeometry(t *testing.T) {
	det, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, det.Surfaces())

	_, err = det.GlobalToLocal("nope", Point3{}, Vector3{})
	assert.ErrorIs(t, err, ErrUnknownSurface)
	_, err = det.LocalToGlobal("nope", Point2{}, Vector3{})
	assert.ErrorIs(t, err, ErrUnknownSurface)
}

func TestLineNeedsDirection(t *testing.T) {
	det, err := LoadFile("testdata/geometry.yaml")
	require.NoError(t, err)

	_, err = det.GlobalToLocal("straw-3", Point3{103, 50, 7}, Vector3{0, 0, -1})
	assert.ErrorIs(t, err, ErrDirection)
	_, err = det.LocalToGlobal("straw-3", Point2{1, 1}, Vector3{})
	assert.ErrorIs(t, err, ErrDirection)

	// Other kinds ignore the direction.
	_, err = det.GlobalToLocal("disc-1", Point3{1, 0, 600}, Vector3{})
	assert.NoError(t, err)
}

func TestBasisNormalization(t *testing.T) {
	det, err := New(Config{Surfaces: []SurfaceConfig{
		{ID: "skew", Kind: KindCartesian, Z: [3]float64{0, 0, 4}, X: [3]float64{2, 0, 3}},
		{ID: "sideways", Kind: KindCartesian, Z: [3]float64{-2, 0, 0}},
	}})
	require.NoError(t, err)

	skew, _ := det.Surface("skew")
	assert.Equal(t, Vector3{0, 0, 1}, skew.Transform.Z())
	assert.Equal(t, Vector3{1, 0, 0}, skew.Transform.X())

	sideways, _ := det.Surface("sideways")
	assert.Equal(t, Vector3{-1, 0, 0}, sideways.Transform.Z())
	assert.Equal(t, Vector3{0, 1, 0}, sideways.Transform.X())
}

func TestSurfacePose(t *testing.T) {
	det, err := LoadFile("testdata/geometry.yaml")
	require.NoError(t, err)
	s, err := det.Surface("module-7")
	require.NoError(t, err)

	pose := s.Pose()
	assert.InDelta(t, 32, pose.Position[0], 1e-12)
	// The module's normal is the global x axis.
	normal := pose.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	for i, want := range []float64{1, 0, 0} {
		assert.InDelta(t, want, normal[i], 1e-12)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Config{Surfaces: []SurfaceConfig{
		{ID: "disc", Kind: KindPolar, Translation: [3]float64{0, 0, 10}},
		{ID: "pad", Kind: KindCartesian, Parent: "disc", Translation: [3]float64{5, 0, 0}},
	}}
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "translation: [0, 0, 10]")

	det, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	got, err := det.LocalToGlobal("pad", Point2{1, 1}, Vector3{})
	require.NoError(t, err)
	assert.Equal(t, Point3{6, 1, 10}, got)
}
