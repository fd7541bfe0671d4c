// Package detector places measurement surfaces in the global frame and converts
// points between global coordinates and each surface's 2D local coordinates.
//
// A geometry is read from YAML (see Config). Each surface couples a rigid
// transform with the projector its Kind selects:
//
//	det, err := detector.LoadFile("geometry.yaml")
//	...
//	local, err := det.GlobalToLocal("disc-1", algebra.Point3[float64]{3, 3, 600}, dir)
//
// GlobalToLocalAll converts batches of hits on a worker pool, and Near finds
// the surfaces placed around a point.
//
// Unlike the algebra packages, which panic on programmer errors, this package
// reads user input and returns errors.
package detector

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/storage/mgl"
	"github.com/akmonengine/algebra/transform"
)

// tolerance below which an axis counts as zero.
const tolerance = 1e-12

type (
	Point2  = algebra.Point2[float64]
	Point3  = algebra.Point3[float64]
	Vector3 = algebra.Vector3[float64]
)

// Surface is a placed surface.
type Surface struct {
	ID        string
	Kind      Kind
	Radius    float64
	Transform mgl.Transform64
}

// Detector is an immutable set of surfaces, safe for concurrent use.
type Detector struct {
	surfaces map[string]*Surface
	// ordered holds the surfaces in file order; grid stores indices into it.
	ordered  []*Surface
	grid     *grid
}

// New validates cfg and places its surfaces. Parents must appear before their
// children.
func New(cfg Config) (*Detector, error) {
	actor := mgl.NewActor64()
	cellSize := cfg.CellSize
	switch {
	case cellSize == 0:
		cellSize = defaultCellSize
	case !(cellSize > 0) || math.IsInf(cellSize, 0):
		return nil, fmt.Errorf("cell size %v: %w", cfg.CellSize, ErrCellSize)
	}

	d := &Detector{
		surfaces: make(map[string]*Surface, len(cfg.Surfaces)),
		ordered:  make([]*Surface, 0, len(cfg.Surfaces)),
		grid:     newGrid(cellSize, 2*len(cfg.Surfaces)),
	}

	for i, sc := range cfg.Surfaces {
		if sc.ID == "" {
			return nil, fmt.Errorf("surface %d has no id: %w", i, ErrDuplicateSurface)
		}
		if _, ok := d.surfaces[sc.ID]; ok {
			return nil, fmt.Errorf("surface %q: %w", sc.ID, ErrDuplicateSurface)
		}

		switch sc.Kind {
		case KindCartesian, KindPolar, KindLine:
		case KindCylindrical:
			if !(sc.Radius > 0) {
				return nil, fmt.Errorf("surface %q radius %v: %w", sc.ID, sc.Radius, ErrRadius)
			}
		default:
			return nil, fmt.Errorf("surface %q kind %q: %w", sc.ID, sc.Kind, ErrUnknownKind)
		}

		z, x, err := basis(Vector3(sc.Z), Vector3(sc.X))
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", sc.ID, err)
		}
		tr := transform.New(actor, Point3(sc.Translation), z, x)

		if sc.Parent != "" {
			parent, ok := d.surfaces[sc.Parent]
			if !ok {
				return nil, fmt.Errorf("surface %q parent %q: %w", sc.ID, sc.Parent, ErrUnknownSurface)
			}
			tr = parent.Transform.Compose(tr)
		}

		s := &Surface{ID: sc.ID, Kind: sc.Kind, Radius: sc.Radius, Transform: tr}
		d.surfaces[sc.ID] = s
		d.grid.insert(len(d.ordered), tr.Translation())
		d.ordered = append(d.ordered, s)
	}
	return d, nil
}

// basis fills in default axes and returns unit z and a unit x orthogonal to it.
func basis(z, x Vector3) (Vector3, Vector3, error) {
	if z == (Vector3{}) {
		z = Vector3{0, 0, 1}
	}
	if x == (Vector3{}) {
		x = Vector3{1, 0, 0}
		if n := z.Norm(); n > tolerance && 1-math.Abs(z[0]/n) < tolerance {
			// z along global x: fall back to global y for the default x.
			x = Vector3{0, 1, 0}
		}
	}

	if z.Norm() < tolerance {
		return z, x, ErrDegenerateBasis
	}
	z = z.Normalize()
	x = x.Sub(z.Mul(x.Dot(z)))
	if x.Norm() < tolerance {
		return z, x, ErrDegenerateBasis
	}
	return z, x.Normalize(), nil
}

// Surface returns the surface with the given id.
func (d *Detector) Surface(id string) (*Surface, error) {
	s, ok := d.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("surface %q: %w", id, ErrUnknownSurface)
	}
	return s, nil
}

// Surfaces returns every surface id in ascending order.
func (d *Detector) Surfaces() []string {
	return slices.Sorted(maps.Keys(d.surfaces))
}

// GlobalToLocal converts global point p to the local coordinates of surface id.
// dir is the reference direction signing line distances; other kinds ignore it.
func (d *Detector) GlobalToLocal(id string, p Point3, dir Vector3) (Point2, error) {
	s, err := d.Surface(id)
	if err != nil {
		return Point2{}, err
	}
	return s.GlobalToLocal(p, dir)
}

// LocalToGlobal converts local point p of surface id to global coordinates.
func (d *Detector) LocalToGlobal(id string, p Point2, dir Vector3) (Point3, error) {
	s, err := d.Surface(id)
	if err != nil {
		return Point3{}, err
	}
	return s.LocalToGlobal(p, dir)
}

func (s *Surface) GlobalToLocal(p Point3, dir Vector3) (Point2, error) {
	switch s.Kind {
	case KindCartesian:
		return coordinate.Cartesian2[float64]{}.GlobalToLocal(s.Transform, p), nil
	case KindPolar:
		return coordinate.Polar2[float64]{}.GlobalToLocal(s.Transform, p), nil
	case KindCylindrical:
		return coordinate.Cylindrical2[float64]{}.GlobalToLocal(s.Transform, p), nil
	case KindLine:
		if err := s.checkDirection(dir); err != nil {
			return Point2{}, err
		}
		return coordinate.Line2[float64]{}.GlobalToLocal(s.Transform, p, dir), nil
	}
	return Point2{}, fmt.Errorf("surface %q kind %q: %w", s.ID, s.Kind, ErrUnknownKind)
}

func (s *Surface) LocalToGlobal(p Point2, dir Vector3) (Point3, error) {
	switch s.Kind {
	case KindCartesian:
		return coordinate.Cartesian2[float64]{}.LocalToGlobal(s.Transform, p), nil
	case KindPolar:
		return coordinate.Polar2[float64]{}.LocalToGlobal(s.Transform, p), nil
	case KindCylindrical:
		return coordinate.Cylindrical2[float64]{}.LocalToGlobal(s.Transform, s.Radius, p), nil
	case KindLine:
		if err := s.checkDirection(dir); err != nil {
			return Point3{}, err
		}
		return coordinate.Line2[float64]{}.LocalToGlobal(s.Transform, p, dir), nil
	}
	return Point3{}, fmt.Errorf("surface %q kind %q: %w", s.ID, s.Kind, ErrUnknownKind)
}

// Pose returns the placement as a mathgl position and orientation.
func (s *Surface) Pose() mgl.Pose {
	return mgl.PoseOf(s.Transform)
}

func (s *Surface) checkDirection(dir Vector3) error {
	if s.Transform.Z().Cross(dir).Norm() < tolerance {
		return fmt.Errorf("surface %q direction %v: %w", s.ID, dir, ErrDirection)
	}
	return nil
}
