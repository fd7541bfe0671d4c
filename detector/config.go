package detector

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind selects the surface parameterization.
type Kind string

const (
	KindCartesian   Kind = "cartesian"
	KindPolar       Kind = "polar"
	KindCylindrical Kind = "cylindrical"
	KindLine        Kind = "line"
)

// Config is the geometry file layout:
//
//	cell_size: 100
//	surfaces:
//	  - id: barrel-0
//	    kind: cylindrical
//	    radius: 32
//	  - id: disc-1
//	    kind: polar
//	    translation: [0, 0, 600]
//	  - id: module-7
//	    kind: cartesian
//	    parent: barrel-0
//	    translation: [32, 0, 0]
//	    z: [1, 0, 0]
//	    x: [0, 1, 0]
type Config struct {
	// CellSize is the edge of the grid cells Near looks surfaces up in.
	// Defaults to 100.
	CellSize float64         `yaml:"cell_size,omitempty"`
	Surfaces []SurfaceConfig `yaml:"surfaces"`
}

// SurfaceConfig places one surface. Omitted axes default to the global z and x
// axes; given axes are normalized, and x is made orthogonal to z.
type SurfaceConfig struct {
	ID          string     `yaml:"id"`
	Kind        Kind       `yaml:"kind"`
	Parent      string     `yaml:"parent,omitempty"`
	Translation [3]float64 `yaml:"translation,flow"`
	Z           [3]float64 `yaml:"z,flow"`
	X           [3]float64 `yaml:"x,flow"`
	Radius      float64    `yaml:"radius,omitempty"`
}

// Load decodes a geometry from r and builds the detector. Unknown YAML fields
// are rejected.
func Load(r io.Reader) (*Detector, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse geometry: %w", err)
	}
	return New(cfg)
}

// LoadFile reads the geometry file at path.
func LoadFile(path string) (*Detector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Marshal encodes cfg back to YAML.
func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
