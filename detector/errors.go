package detector

import "errors"

// Sentinel errors returned by Load and the conversion methods. They are
// wrapped with the offending surface id; match them with errors.Is.
var (
	// ErrUnknownKind is returned for a surface kind other than cartesian, polar,
	// cylindrical or line.
	ErrUnknownKind = errors.New("detector: unknown surface kind")

	// ErrDuplicateSurface is returned when two surfaces share an id, or an id is
	// empty.
	ErrDuplicateSurface = errors.New("detector: duplicate surface id")

	// ErrDegenerateBasis is returned when z is zero or x is parallel to z.
	ErrDegenerateBasis = errors.New("detector: degenerate surface axes")

	// ErrRadius is returned for a cylinder without a positive radius.
	ErrRadius = errors.New("detector: cylinder radius must be positive")

	// ErrUnknownSurface is returned for an id no surface was loaded with,
	// including a parent that is referenced before it is defined.
	ErrUnknownSurface = errors.New("detector: unknown surface id")

	// ErrDirection is returned when a line surface gets a reference direction
	// that is zero or parallel to its wire.
	ErrDirection = errors.New("detector: direction parallel to wire")

	// ErrCellSize is returned for a negative or non-finite lookup cell size.
	ErrCellSize = errors.New("detector: invalid cell size")
)
