// Package algebra holds the small value types and the backend contract shared by
// every part of the detector geometry core.
//
// The core is split in layers:
//
//   - algebra (this package): Scalar, Vector2/Vector3, Point2/Point3, the Matrix
//     element access contract and the Storage contract a backend implements.
//   - matrix: the Matrix Actor (determinant, inverse, identity, block, products)
//     written once against the contract, with pluggable determinant and inverse
//     strategies dispatched by matrix size.
//   - transform: Transform3, a rigid rotation+translation stored as a 4x4
//     homogeneous matrix, converting points and vectors between a surface's
//     local frame and the global frame.
//   - coordinate: the cartesian2, polar2, cylindrical2 and line2 projectors that
//     map a local 3D point onto a 2D surface parameterization and back.
//
// Concrete storage lives under storage/: array (plain slices), simd (viterin/vek),
// mgl (go-gl/mathgl) and dense (gonum). Each one instantiates the same actor,
// transform and projectors.
//
// Shapes are carried by matrix values, not by the type system. Asking for the
// determinant of a 2x3 matrix, or multiplying matrices whose inner dimensions
// differ, is a programmer error and panics with ErrSquare or ErrShape.
// Inverting a singular matrix does not panic: the result holds ±Inf/NaN, and callers
// that need safety check Determinant first.
package algebra
