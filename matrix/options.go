package matrix

import "github.com/akmonengine/algebra"

// Option configures an Actor built by New.
type Option[T algebra.Scalar, M algebra.Matrix[T]] func(*Actor[T, M])

// WithDeterminant replaces the determinant strategies. Order is priority:
// the first strategy handling a size is used for it.
func WithDeterminant[T algebra.Scalar, M algebra.Matrix[T]](strategies ...DeterminantStrategy[T, M]) Option[T, M] {
	return func(a *Actor[T, M]) {
		a.determinant = Determinants[T, M](strategies)
	}
}

// WithInverse replaces the inverse strategies, with the same priority rule as
// WithDeterminant.
func WithInverse[T algebra.Scalar, M algebra.Matrix[T]](strategies ...InverseStrategy[T, M]) Option[T, M] {
	return func(a *Actor[T, M]) {
		a.inverse = Inverses[T, M](strategies)
	}
}

// DefaultDeterminants is the standard preset: closed forms for 2x2 and 4x4,
// cofactor expansion for everything else.
func DefaultDeterminants[T algebra.Scalar, M algebra.Matrix[T]](storage algebra.Storage[T, M]) Determinants[T, M] {
	return Determinants[T, M]{HardCoded(storage, 2, 4), Cofactor(storage)}
}

// DefaultInverses mirrors DefaultDeterminants for inversion.
func DefaultInverses[T algebra.Scalar, M algebra.Matrix[T]](storage algebra.Storage[T, M]) Inverses[T, M] {
	return Inverses[T, M]{HardCoded(storage, 2, 4), Cofactor(storage)}
}
