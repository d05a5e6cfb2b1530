package eccnum

import "errors"

// Errors returned by the integer engine and the field-element layer. Every
// operation either succeeds and returns a canonical value or fails with one
// of these; operands are never mutated on failure.
var (
	// ErrDivisionByZero is returned by division, modulus, and modular
	// exponentiation when the divisor or modulus is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidBase is returned when a base outside 2-16 and 256 is passed
	// to a base-dependent constructor or renderer.
	ErrInvalidBase = errors.New("base must be between 2 and 16, or 256")

	// ErrLogDomain is returned by Log for a non-positive value or a base
	// below 2.
	ErrLogDomain = errors.New("log domain error")

	// ErrValueOutOfRange is returned by NewFieldElement when the value does
	// not lie in [0, prime).
	ErrValueOutOfRange = errors.New("field element value out of range")

	// ErrIncompatibleField is returned by binary field operations on
	// elements with different primes.
	ErrIncompatibleField = errors.New("operands belong to different fields")

	// ErrUndefinedInverse is returned when dividing by a field element
	// whose value is zero.
	ErrUndefinedInverse = errors.New("inverse of zero field element is undefined")
)
