package eccnum

import "fmt"

// FieldElement is a residue class modulo a prime: a value in [0, prime)
// together with the prime itself. The primality of the modulus is not
// verified; Div and Pow rely on it via Fermat's little theorem. Elements
// have value semantics and own their integers outright.
type FieldElement struct {
	num   Int
	prime Int
}

// NewFieldElement constructs the element num mod prime. Returns
// ErrValueOutOfRange unless 0 <= num < prime.
func NewFieldElement(num, prime Int) (FieldElement, error) {
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return FieldElement{}, ErrValueOutOfRange
	}
	return FieldElement{num: num.Abs(), prime: prime.Abs()}, nil
}

// Num returns the element's value.
func (a FieldElement) Num() Int {
	return a.num.Abs()
}

// Prime returns the element's modulus.
func (a FieldElement) Prime() Int {
	return a.prime.Abs()
}

// reduce maps x into [0, prime) with a Euclidean reduction. The truncating
// Mod can leave a negative residue for negative x; adding the prime once
// fixes it up.
func (a FieldElement) reduce(x Int) FieldElement {
	r, _ := x.Mod(a.prime)
	if r.Sign() < 0 {
		r = r.Add(a.prime)
	}
	return FieldElement{num: r, prime: a.prime.Abs()}
}

func (a FieldElement) sameField(b FieldElement) bool {
	return a.prime.Equal(b.prime)
}

// Add returns a + b in the field. Returns ErrIncompatibleField when the
// operands' primes differ.
func (a FieldElement) Add(b FieldElement) (FieldElement, error) {
	if !a.sameField(b) {
		return FieldElement{}, ErrIncompatibleField
	}
	return a.reduce(a.num.Add(b.num)), nil
}

// Sub returns a - b in the field. Returns ErrIncompatibleField when the
// operands' primes differ.
func (a FieldElement) Sub(b FieldElement) (FieldElement, error) {
	if !a.sameField(b) {
		return FieldElement{}, ErrIncompatibleField
	}
	return a.reduce(a.num.Sub(b.num)), nil
}

// Mul returns a * b in the field. Returns ErrIncompatibleField when the
// operands' primes differ.
func (a FieldElement) Mul(b FieldElement) (FieldElement, error) {
	if !a.sameField(b) {
		return FieldElement{}, ErrIncompatibleField
	}
	return a.reduce(a.num.Mul(b.num)), nil
}

// MulInt scales the element by an arbitrary integer. No field check is
// needed; the scalar is not a field element.
func (a FieldElement) MulInt(k Int) FieldElement {
	return a.reduce(a.num.Mul(k))
}

// Div returns a / b in the field, multiplying a by the Fermat inverse
// b^(prime-2) mod prime. Returns ErrIncompatibleField when the primes
// differ and ErrUndefinedInverse when b is the zero element.
func (a FieldElement) Div(b FieldElement) (FieldElement, error) {
	if !a.sameField(b) {
		return FieldElement{}, ErrIncompatibleField
	}
	if b.num.IsZero() {
		return FieldElement{}, ErrUndefinedInverse
	}
	inv, err := PowMod(b.num, a.prime.Sub(NewInt(2)), a.prime)
	if err != nil {
		return FieldElement{}, err
	}
	return a.reduce(a.num.Mul(inv)), nil
}

// Pow returns a**e in the field. The exponent is first reduced into
// [0, prime-1), which by Fermat's little theorem preserves the result for
// nonzero elements and gives negative exponents their mathematical meaning
// as inverses. A reduced exponent of zero yields the element 1, including
// for the zero element.
func (a FieldElement) Pow(e Int) FieldElement {
	pm1 := a.prime.Sub(NewInt(1))
	n := Int{}
	if !pm1.IsZero() {
		n, _ = e.Mod(pm1)
		if n.Sign() < 0 {
			n = n.Add(pm1)
		}
	}
	r, _ := PowMod(a.num, n, a.prime)
	return a.reduce(r)
}

// Equal reports whether a and b are the same element of the same field.
// Both the value and the prime must match; comparing only the values would
// conflate elements of different fields.
func (a FieldElement) Equal(b FieldElement) bool {
	return a.num.Equal(b.num) && a.prime.Equal(b.prime)
}

// String renders the element as FieldElement_<prime>(<num>).
func (a FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", a.prime.String(), a.num.String())
}
