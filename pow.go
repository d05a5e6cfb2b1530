package eccnum

// Pow returns base**exp by square-and-multiply, O(log exp) multiplications.
// A negative exponent yields zero, mirroring floor semantics for the
// unsupported case; it is not an inverse.
func Pow(base, exp Int) Int {
	if exp.Sign() < 0 {
		return Int{}
	}
	result := NewInt(1)
	for !exp.IsZero() {
		if exp.Bit(0) {
			result = result.Mul(base)
		}
		exp = exp.Rsh(1)
		base = base.Mul(base)
	}
	return result
}

// PowMod returns base**exp mod modulus, reducing after every step of the
// square-and-multiply loop. Returns ErrDivisionByZero for a zero modulus.
// A negative exponent yields zero, as in Pow. The reduction is the
// truncating one, so a negative base can produce a negative residue.
func PowMod(base, exp, modulus Int) (Int, error) {
	if modulus.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	if exp.Sign() < 0 {
		return Int{}, nil
	}
	result := NewInt(1)
	for !exp.IsZero() {
		if exp.Bit(0) {
			result, _ = result.Mul(base).Mod(modulus)
		}
		exp = exp.Rsh(1)
		base, _ = base.Mul(base).Mod(modulus)
	}
	return result, nil
}

// Log counts how many divisions by base bring value to zero, which is the
// base-`base` digit count of value, floor(log_base(value)) + 1. Returns
// ErrLogDomain when value is non-positive or base is below 2.
func Log(value, base Int) (Int, error) {
	if value.Sign() <= 0 || base.Cmp(NewInt(2)) < 0 {
		return Int{}, ErrLogDomain
	}
	count := Int{}
	for !value.IsZero() {
		value, _ = value.Div(base)
		count = count.Add(NewInt(1))
	}
	return count, nil
}
