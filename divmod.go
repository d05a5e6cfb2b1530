package eccnum

// divModMag divides magnitudes by non-recursive long division, most
// significant digit first. Each quotient digit is estimated by binary
// search over trial multiplications of the divisor and corrected by
// subtraction from the running remainder. v must be nonzero.
func divModMag(u, v []Digit) (q, r []Digit) {
	if cmpMag(u, v) < 0 {
		return nil, cloneMag(u)
	}
	q = make([]Digit, len(u))
	var rem []Digit
	for i := 0; i < len(u); i++ {
		// rem = rem*base + next digit
		rem = trim(append(rem, u[i]))
		if cmpMag(rem, v) < 0 {
			continue
		}
		lo, hi := 1, digitMax
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if cmpMag(trim(mulDigit(v, Digit(mid))), rem) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		q[i] = Digit(lo)
		rem = trim(subMag(rem, trim(mulDigit(v, Digit(lo)))))
	}
	return trim(q), rem
}

// DivMod returns the quotient and remainder of x / y under truncating
// division: the quotient sign is the XOR of the operand signs and the
// remainder sign follows the dividend, matching native fixed-width integer
// semantics. Returns ErrDivisionByZero when y is zero.
func (x Int) DivMod(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qm, rm := divModMag(x.mag, y.mag)
	return makeInt(x.neg != y.neg, qm), makeInt(x.neg, rm), nil
}

// Div returns the truncated quotient x / y.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, with the dividend's sign.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}
