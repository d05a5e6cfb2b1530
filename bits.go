package eccnum

// twosMag returns the two's-complement digit pattern of x over n digits,
// most-significant digit first. n must be at least DigitLen; the extra
// digits are sign extension.
func (x Int) twosMag(n int) []Digit {
	out := make([]Digit, n)
	copy(out[n-len(x.mag):], x.mag)
	if x.neg {
		negateMag(out)
	}
	return out
}

// negateMag applies two's-complement negation (invert, add one) in place.
func negateMag(m []Digit) {
	for i := range m {
		m[i] = ^m[i]
	}
	for i := len(m) - 1; i >= 0; i-- {
		m[i]++
		if m[i] != 0 {
			break
		}
	}
}

// bitwise applies f to the two's-complement patterns of x and y, extended
// one digit past the wider operand so the sign digit is explicit, then
// folds the result back into sign-magnitude form.
func bitwise(x, y Int, f func(a, b Digit) Digit) Int {
	n := len(x.mag)
	if len(y.mag) > n {
		n = len(y.mag)
	}
	n++
	xb := x.twosMag(n)
	yb := y.twosMag(n)
	out := make([]Digit, n)
	for i := range out {
		out[i] = f(xb[i], yb[i])
	}
	if out[0]&(1<<(digitBits-1)) != 0 {
		negateMag(out)
		return makeInt(true, out)
	}
	return makeInt(false, out)
}

// And returns x & y on the implied two's-complement bit patterns.
func (x Int) And(y Int) Int {
	return bitwise(x, y, func(a, b Digit) Digit { return a & b })
}

// Or returns x | y on the implied two's-complement bit patterns.
func (x Int) Or(y Int) Int {
	return bitwise(x, y, func(a, b Digit) Digit { return a | b })
}

// Xor returns x ^ y on the implied two's-complement bit patterns.
func (x Int) Xor(y Int) Int {
	return bitwise(x, y, func(a, b Digit) Digit { return a ^ b })
}

// Not returns ^x, defined as -(x + 1).
func (x Int) Not() Int {
	return x.Add(NewInt(1)).Neg()
}

// Lsh returns x << k: the magnitude multiplied by 2^k, sign preserved.
func (x Int) Lsh(k uint) Int {
	if x.IsZero() {
		return Int{}
	}
	whole, rem := int(k/digitBits), k%digitBits
	out := make([]Digit, len(x.mag)+whole+1)
	copy(out[1:1+len(x.mag)], x.mag)
	if rem > 0 {
		var carry Digit
		for i := len(x.mag); i >= 1; i-- {
			v := uint16(out[i])<<rem | uint16(carry)
			out[i] = Digit(v)
			carry = Digit(v >> digitBits)
		}
		out[0] = carry
	}
	return makeInt(x.neg, out)
}

// Rsh returns x >> k: the magnitude floor-divided by 2^k with the sign
// preserved. This is not an arithmetic two's-complement shift; -1 >> 1 is 0.
func (x Int) Rsh(k uint) Int {
	whole, rem := int(k/digitBits), k%digitBits
	if whole >= len(x.mag) {
		return Int{}
	}
	out := cloneMag(x.mag[:len(x.mag)-whole])
	if rem > 0 {
		var carry Digit
		for i := 0; i < len(out); i++ {
			v := out[i]
			out[i] = v>>rem | carry
			carry = v << (digitBits - rem)
		}
	}
	return makeInt(x.neg, out)
}

// TwosComplement returns the two's-complement digit pattern of x over the
// given number of digits, as a non-negative Int. Patterns wider than the
// magnitude sign-extend; narrower ones truncate to the low digits.
func (x Int) TwosComplement(digits int) Int {
	if digits <= 0 {
		return Int{}
	}
	var out []Digit
	if len(x.mag) >= digits {
		out = cloneMag(x.mag[len(x.mag)-digits:])
		if x.neg {
			negateMag(out)
		}
	} else {
		out = x.twosMag(digits)
	}
	return makeInt(false, out)
}

// Fill returns the value with the given number of digits entirely set,
// 2^(8*digits) - 1.
func Fill(digits int) Int {
	if digits <= 0 {
		return Int{}
	}
	out := make([]Digit, digits)
	for i := range out {
		out[i] = digitMax
	}
	return Int{mag: out}
}
