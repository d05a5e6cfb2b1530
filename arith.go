package eccnum

// addMag returns a + b on magnitudes, carrying digit by digit from the
// least significant end.
func addMag(a, b []Digit) []Digit {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Digit, len(a)+1)
	carry := uint16(0)
	for i := 0; i < len(a); i++ {
		s := carry + uint16(a[len(a)-1-i])
		if i < len(b) {
			s += uint16(b[len(b)-1-i])
		}
		out[len(out)-1-i] = Digit(s)
		carry = s >> digitBits
	}
	out[0] = Digit(carry)
	return out
}

// subMag returns a - b on magnitudes. The caller must ensure a >= b.
func subMag(a, b []Digit) []Digit {
	out := make([]Digit, len(a))
	borrow := int16(0)
	for i := 0; i < len(a); i++ {
		d := int16(a[len(a)-1-i]) - borrow
		if i < len(b) {
			d -= int16(b[len(b)-1-i])
		}
		borrow = 0
		if d < 0 {
			d += digitMax + 1
			borrow = 1
		}
		out[len(out)-1-i] = Digit(d)
	}
	return out
}

// Add returns x + y. Same-sign operands sum their magnitudes; opposite
// signs subtract the smaller magnitude from the larger, the result taking
// the larger operand's sign. Equal magnitudes of opposite sign cancel to
// canonical zero.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, addMag(x.mag, y.mag))
	}
	switch cmpMag(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.neg, subMag(x.mag, y.mag))
	default:
		return makeInt(y.neg, subMag(y.mag, x.mag))
	}
}

// Sub returns x - y, defined as x + (-y).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}
