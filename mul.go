package eccnum

import "math"

// fftThreshold is the digit count above which Mul switches from the
// schoolbook path to the FFT path. Both operands must reach it.
const fftThreshold = 32

// Mul returns x * y. The product's sign is the XOR of the operand signs;
// multiplying by zero yields canonical zero. Large operands take the
// FFT-based convolution path, small ones the schoolbook path; the two agree
// bit for bit.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	var mag []Digit
	if len(x.mag) >= fftThreshold && len(y.mag) >= fftThreshold {
		mag = fftMulMag(x.mag, y.mag)
	} else {
		mag = mulMag(x.mag, y.mag)
	}
	return makeInt(x.neg != y.neg, mag)
}

// mulMag is schoolbook multiplication on magnitudes, O(n*m) digit products
// with carries deferred to a final normalization pass.
func mulMag(a, b []Digit) []Digit {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	acc := make([]uint32, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		ai := uint32(a[i])
		if ai == 0 {
			continue
		}
		carry := uint32(0)
		for j := len(b) - 1; j >= 0; j-- {
			t := acc[i+j+1] + ai*uint32(b[j]) + carry
			acc[i+j+1] = t & digitMax
			carry = t >> digitBits
		}
		acc[i] += carry
	}
	out := make([]Digit, len(acc))
	carry := uint32(0)
	for k := len(acc) - 1; k >= 0; k-- {
		t := acc[k] + carry
		out[k] = Digit(t)
		carry = t >> digitBits
	}
	return out
}

// mulDigit multiplies a magnitude by a single digit.
func mulDigit(a []Digit, d Digit) []Digit {
	out := make([]Digit, len(a)+1)
	carry := uint16(0)
	for i := len(a) - 1; i >= 0; i-- {
		t := uint16(a[i])*uint16(d) + carry
		out[i+1] = Digit(t)
		carry = t >> digitBits
	}
	out[0] = Digit(carry)
	return out
}

// fft is an in-place iterative radix-2 Cooley-Tukey transform. The length
// of a must be a power of two. invert selects the inverse transform, which
// also divides by the length.
func fft(a []complex128, invert bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wl := complex(math.Cos(ang), math.Sin(ang))
		half := length >> 1
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
				w *= wl
			}
		}
	}
	if invert {
		inv := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= inv
		}
	}
}

// fftMulMag multiplies magnitudes by the convolution theorem: transform
// both digit sequences, multiply pointwise, invert, then round each
// coefficient to the nearest integer and propagate carries to recover the
// digit sequence. Rounding to nearest absorbs the transform's accumulated
// floating-point error; coefficients stay well inside float64's exact
// integer range for any operand size the 8-bit digit base permits.
func fftMulMag(a, b []Digit) []Digit {
	n := 1
	for n < len(a)+len(b) {
		n <<= 1
	}
	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i := 0; i < len(a); i++ {
		fa[i] = complex(float64(a[len(a)-1-i]), 0)
	}
	for i := 0; i < len(b); i++ {
		fb[i] = complex(float64(b[len(b)-1-i]), 0)
	}
	fft(fa, false)
	fft(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	// Coefficients are in least-significant-first order; carry across them
	// to bring every digit back under the base.
	out := make([]Digit, len(a)+len(b))
	carry := uint64(0)
	for i := 0; i < n; i++ {
		r := math.Round(real(fa[i]))
		if r < 0 {
			r = 0
		}
		v := uint64(r) + carry
		if i < len(out) {
			out[len(out)-1-i] = Digit(v)
		}
		carry = v >> digitBits
	}
	return out
}
