package eccnum

// Int is an arbitrary-precision signed integer in sign-magnitude form,
// ported from the integer engine of the ecc_lib C++ library.
//
// The magnitude is a sequence of base-256 digits stored most-significant
// digit first and kept canonical: no leading zero digits, and zero is always
// positive with an empty magnitude. The zero value of Int is the integer 0.
//
// Ints have value semantics. Every operation returns a new Int backed by
// freshly allocated storage; no two Ints ever share a magnitude.
type Int struct {
	neg bool
	mag []Digit
}

// Digit is one unit of the internal base-256 representation.
type Digit = byte

const (
	digitBits = 8
	digitMax  = 0xFF
)

// trim removes leading zero digits, reducing the magnitude to canonical
// minimal form. The zero magnitude trims to an empty slice.
func trim(mag []Digit) []Digit {
	i := 0
	for i < len(mag) && mag[i] == 0 {
		i++
	}
	return mag[i:]
}

func cloneMag(mag []Digit) []Digit {
	if len(mag) == 0 {
		return nil
	}
	out := make([]Digit, len(mag))
	copy(out, mag)
	return out
}

// makeInt builds a canonical Int from a sign and an untrimmed magnitude.
// The magnitude must not be retained by the caller.
func makeInt(neg bool, mag []Digit) Int {
	mag = trim(mag)
	if len(mag) == 0 {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// NewInt creates an Int from a native signed integer. All narrower signed
// widths convert through int64 at the call site; this is the only signed
// conversion boundary.
func NewInt(v int64) Int {
	if v == 0 {
		return Int{}
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = ^u + 1
	}
	return Int{neg: neg, mag: magFromUint(u)}
}

// NewUint creates an Int from a native unsigned integer.
func NewUint(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{mag: magFromUint(v)}
}

func magFromUint(u uint64) []Digit {
	var buf [8]Digit
	for i := 7; i >= 0; i-- {
		buf[i] = Digit(u)
		u >>= digitBits
	}
	return cloneMag(trim(buf[:]))
}

// FromBytes creates a non-negative Int from a big-endian byte sequence, the
// base-256 form of the string constructor.
func FromBytes(b []byte) Int {
	return makeInt(false, cloneMag(b))
}

// FromDigits creates an Int from a raw digit sequence, most-significant
// digit first, with an explicit sign. A zero magnitude ignores the sign.
func FromDigits(digits []Digit, negative bool) Int {
	return makeInt(negative, cloneMag(digits))
}

// FoldDigits folds a sequence of base-B digit values into an Int via
// repeated acc = acc*base | digit, treating the input as a positive value.
// Returns ErrInvalidBase when base is below 2.
func FoldDigits(vals []uint8, base Int) (Int, error) {
	if base.Cmp(NewInt(2)) < 0 {
		return Int{}, ErrInvalidBase
	}
	acc := Int{}
	for _, v := range vals {
		acc = acc.Mul(base).Or(NewUint(uint64(v)))
	}
	return acc, nil
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// Sign returns -1 for negative x, 0 for zero, and 1 for positive x.
func (x Int) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// cmpMag compares two trimmed magnitudes, ignoring sign.
func cmpMag(a, b []Digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1 when x < y, 0 when equal, and 1 when
// x > y. Sign is compared first, then magnitude length, then digits from the
// most significant end.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag, y.mag)
	if xs < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y have the same sign and magnitude.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Bit returns bit i of the magnitude, where bit 0 is the least significant.
func (x Int) Bit(i int) bool {
	if i < 0 {
		return false
	}
	d := len(x.mag) - 1 - i/digitBits
	if d < 0 {
		return false
	}
	return x.mag[d]>>(uint(i)%digitBits)&1 == 1
}

// BitLen returns the minimal number of bits needed to hold the magnitude.
// BitLen of zero is 0.
func (x Int) BitLen() int {
	if len(x.mag) == 0 {
		return 0
	}
	n := (len(x.mag) - 1) * digitBits
	for top := x.mag[0]; top != 0; top >>= 1 {
		n++
	}
	return n
}

// ByteLen returns the minimal number of bytes needed to hold the magnitude.
func (x Int) ByteLen() int {
	return len(x.mag)
}

// DigitLen returns the number of digits in the internal representation.
// With 8-bit digits this equals ByteLen.
func (x Int) DigitLen() int {
	return len(x.mag)
}

// Digits returns a copy of the internal digit sequence, most-significant
// digit first. The result is empty for zero.
func (x Int) Digits() []Digit {
	return cloneMag(x.mag)
}

// Uint64 returns the low 64 bits of the magnitude, a truncating cast.
func (x Int) Uint64() uint64 {
	var u uint64
	start := 0
	if len(x.mag) > 8 {
		start = len(x.mag) - 8
	}
	for _, d := range x.mag[start:] {
		u = u<<digitBits | uint64(d)
	}
	return u
}

// Int64 returns the low 64 bits of the magnitude with the sign applied,
// a truncating cast.
func (x Int) Int64() int64 {
	v := int64(x.Uint64())
	if x.neg {
		v = -v
	}
	return v
}

// Neg returns -x. Negating zero returns zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, mag: cloneMag(x.mag)}
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	return Int{mag: cloneMag(x.mag)}
}
