package eccnum

import "fmt"

const digitChars = "0123456789abcdef"

// digitValue maps a base-2..16 character to its value, or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// Parse constructs an Int from its string form in the given base. Bases
// 2 through 16 accept an optional leading '-' and per-character digits;
// base 256 reads the bytes of s as a raw big-endian magnitude. Any other
// base returns ErrInvalidBase. Parse round-trips Text for every supported
// base.
func Parse(s string, base int) (Int, error) {
	if base == 256 {
		return FromBytes([]byte(s)), nil
	}
	if base < 2 || base > 16 {
		return Int{}, ErrInvalidBase
	}
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return Int{}, fmt.Errorf("empty base-%d input", base)
	}
	b := NewInt(int64(base))
	acc := Int{}
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			return Int{}, fmt.Errorf("invalid digit %q in base-%d input", s[i], base)
		}
		acc = acc.Mul(b).Add(NewInt(int64(d)))
	}
	if neg {
		acc = acc.Neg()
	}
	return acc, nil
}

// divModSmall divides a magnitude by a single nonzero digit, returning the
// quotient and the remainder digit.
func divModSmall(m []Digit, d Digit) ([]Digit, Digit) {
	out := make([]Digit, len(m))
	rem := uint16(0)
	for i := 0; i < len(m); i++ {
		cur := rem<<digitBits | uint16(m[i])
		out[i] = Digit(cur / uint16(d))
		rem = cur % uint16(d)
	}
	return trim(out), Digit(rem)
}

// Text renders x in the given base, left-padded with zero digits to at
// least minLength characters. Bases 2 through 16 render a leading '-' for
// negative values; base 256 renders the unsigned magnitude as raw bytes.
func (x Int) Text(base int, minLength int) (string, error) {
	if minLength < 1 {
		minLength = 1
	}
	if base == 256 {
		out := x.Digits()
		for len(out) < minLength {
			out = append([]Digit{0}, out...)
		}
		return string(out), nil
	}
	if base < 2 || base > 16 {
		return "", ErrInvalidBase
	}
	var buf []byte
	for v := x.mag; len(v) > 0; {
		var r Digit
		v, r = divModSmall(v, Digit(base))
		buf = append(buf, digitChars[r])
	}
	if len(buf) == 0 {
		buf = append(buf, '0')
	}
	for len(buf) < minLength {
		buf = append(buf, '0')
	}
	// Digits were emitted least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	if x.neg {
		buf = append([]byte{'-'}, buf...)
	}
	return string(buf), nil
}

// String renders x in base 10.
func (x Int) String() string {
	s, _ := x.Text(10, 1)
	return s
}

// FormatBin renders the value in binary, zero-padded to at least size
// characters.
func FormatBin(x Int, size int) string {
	s, _ := x.Text(2, size)
	return s
}

// FormatHex renders the value in hexadecimal, zero-padded to at least size
// characters.
func FormatHex(x Int, size int) string {
	s, _ := x.Text(16, size)
	return s
}

// FormatASCII renders the unsigned magnitude as raw bytes, zero-padded to
// at least size bytes.
func FormatASCII(x Int, size int) string {
	s, _ := x.Text(256, size)
	return s
}
