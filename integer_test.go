package eccnum

import (
	"testing"
)

func TestCanonicalZero(t *testing.T) {
	cases := []struct {
		name string
		x    Int
	}{
		{"zero_value", Int{}},
		{"new_int", NewInt(0)},
		{"new_uint", NewUint(0)},
		{"from_bytes", FromBytes([]byte{0, 0, 0})},
		{"from_digits_negative", FromDigits([]Digit{0, 0}, true)},
		{"negated", NewInt(5).Sub(NewInt(5))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.x.IsZero() {
				t.Fatalf("expected zero, got %s", tc.x)
			}
			if tc.x.Sign() != 0 {
				t.Errorf("zero must have sign 0, got %d", tc.x.Sign())
			}
			if tc.x.DigitLen() != 0 {
				t.Errorf("zero must have empty magnitude, got %d digits", tc.x.DigitLen())
			}
		})
	}
}

func TestTrimLeadingZeros(t *testing.T) {
	x := FromBytes([]byte{0, 0, 1, 2})
	if x.DigitLen() != 2 {
		t.Fatalf("leading zero digits not trimmed: %d digits", x.DigitLen())
	}
	digits := x.Digits()
	if digits[0] != 1 || digits[1] != 2 {
		t.Errorf("wrong digits after trim: %v", digits)
	}
}

func TestConstructionRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 255, 256, -256, 65535, -65536, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		x := NewInt(v)
		if got := x.Int64(); got != v {
			t.Errorf("NewInt(%d).Int64() = %d", v, got)
		}
	}
	uvalues := []uint64{0, 1, 255, 256, 1 << 63, ^uint64(0)}
	for _, v := range uvalues {
		x := NewUint(v)
		if got := x.Uint64(); got != v {
			t.Errorf("NewUint(%d).Uint64() = %d", v, got)
		}
	}
}

func TestCmpOrdering(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{-1, 0, -1},
		{-1, 1, -1},
		{1, -1, 1},
		{-2, -1, -1},
		{-1, -2, 1},
		{256, 255, 1},
		{-256, -255, -1},
		{1 << 30, 1 << 30, 0},
	}
	for _, tc := range cases {
		if got := NewInt(tc.a).Cmp(NewInt(tc.b)); got != tc.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCmpAgainstBig(t *testing.T) {
	drbg := newDRBG([]byte("cmp"))
	for i := 0; i < 200; i++ {
		a := drbg.randInt(20)
		b := drbg.randInt(20)
		want := toBig(a).Cmp(toBig(b))
		if got := a.Cmp(b); got != want {
			t.Fatalf("Cmp(%s, %s) = %d, want %d", a, b, got, want)
		}
	}
}

func TestBitAccessors(t *testing.T) {
	x := NewUint(0b1011_0000_0001)
	wantBits := map[int]bool{0: true, 1: false, 8: true, 9: true, 10: false, 11: true, 12: false}
	for i, want := range wantBits {
		if got := x.Bit(i); got != want {
			t.Errorf("Bit(%d) = %v, want %v", i, got, want)
		}
	}
	if got := x.BitLen(); got != 12 {
		t.Errorf("BitLen = %d, want 12", got)
	}
	if got := x.ByteLen(); got != 2 {
		t.Errorf("ByteLen = %d, want 2", got)
	}
	if got := x.DigitLen(); got != 2 {
		t.Errorf("DigitLen = %d, want 2", got)
	}
	if (Int{}).BitLen() != 0 {
		t.Error("BitLen of zero must be 0")
	}
}

func TestNegAbs(t *testing.T) {
	x := NewInt(-42)
	if x.Neg().Int64() != 42 {
		t.Errorf("Neg(-42) = %s", x.Neg())
	}
	if x.Abs().Int64() != 42 {
		t.Errorf("Abs(-42) = %s", x.Abs())
	}
	if !NewInt(0).Neg().IsZero() {
		t.Error("Neg(0) must stay canonical zero")
	}
}

func TestFoldDigits(t *testing.T) {
	// The fold is acc = acc*base | digit. For power-of-two bases the OR is
	// exact, so base 16 digits assemble into nibbles.
	x, err := FoldDigits([]uint8{1, 2, 3}, NewInt(16))
	if err != nil {
		t.Fatal(err)
	}
	if x.Int64() != 0x123 {
		t.Errorf("FoldDigits base 16 = %s, want 291", x)
	}

	// Base 256 folds bytes exactly.
	y, err := FoldDigits([]uint8{0x12, 0x34, 0x56}, NewInt(256))
	if err != nil {
		t.Fatal(err)
	}
	if y.Uint64() != 0x123456 {
		t.Errorf("FoldDigits base 256 = %s, want 0x123456", y)
	}

	if _, err := FoldDigits([]uint8{1}, NewInt(1)); err != ErrInvalidBase {
		t.Errorf("FoldDigits base 1 error = %v, want ErrInvalidBase", err)
	}
}

func TestValueSemantics(t *testing.T) {
	a := FromBytes([]byte{1, 2, 3})
	b := a.Abs()
	digits := b.Digits()
	digits[0] = 0xFF
	if a.Digits()[0] != 1 {
		t.Error("Digits must return a copy, not the internal magnitude")
	}
	c := a.Add(NewInt(1))
	if a.Uint64() != 0x010203 {
		t.Errorf("Add mutated its receiver: %s", a)
	}
	if c.Uint64() != 0x010204 {
		t.Errorf("Add result wrong: %s", c)
	}
}
