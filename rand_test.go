package eccnum

import (
	"crypto/hmac"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// hmacDRBG is a deterministic byte stream for property tests, an
// HMAC-SHA256 generator in the RFC 6979 style. Seeded tests reproduce
// exactly across runs.
type hmacDRBG struct {
	k [32]byte
	v [32]byte
}

func newDRBG(seed []byte) *hmacDRBG {
	d := &hmacDRBG{}
	for i := range d.v {
		d.v[i] = 0x01
	}
	mac := hmac.New(sha256simd.New, d.k[:])
	mac.Write(d.v[:])
	mac.Write([]byte{0x00})
	mac.Write(seed)
	copy(d.k[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, d.k[:])
	mac.Write(d.v[:])
	copy(d.v[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, d.k[:])
	mac.Write(d.v[:])
	mac.Write([]byte{0x01})
	mac.Write(seed)
	copy(d.k[:], mac.Sum(nil))

	mac = hmac.New(sha256simd.New, d.k[:])
	mac.Write(d.v[:])
	copy(d.v[:], mac.Sum(nil))
	return d
}

func (d *hmacDRBG) generate(out []byte) {
	for filled := 0; filled < len(out); {
		mac := hmac.New(sha256simd.New, d.k[:])
		mac.Write(d.v[:])
		copy(d.v[:], mac.Sum(nil))
		filled += copy(out[filled:], d.v[:])
	}
}

// bytes returns n deterministic bytes.
func (d *hmacDRBG) bytes(n int) []byte {
	out := make([]byte, n)
	d.generate(out)
	return out
}

// randInt returns a deterministic Int of up to maxDigits digits with a
// deterministic sign.
func (d *hmacDRBG) randInt(maxDigits int) Int {
	var hdr [2]byte
	d.generate(hdr[:])
	n := int(hdr[0])%maxDigits + 1
	x := FromBytes(d.bytes(n))
	if hdr[1]&1 == 1 {
		return x.Neg()
	}
	return x
}

// toBig converts an Int to the math/big oracle representation.
func toBig(x Int) *big.Int {
	b := new(big.Int).SetBytes(x.Digits())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// fromBig converts a math/big value to an Int.
func fromBig(b *big.Int) Int {
	return FromDigits(b.Bytes(), b.Sign() < 0)
}
