// Package ristretto wraps the cloudflare/circl Ristretto255 group so the
// rest of this module never touches circl's generic group.Group interface
// directly. This mirrors the teacher's own group/ristretto255.go adapter,
// trimmed to exactly the scalar and point operations the proof layer needs.
package ristretto

import (
	"io"
	"math/big"

	"github.com/cloudflare/circl/group"
)

// gg is the single Ristretto255 group instance every Scalar/Point is drawn
// from. Ristretto255 is a prime-order group; q below is that prime order.
var gg = group.Ristretto255

// Order is the prime order q of the Ristretto255 scalar field.
var Order = mustOrder()

func mustOrder() *big.Int {
	n, ok := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
	if !ok {
		panic("ristretto: failed to parse group order")
	}
	return n
}

// Scalar is an element of the prime field of order q.
type Scalar struct {
	v group.Scalar
}

// NewScalar returns the additive identity (zero) scalar.
func NewScalar() Scalar {
	return Scalar{v: gg.NewScalar()}
}

// RandomScalar samples a uniformly random scalar from rng.
func RandomScalar(rng io.Reader) Scalar {
	s := gg.NewScalar()
	s.Random(rng)
	return Scalar{v: s}
}

// ScalarFromUint64 embeds a small non-negative integer as a scalar.
func ScalarFromUint64(n uint64) Scalar {
	s := gg.NewScalar()
	s.SetUint64(n)
	return Scalar{v: s}
}

// ScalarFromBigInt reduces x modulo q and returns the resulting scalar.
func ScalarFromBigInt(x *big.Int) Scalar {
	s := gg.NewScalar()
	s.SetBigInt(x)
	return Scalar{v: s}
}

// ScalarFromWideBytes reduces a (typically 64-byte) digest modulo q. This is
// the reduction `challenge_scalar` performs on the sponge's squeezed output.
func ScalarFromWideBytes(digest []byte) Scalar {
	x := new(big.Int).SetBytes(digest)
	return ScalarFromBigInt(x)
}

// ScalarSetBytes decodes a canonical scalar encoding. It rejects non-
// canonical representations by propagating circl's own validation.
func ScalarSetBytes(b []byte) (Scalar, error) {
	s := gg.NewScalar()
	if err := s.UnmarshalBinary(b); err != nil {
		return Scalar{}, err
	}
	return Scalar{v: s}, nil
}

// Add returns x + y.
func (x Scalar) Add(y Scalar) Scalar {
	s := gg.NewScalar()
	s.Add(x.v, y.v)
	return Scalar{v: s}
}

// Sub returns x - y.
func (x Scalar) Sub(y Scalar) Scalar {
	s := gg.NewScalar()
	s.Sub(x.v, y.v)
	return Scalar{v: s}
}

// Mul returns x * y.
func (x Scalar) Mul(y Scalar) Scalar {
	s := gg.NewScalar()
	s.Mul(x.v, y.v)
	return Scalar{v: s}
}

// Neg returns -x.
func (x Scalar) Neg() Scalar {
	s := gg.NewScalar()
	s.Neg(x.v)
	return Scalar{v: s}
}

// Inv returns the multiplicative inverse of x. x must be non-zero.
func (x Scalar) Inv() Scalar {
	s := gg.NewScalar()
	s.Inv(x.v)
	return Scalar{v: s}
}

// Square returns x * x.
func (x Scalar) Square() Scalar {
	return x.Mul(x)
}

// IsZero reports whether x is the additive identity.
func (x Scalar) IsZero() bool {
	return x.v.IsEqual(gg.NewScalar())
}

// Equal reports whether x == y.
func (x Scalar) Equal(y Scalar) bool {
	return x.v.IsEqual(y.v)
}

// Bytes returns the canonical little-endian encoding of x.
func (x Scalar) Bytes() []byte {
	b, err := x.v.MarshalBinary()
	if err != nil {
		panic("ristretto: scalar marshal failed")
	}
	return b
}

func (x Scalar) String() string {
	return x.v.String()
}
