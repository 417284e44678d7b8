package ristretto

import (
	"io"

	"github.com/cloudflare/circl/group"
)

// Point is an element of the Ristretto255 prime-order group.
type Point struct {
	v group.Element
}

// Identity returns the group's neutral element.
func Identity() Point {
	return Point{v: gg.Identity()}
}

// BasePoint returns the group's standard generator.
func BasePoint() Point {
	return Point{v: gg.Generator()}
}

// RandomPoint samples a uniformly random group element.
func RandomPoint(rng io.Reader) Point {
	return Point{v: gg.RandomElement(rng)}
}

// HashToPoint derives a group element deterministically from label via the
// group's cryptographic hash-to-group function. Two different labels yield
// independent-looking generators with no known discrete-log relation.
func HashToPoint(label string) Point {
	return Point{v: gg.HashToElement([]byte(label), []byte("svmzkp-generator"))}
}

// MulBase returns s*G, where G is the group generator.
func MulBase(s Scalar) Point {
	e := gg.NewElement()
	e.MulGen(s.v)
	return Point{v: e}
}

// PointSetBytes decompresses a canonical 32-byte point encoding.
func PointSetBytes(b []byte) (Point, error) {
	e := gg.NewElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return Point{}, err
	}
	return Point{v: e}, nil
}

// Add returns x + y.
func (x Point) Add(y Point) Point {
	e := gg.NewElement()
	e.Add(x.v, y.v)
	return Point{v: e}
}

// Sub returns x - y.
func (x Point) Sub(y Point) Point {
	return x.Add(y.Neg())
}

// Neg returns -x.
func (x Point) Neg() Point {
	e := gg.NewElement()
	e.Neg(x.v)
	return Point{v: e}
}

// Mul returns s*x.
func (x Point) Mul(s Scalar) Point {
	e := gg.NewElement()
	e.Mul(x.v, s.v)
	return Point{v: e}
}

// IsIdentity reports whether x is the group's neutral element.
func (x Point) IsIdentity() bool {
	return x.v.IsIdentity()
}

// Equal reports whether x == y.
func (x Point) Equal(y Point) bool {
	return x.v.IsEqual(y.v)
}

// Bytes returns the canonical 32-byte compressed encoding of x.
func (x Point) Bytes() []byte {
	b, err := x.v.MarshalBinary()
	if err != nil {
		panic("ristretto: point marshal failed")
	}
	return b
}

func (x Point) String() string {
	return x.v.String()
}

// MultiMul computes the multi-scalar multiplication Σ scalars[i]*points[i].
// len(scalars) must equal len(points); panics otherwise, mirroring the
// teacher's vector-length invariant checks (caller bug, not untrusted
// input — callers reach this only after generator-length validation).
func MultiMul(scalars []Scalar, points []Point) Point {
	if len(scalars) != len(points) {
		panic("ristretto: MultiMul length mismatch")
	}
	acc := gg.Identity()
	for i := range scalars {
		term := gg.NewElement()
		term.Mul(points[i].v, scalars[i].v)
		acc.Add(acc, term)
	}
	return Point{v: acc}
}
