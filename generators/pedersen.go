// Package generators builds the Pedersen commitment bases and the
// bulletproof generator vectors used by every proof in this module. It
// mirrors the teacher's util.PedersenCommit (scalar form) and
// bulletproofs.commitVector (vector form), generalized from the teacher's
// hardcoded p256 MapToGroup seeds to Ristretto255's HashToElement.
package generators

import (
	"fmt"

	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
)

// PedersenScalar is the (B, B_blinding) generator pair used to commit to a
// single scalar: commit(v, r) = v*B + r*B_blinding.
type PedersenScalar struct {
	B         ristretto.Point
	BBlinding ristretto.Point
}

// NewPedersenScalar derives a scalar-commitment generator pair deterministically
// from label, so any party reproduces it exactly.
func NewPedersenScalar(label string) PedersenScalar {
	return PedersenScalar{
		B:         ristretto.HashToPoint(label + "-B"),
		BBlinding: ristretto.HashToPoint(label + "-B_blinding"),
	}
}

// Commit returns v*B + r*B_blinding.
func (g PedersenScalar) Commit(v, r ristretto.Scalar) ristretto.Point {
	return g.B.Mul(v).Add(g.BBlinding.Mul(r))
}

// PedersenVector is the (B[0..n], B_blinding) generator set used to commit
// to a vector: commit(v, r) = r*B_blinding + Σ v[i]*B[i].
type PedersenVector struct {
	B         []ristretto.Point
	BBlinding ristretto.Point
}

// NewPedersenVector derives n independent vector-commitment bases plus a
// shared blinding base, all deterministic functions of label.
func NewPedersenVector(label string, n int) PedersenVector {
	b := make([]ristretto.Point, n)
	for i := 0; i < n; i++ {
		b[i] = ristretto.HashToPoint(fmt.Sprintf("%s-B-%d", label, i))
	}
	return PedersenVector{
		B:         b,
		BBlinding: ristretto.HashToPoint(label + "-B_blinding"),
	}
}

// FromScalar lifts a PedersenScalar to the singleton vector case: a vector
// generator set of length 1 whose single base is the scalar form's B.
// Spec.md §8 property 7 requires this conversion to produce commitments
// equal to the scalar form's on single-element vectors, which holds here by
// construction (same B, same B_blinding).
func FromScalar(g PedersenScalar) PedersenVector {
	return PedersenVector{B: []ristretto.Point{g.B}, BBlinding: g.BBlinding}
}

// Commit returns r*B_blinding + Σ v[i]*B[i]. len(v) must equal len(g.B).
func (g PedersenVector) Commit(v []ristretto.Scalar, r ristretto.Scalar) (ristretto.Point, error) {
	if len(v) != len(g.B) {
		return ristretto.Point{}, errs.New(errs.InvalidGeneratorsLength,
			"commit: vector length %d does not match %d generators", len(v), len(g.B))
	}
	acc := g.BBlinding.Mul(r)
	for i := range v {
		acc = acc.Add(g.B[i].Mul(v[i]))
	}
	return acc, nil
}

// Iterate returns a new generator set whose first k bases are rotated one
// step to the right, B[k:] left untouched: B'[0] = B[k-1], B'[i] = B[i-1]
// for i in [1,k). Iterate(1) is therefore the identity (spec.md §8 property
// 7), and Iterate(n) on a length-n vector rotates the whole vector by one.
//
// This is the "adjacent-difference" view spec.md §4.6 uses: committing the
// same vector under B and under Iterate(n) lets the difference of the two
// commitments certify the cyclic adjacent-difference vector.
func (g PedersenVector) Iterate(k int) PedersenVector {
	n := len(g.B)
	rotated := make([]ristretto.Point, n)
	copy(rotated, g.B)
	if k > 0 {
		rotated[0] = g.B[k-1]
		for i := 1; i < k; i++ {
			rotated[i] = g.B[i-1]
		}
	}
	return PedersenVector{B: rotated, BBlinding: g.BBlinding}
}

// ScalarBase collapses a vector generator set to the scalar-commitment base
// whose B is the sum of every per-index base: Σ g.B[i]. This is what lets a
// commitment under g (e.g. Σ m[i]*B[i] + r*B_blinding) and a scalar
// commitment under ScalarBase() (e.g. s*ΣB[i] + r'*B_blinding) combine in a
// single closed-form linear combination — the trick the variance composite
// (spec.md §4.6) relies on to make its A-commitment verifier-recomputable.
func (g PedersenVector) ScalarBase() PedersenScalar {
	acc := g.B[0]
	for _, b := range g.B[1:] {
		acc = acc.Add(b)
	}
	return PedersenScalar{B: acc, BBlinding: g.BBlinding}
}

// RemoveBase returns a new generator set with the bases at idxs struck out,
// reducing the length by the number of distinct indices in idxs (spec.md §8
// property 7). idxs need not be sorted or unique-checked by the caller;
// duplicates remove the same index only once.
func (g PedersenVector) RemoveBase(idxs ...int) PedersenVector {
	drop := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		drop[i] = true
	}
	kept := make([]ristretto.Point, 0, len(g.B)-len(drop))
	for i, b := range g.B {
		if !drop[i] {
			kept = append(kept, b)
		}
	}
	return PedersenVector{B: kept, BBlinding: g.BBlinding}
}
