// Package svm implements the composite "SVM evaluation" proofs of spec.md
// §4.6: sum-as-inner-product, adjacent-difference, variance, and standard
// deviation. Each composite reduces to a handful of ipzk/sigma invocations
// plus deterministic commitment algebra, grounded the same way the
// teacher's voteproof package sequences several sigma checks behind one
// higher-level Prove/Verify pair (voteproof/voteproof.go).
package svm

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ipzk"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

func allOnes(n int) []ristretto.Scalar {
	one := ristretto.ScalarFromUint64(1)
	out := make([]ristretto.Scalar, n)
	for i := range out {
		out[i] = one
	}
	return out
}

func sumScalars(m []ristretto.Scalar) ristretto.Scalar {
	acc := ristretto.NewScalar()
	for _, v := range m {
		acc = acc.Add(v)
	}
	return acc
}

// SumProof proves that the claimed sum s equals the sum of hidden vector m,
// by casting the sum as <m, all-ones>.
type SumProof struct {
	IPZK ipzk.Proof
}

// ProveSum computes s = Σ m[i] and proves it via the inner-product ZK
// proof with rhs fixed to the all-ones vector. sBlinding blinds the
// returned commitment to s; aBlinding blinds the proof's internal
// A-commitment to m (independent of whatever blinding m is committed under
// elsewhere, e.g. in the diff composite).
func ProveSum(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	m []ristretto.Scalar, sBlinding, aBlinding ristretto.Scalar, rng io.Reader) (SumProof, ristretto.Point, error) {
	s := sumScalars(m)
	proof, S, err := ipzk.ProveSingle(bp, pc, tr, s, m, allOnes(len(m)), sBlinding, aBlinding, rng)
	if err != nil {
		return SumProof{}, ristretto.Point{}, err
	}
	return SumProof{IPZK: proof}, S, nil
}

// VerifySum checks the sum-as-inner-product proof against S (the
// commitment to the claimed sum) for a vector of length n.
func (p SumProof) VerifySum(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	S ristretto.Point, n int, rng io.Reader) error {
	if n <= 0 {
		return errs.New(errs.InvalidGeneratorsLength, "svm: sum proof requires a non-empty vector")
	}
	return p.IPZK.VerifySingle(bp, pc, tr, S, n, rng)
}
