package svm

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ipzk"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// VarianceProof proves that a committed value equals the variance of a
// hidden channel vector m relative to its already-committed sum, per
// spec.md §4.6: variance = <u, u> where u[i] = n*m[i] - sum. The embedded
// inner-product ZK proof's A-commitment is never sent as a fresh opening;
// it is pinned in closed form to n*C_m - C_sum (ExpectedA), which both
// parties can recompute from commitments already on the table. This only
// holds when gens was built by generators.VectorFromBulletproof against
// the same bp passed here: gens.ScalarBase's base summing the per-index
// bases (generators.PedersenVector.ScalarBase) lines up the scalar
// coefficients, and gens.B[i] itself being bp.G[i]+bp.H[i] lines up with
// the A-commitment's own G/H-weighted construction inside ipzk.ProveSingle.
type VarianceProof struct {
	IPZK ipzk.Proof
}

func subtractionVector(m []ristretto.Scalar, n, sum ristretto.Scalar) []ristretto.Scalar {
	out := make([]ristretto.Scalar, len(m))
	for i := range m {
		out[i] = n.Mul(m[i]).Sub(sum)
	}
	return out
}

// ExpectedA computes n*cM - cSum, the closed-form A-commitment the
// variance proof's embedded inner-product proof must carry.
func ExpectedA(channelLen int, cM, cSum ristretto.Point) ristretto.Point {
	n := ristretto.ScalarFromUint64(uint64(channelLen))
	return cM.Mul(n).Sub(cSum)
}

// ProveVariance proves that variance, committed under gens.ScalarBase()
// with blinding varBlinding, equals <u, u> for u[i] = n*m[i] - sum.
func ProveVariance(bp generators.BulletproofGens, gens generators.PedersenVector, tr *transcript.Transcript,
	m []ristretto.Scalar, rM ristretto.Scalar, sum, rSum ristretto.Scalar,
	variance, varBlinding ristretto.Scalar, rng io.Reader) (VarianceProof, ristretto.Point, error) {
	channelLen := len(m)
	if channelLen != len(gens.B) {
		return VarianceProof{}, ristretto.Point{}, errs.New(errs.InvalidGeneratorsLength,
			"svm: channel length %d does not match %d generators", channelLen, len(gens.B))
	}
	pc := gens.ScalarBase()

	nScalar := ristretto.ScalarFromUint64(uint64(channelLen))
	u := subtractionVector(m, nScalar, sum)
	aBlinding := nScalar.Mul(rM).Sub(rSum)

	proof, V, err := ipzk.ProveSingle(bp, pc, tr, variance, u, u, varBlinding, aBlinding, rng)
	if err != nil {
		return VarianceProof{}, ristretto.Point{}, err
	}
	return VarianceProof{IPZK: proof}, V, nil
}

// VerifyVariance cross-checks the closed-form A-commitment before running
// the full inner-product verification, per spec.md §4.6.
func (p VarianceProof) VerifyVariance(bp generators.BulletproofGens, gens generators.PedersenVector, tr *transcript.Transcript,
	cM, cSum, cVariance ristretto.Point, channelLen int, rng io.Reader) error {
	pc := gens.ScalarBase()
	if !p.IPZK.VerifyExpectedA(ExpectedA(channelLen, cM, cSum)) {
		return errs.New(errs.VerificationError, "svm: variance proof's A-commitment does not match the closed-form expectation")
	}
	return p.IPZK.VerifySingle(bp, pc, tr, cVariance, channelLen, rng)
}
