// Package sigma implements the non-aggregated sigma-protocol family spec.md
// §4.5 describes: knowledge of opening, equality of openings across two
// generator sets, the square relation, and floor-square-root. All four
// share the teacher's three-move announce/challenge/respond shape
// (voteproof.Prove/Verify — see voteproof/voteproof.go), generalized from
// voteproof's fixed four-commitment vote-correctness statement to arbitrary
// vector Pedersen commitments over ristretto.Point.
package sigma

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// OpeningProof proves knowledge of (m, r) opening a vector Pedersen
// commitment C = Σ m[i]*B[i] + r*B_blinding, without revealing m or r.
type OpeningProof struct {
	A  ristretto.Point
	RR ristretto.Scalar
	RM []ristretto.Scalar
}

func randomVec(n int, rng io.Reader) []ristretto.Scalar {
	out := make([]ristretto.Scalar, n)
	for i := range out {
		out[i] = ristretto.RandomScalar(rng)
	}
	return out
}

// ProveOpening announces fresh blinders, absorbs the announcement, and
// responds to the transcript-derived challenge e.
func ProveOpening(gens generators.PedersenVector, tr *transcript.Transcript,
	m []ristretto.Scalar, r ristretto.Scalar, rng io.Reader) (OpeningProof, error) {
	if len(m) != len(gens.B) {
		return OpeningProof{}, errs.New(errs.InvalidGeneratorsLength,
			"opening: message length %d does not match %d generators", len(m), len(gens.B))
	}

	mPrime := randomVec(len(m), rng)
	rPrime := ristretto.RandomScalar(rng)

	A, err := gens.Commit(mPrime, rPrime)
	if err != nil {
		return OpeningProof{}, err
	}

	if err := tr.ValidateAndAppendPoint("A", A); err != nil {
		return OpeningProof{}, err
	}
	e := tr.ChallengeScalar("e")

	rM := make([]ristretto.Scalar, len(m))
	for i := range m {
		rM[i] = e.Mul(m[i]).Add(mPrime[i])
	}
	rR := e.Mul(r).Add(rPrime)

	return OpeningProof{A: A, RR: rR, RM: rM}, nil
}

// Verify checks A + e*C - r_r*B_blinding - Σ r_m[i]*B[i] == identity.
func (p OpeningProof) Verify(gens generators.PedersenVector, tr *transcript.Transcript, c ristretto.Point) error {
	if len(p.RM) != len(gens.B) {
		return errs.New(errs.InvalidGeneratorsLength,
			"opening: response length %d does not match %d generators", len(p.RM), len(gens.B))
	}

	if err := tr.ValidateAndAppendPoint("A", p.A); err != nil {
		return err
	}
	e := tr.ChallengeScalar("e")

	lhs := p.A.Add(c.Mul(e))
	rhsCommit, err := gens.Commit(p.RM, p.RR)
	if err != nil {
		return err
	}
	if !lhs.Sub(rhsCommit).IsIdentity() {
		return errs.New(errs.VerificationError, "opening: verification equation did not collapse to identity")
	}
	return nil
}
