package sigma

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// EqualityProof proves that the same message vector m opens two
// commitments C1 (under gens1) and C2 (under gens2), each with its own
// blinding factor, without revealing m, r1, or r2. This is the two-base
// generalization of OpeningProof: a single set of fresh message blinders
// m' is reused across both announcements, tying the two openings together.
type EqualityProof struct {
	A1 ristretto.Point
	A2 ristretto.Point
	R1 ristretto.Scalar
	R2 ristretto.Scalar
	RM []ristretto.Scalar
}

// ProveEquality announces A1, A2 under independent fresh randomizers r1',
// r2' but a shared message randomizer m', absorbs both, and responds to the
// single resulting challenge e.
func ProveEquality(gens1, gens2 generators.PedersenVector, tr *transcript.Transcript,
	m []ristretto.Scalar, r1, r2 ristretto.Scalar, rng io.Reader) (EqualityProof, error) {
	if len(m) != len(gens1.B) || len(m) != len(gens2.B) {
		return EqualityProof{}, errs.New(errs.InvalidGeneratorsLength,
			"equality: message length %d does not match generator lengths %d/%d", len(m), len(gens1.B), len(gens2.B))
	}

	mPrime := randomVec(len(m), rng)
	r1Prime := ristretto.RandomScalar(rng)
	r2Prime := ristretto.RandomScalar(rng)

	A1, err := gens1.Commit(mPrime, r1Prime)
	if err != nil {
		return EqualityProof{}, err
	}
	A2, err := gens2.Commit(mPrime, r2Prime)
	if err != nil {
		return EqualityProof{}, err
	}

	if err := tr.ValidateAndAppendPoint("A1", A1); err != nil {
		return EqualityProof{}, err
	}
	if err := tr.ValidateAndAppendPoint("A2", A2); err != nil {
		return EqualityProof{}, err
	}
	e := tr.ChallengeScalar("e")

	rM := make([]ristretto.Scalar, len(m))
	for i := range m {
		rM[i] = e.Mul(m[i]).Add(mPrime[i])
	}
	r1Resp := e.Mul(r1).Add(r1Prime)
	r2Resp := e.Mul(r2).Add(r2Prime)

	return EqualityProof{A1: A1, A2: A2, R1: r1Resp, R2: r2Resp, RM: rM}, nil
}

// Verify checks both halves of the equality statement against the shared
// challenge and shared per-index responses RM.
func (p EqualityProof) Verify(gens1, gens2 generators.PedersenVector, tr *transcript.Transcript, c1, c2 ristretto.Point) error {
	if len(p.RM) != len(gens1.B) || len(p.RM) != len(gens2.B) {
		return errs.New(errs.InvalidGeneratorsLength,
			"equality: response length %d does not match generator lengths %d/%d", len(p.RM), len(gens1.B), len(gens2.B))
	}

	if err := tr.ValidateAndAppendPoint("A1", p.A1); err != nil {
		return err
	}
	if err := tr.ValidateAndAppendPoint("A2", p.A2); err != nil {
		return err
	}
	e := tr.ChallengeScalar("e")

	lhs1 := p.A1.Add(c1.Mul(e))
	rhs1, err := gens1.Commit(p.RM, p.R1)
	if err != nil {
		return err
	}
	if !lhs1.Sub(rhs1).IsIdentity() {
		return errs.New(errs.VerificationError, "equality: first verification equation did not collapse to identity")
	}

	lhs2 := p.A2.Add(c2.Mul(e))
	rhs2, err := gens2.Commit(p.RM, p.R2)
	if err != nil {
		return err
	}
	if !lhs2.Sub(rhs2).IsIdentity() {
		return errs.New(errs.VerificationError, "equality: second verification equation did not collapse to identity")
	}
	return nil
}
