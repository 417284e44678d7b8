package sigma

import (
	"io"

	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// SchnorrProof proves knowledge of x such that P = x*G, for an arbitrary
// base G, without revealing x. This is the single-generator degenerate
// case of OpeningProof, split out as its own type because its statement
// (a specific point equals m*B for a fixed, openly-known base B) does not
// come from a full Pedersen commitment.
type SchnorrProof struct {
	A ristretto.Point
	R ristretto.Scalar
}

// ProveSchnorr announces A = k*G for fresh k, absorbs it, and responds to
// the challenge e with r = e*x + k.
func ProveSchnorr(g ristretto.Point, tr *transcript.Transcript, x ristretto.Scalar, rng io.Reader) (SchnorrProof, error) {
	k := ristretto.RandomScalar(rng)
	A := g.Mul(k)

	if err := tr.ValidateAndAppendPoint("A", A); err != nil {
		return SchnorrProof{}, err
	}
	e := tr.ChallengeScalar("e")
	r := e.Mul(x).Add(k)

	return SchnorrProof{A: A, R: r}, nil
}

// Verify checks A + e*P - r*G == identity.
func (p SchnorrProof) Verify(g ristretto.Point, tr *transcript.Transcript, pt ristretto.Point) error {
	if err := tr.ValidateAndAppendPoint("A", p.A); err != nil {
		return err
	}
	e := tr.ChallengeScalar("e")

	lhs := p.A.Add(pt.Mul(e))
	rhs := g.Mul(p.R)
	if !lhs.Equal(rhs) {
		return errs.New(errs.VerificationError, "schnorr: verification equation did not hold")
	}
	return nil
}
