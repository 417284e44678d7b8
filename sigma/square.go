package sigma

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// SquareProof proves that a commitment CSq opens to the square of whatever
// CSqr opens to, without revealing either value. It reduces the square
// relation to an equality of openings (spec.md §4.5): if CSqr = sqr*B +
// r_sqr*B_blinding, then CSq - sqr*CSqr = (r_sq - sqr*r_sqr)*B_blinding, so
// CSq opens to sqr under the dynamically chosen base G' = CSqr exactly when
// CSq = sqr^2*B + r_sq*B_blinding. The equality proof ties the two openings
// of "sqr" — one under the fixed base B, one under G' — to the same value.
type SquareProof struct {
	Equality EqualityProof
}

func squareGens(pc generators.PedersenScalar, cSqr ristretto.Point) (generators.PedersenVector, generators.PedersenVector) {
	gens1 := generators.FromScalar(pc)
	gens2 := generators.PedersenVector{B: []ristretto.Point{cSqr}, BBlinding: pc.BBlinding}
	return gens1, gens2
}

// ProveSquare takes the opening (sqr, rSqr) of cSqr and the opening
// (sqr*sqr, rSq) of cSq, both under pc, and proves the square relation
// between them.
func ProveSquare(pc generators.PedersenScalar, tr *transcript.Transcript,
	sqr, rSqr, rSq ristretto.Scalar, cSqr ristretto.Point, rng io.Reader) (SquareProof, error) {
	gens1, gens2 := squareGens(pc, cSqr)
	rPrime := rSq.Sub(sqr.Mul(rSqr))
	eq, err := ProveEquality(gens1, gens2, tr, []ristretto.Scalar{sqr}, rSqr, rPrime, rng)
	if err != nil {
		return SquareProof{}, err
	}
	return SquareProof{Equality: eq}, nil
}

// Verify checks that cSq opens to the square of whatever cSqr opens to.
func (p SquareProof) Verify(pc generators.PedersenScalar, tr *transcript.Transcript, cSqr, cSq ristretto.Point) error {
	gens1, gens2 := squareGens(pc, cSqr)
	return p.Equality.Verify(gens1, gens2, tr, cSqr, cSq)
}
