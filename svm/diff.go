package svm

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/sigma"
	"github.com/takakv/svmzkp/transcript"
)

// DiffProof proves that the difference CM - CMp of two commitments to a
// hidden vector m opens to the cyclic adjacent-difference vector d of m
// (dᵢ = mᵢ - m_{i+1},
// cyclic at the boundary), per spec.md §4.6. m is committed under the
// ordinary vector generators gens (base B), and a second time under the
// cyclically rotated view gens.Iterate(n) (base B', n = len(m)); their
// difference commits to d under B. The last coordinate, which has no
// meaningful "successor" under B' once the rotation wraps, is proved absent
// in two steps: a Schnorr proof that a disclosed point equals m[last]*B[last],
// and a knowledge-of-opening proof on the remaining coordinates.
type DiffProof struct {
	Equality sigma.EqualityProof
	LastPt   ristretto.Point
	LastDL   sigma.SchnorrProof
	Opening  sigma.OpeningProof
}

// ProveDiff proves that CM - CMp (under gens) opens to the adjacent-difference
// vector of m, given m's two openings CM (under gens, blinding rM) and CMp
// (under gens.Iterate(n), blinding rMp).
func ProveDiff(gens generators.PedersenVector, tr *transcript.Transcript,
	m []ristretto.Scalar, rM, rMp ristretto.Scalar, rng io.Reader) (DiffProof, error) {
	n := len(m)
	if n != len(gens.B) {
		return DiffProof{}, errs.New(errs.InvalidGeneratorsLength, "svm: diff vector length %d does not match %d generators", n, len(gens.B))
	}

	gensP := gens.Iterate(n)
	eq, err := sigma.ProveEquality(gens, gensP, tr, m, rM, rMp, rng)
	if err != nil {
		return DiffProof{}, err
	}

	last := n - 1
	lastPt := gens.B[last].Mul(m[last])
	dl, err := sigma.ProveSchnorr(gens.B[last], tr, m[last], rng)
	if err != nil {
		return DiffProof{}, err
	}

	reducedGens := gens.RemoveBase(last)
	reducedM := append([]ristretto.Scalar(nil), m[:last]...)
	opening, err := sigma.ProveOpening(reducedGens, tr, reducedM, rM, rng)
	if err != nil {
		return DiffProof{}, err
	}

	return DiffProof{Equality: eq, LastPt: lastPt, LastDL: dl, Opening: opening}, nil
}

// Verify checks that cM (under gens) and cMp (under gens.Iterate(n)) open to
// the same vector, and that the last coordinate is correctly excised.
func (p DiffProof) Verify(gens generators.PedersenVector, tr *transcript.Transcript, cM, cMp ristretto.Point) error {
	n := len(gens.B)
	gensP := gens.Iterate(n)
	if err := p.Equality.Verify(gens, gensP, tr, cM, cMp); err != nil {
		return err
	}

	last := len(gens.B) - 1
	if err := p.LastDL.Verify(gens.B[last], tr, p.LastPt); err != nil {
		return err
	}

	reducedGens := gens.RemoveBase(last)
	reducedC := cM.Sub(p.LastPt)
	return p.Opening.Verify(reducedGens, tr, reducedC)
}
