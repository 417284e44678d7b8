// Package ipa implements the inner-product argument: the recursive,
// logarithmic-round core described in spec.md §4.3. Given public generators
// G, H and a point Q, it lets a prover convince a verifier that it knows
// vectors a, b with a claimed commitment structure, in 2*log2(n) + 2 field
// and group elements.
//
// This is the design-dense "core" of the module (spec.md §1). It is
// grounded on the teacher's bulletproofs.computeBipRecursive /
// InnerProductProof.Verify (bulletproofs/bip.go), generalized from
// big.Int/p256 arithmetic over a single hardcoded curve to ristretto.Scalar
// /ristretto.Point, and from a two-challenge (x, then per-round u) protocol
// into the single-challenge-per-round recursion spec.md §4.3 specifies,
// with explicit G_factors/H_factors so the zero-knowledge wrapper in
// package ipzk can fold unit factors in without a special case.
package ipa

import (
	"math/bits"

	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// Proof is the sequence of (L, R) pairs produced by each halving round, plus
// the final one-element witness (a, b).
type Proof struct {
	L []ristretto.Point
	R []ristretto.Point
	A ristretto.Scalar
	B ristretto.Scalar
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Prove runs the prover's side of the protocol described in spec.md §4.3.
// gFactors and hFactors may be nil, meaning all-ones (the common case for
// the zero-knowledge wrapper). n = len(a) must be a power of two; a length
// mismatch or a non-power-of-two n is a caller bug (the invariant violations
// named in spec.md §7) and panics rather than returning an error.
func Prove(tr *transcript.Transcript, q ristretto.Point, g, h []ristretto.Point,
	gFactors, hFactors []ristretto.Scalar, a, b []ristretto.Scalar) Proof {
	n := len(a)
	if n != len(b) || n != len(g) || n != len(h) {
		panic("ipa: a, b, g, h must all have equal length")
	}
	if !isPowerOfTwo(n) {
		panic("ipa: n must be a power of two")
	}

	// Work on copies; the recursive halving below overwrites in place.
	a = append([]ristretto.Scalar(nil), a...)
	b = append([]ristretto.Scalar(nil), b...)
	g = append([]ristretto.Point(nil), g...)
	h = append([]ristretto.Point(nil), h...)

	var Ls, Rs []ristretto.Point
	first := true

	for n > 1 {
		nprime := n / 2
		aLo, aHi := a[:nprime], a[nprime:]
		bLo, bHi := b[:nprime], b[nprime:]
		gLo, gHi := g[:nprime], g[nprime:]
		hLo, hHi := h[:nprime], h[nprime:]

		cL := innerProduct(aLo, bHi)
		cR := innerProduct(aHi, bLo)

		var gHiFactors, gLoFactors, hLoFactors, hHiFactors []ristretto.Scalar
		if first {
			if gFactors != nil {
				gLoFactors, gHiFactors = gFactors[:nprime], gFactors[nprime:]
			}
			if hFactors != nil {
				hLoFactors, hHiFactors = hFactors[:nprime], hFactors[nprime:]
			}
		}

		L := weightedCommit(aLo, gHi, gHiFactors).
			Add(weightedCommit(bHi, hLo, hLoFactors)).
			Add(q.Mul(cL))
		R := weightedCommit(aHi, gLo, gLoFactors).
			Add(weightedCommit(bLo, hHi, hHiFactors)).
			Add(q.Mul(cR))

		tr.AppendPoint("L", L)
		tr.AppendPoint("R", R)
		u := tr.ChallengeScalar("u")
		uInv := u.Inv()

		newA := make([]ristretto.Scalar, nprime)
		newB := make([]ristretto.Scalar, nprime)
		newG := make([]ristretto.Point, nprime)
		newH := make([]ristretto.Point, nprime)
		for i := 0; i < nprime; i++ {
			newA[i] = aLo[i].Mul(u).Add(aHi[i].Mul(uInv))
			newB[i] = bLo[i].Mul(uInv).Add(bHi[i].Mul(u))

			gLoScale, gHiScale := uInv, u
			hLoScale, hHiScale := u, uInv
			if first {
				if gFactors != nil {
					gLoScale = uInv.Mul(gFactors[i])
					gHiScale = u.Mul(gFactors[nprime+i])
				}
				if hFactors != nil {
					hLoScale = u.Mul(hFactors[i])
					hHiScale = uInv.Mul(hFactors[nprime+i])
				}
			}
			newG[i] = gLo[i].Mul(gLoScale).Add(gHi[i].Mul(gHiScale))
			newH[i] = hLo[i].Mul(hLoScale).Add(hHi[i].Mul(hHiScale))
		}

		a, b, g, h = newA, newB, newG, newH
		Ls = append(Ls, L)
		Rs = append(Rs, R)
		n = nprime
		first = false
	}

	return Proof{L: Ls, R: Rs, A: a[0], B: b[0]}
}

// VerificationScalars replays the transcript to recover every round's
// challenge and folds them into the (u_sq, u_inv_sq, s) triple spec.md §4.3
// defines, where s[i] = Π_k u_k^{+1 if bit_k(i) else -1}. This is the piece
// that lets a verifier check the whole log-round recursion with one
// multi-scalar multiplication instead of materializing folded generators
// round by round.
func (p Proof) VerificationScalars(tr *transcript.Transcript, n int) (uSq, uInvSq, s []ristretto.Scalar, err error) {
	if !isPowerOfTwo(n) {
		panic("ipa: n must be a power of two")
	}
	logN := len(p.L)
	if len(p.R) != logN {
		return nil, nil, nil, errs.New(errs.FormatError, "ipa: L and R vectors have different lengths")
	}
	if 1<<uint(logN) != n {
		return nil, nil, nil, errs.New(errs.FormatError, "ipa: proof has %d rounds, expected log2(%d)", logN, n)
	}

	u := make([]ristretto.Scalar, logN)
	uInv := make([]ristretto.Scalar, logN)
	for i := 0; i < logN; i++ {
		tr.AppendPoint("L", p.L[i])
		tr.AppendPoint("R", p.R[i])
		u[i] = tr.ChallengeScalar("u")
		uInv[i] = u[i].Inv()
	}

	uSq = make([]ristretto.Scalar, logN)
	uInvSq = make([]ristretto.Scalar, logN)
	for i := 0; i < logN; i++ {
		uSq[i] = u[i].Square()
		uInvSq[i] = uInv[i].Square()
	}

	s = make([]ristretto.Scalar, n)
	s[0] = ristretto.ScalarFromUint64(1)
	for i := 0; i < logN; i++ {
		s[0] = s[0].Mul(uInv[i])
	}
	for i := 1; i < n; i++ {
		lgI := bits.Len(uint(i)) - 1
		k := logN - 1 - lgI
		s[i] = s[i^(1<<uint(lgI))].Mul(uSq[k])
	}

	return uSq, uInvSq, s, nil
}

// Verify checks that P = Σ a_i*(G_factors_i*G_i) + Σ b_i*(H_factors_i*H_i) +
// <a,b>*Q, as reconstructed from the proof's final (a, b) and the folded
// generators implied by the transcript's challenges (spec.md §4.3). gFactors
// /hFactors may be nil (all-ones).
func (p Proof) Verify(tr *transcript.Transcript, n int, g, h []ristretto.Point,
	gFactors, hFactors []ristretto.Scalar, q, P ristretto.Point) error {
	if n != len(g) || n != len(h) {
		return errs.New(errs.InvalidGeneratorsLength, "ipa: generator vectors must have length n=%d", n)
	}

	uSq, uInvSq, s, err := p.VerificationScalars(tr, n)
	if err != nil {
		return err
	}

	logN := len(p.L)
	scalars := make([]ristretto.Scalar, 0, 1+2*logN+2*n+1)
	points := make([]ristretto.Point, 0, cap(scalars))

	scalars = append(scalars, ristretto.ScalarFromUint64(1))
	points = append(points, P)
	for i := 0; i < logN; i++ {
		scalars = append(scalars, uSq[i])
		points = append(points, p.L[i])
		scalars = append(scalars, uInvSq[i])
		points = append(points, p.R[i])
	}
	for i := 0; i < n; i++ {
		gs := p.A.Mul(s[i]).Neg()
		if gFactors != nil {
			gs = gs.Mul(gFactors[i])
		}
		scalars = append(scalars, gs)
		points = append(points, g[i])

		hs := p.B.Mul(s[n-1-i]).Neg()
		if hFactors != nil {
			hs = hs.Mul(hFactors[i])
		}
		scalars = append(scalars, hs)
		points = append(points, h[i])
	}
	scalars = append(scalars, p.A.Mul(p.B).Neg())
	points = append(points, q)

	if !ristretto.MultiMul(scalars, points).IsIdentity() {
		return errs.New(errs.VerificationError, "ipa: verification equation did not collapse to identity")
	}
	return nil
}
