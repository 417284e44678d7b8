// Package ipzk implements the inner-product zero-knowledge proof of
// spec.md §4.4: given hidden vectors lhs, rhs of length n and a public
// commitment V to their claimed inner product v, prove knowledge of lhs,
// rhs, and the blinding factors without revealing them.
//
// The construction is Bunz-Bootle-Boneh-Poelstra-Wuille-Maxwell's
// Bulletproofs polynomial-commitment trick, grounded directly on the
// teacher's bulletproofs.Prove/Verify (bulletproofs/bp.go): that code
// commits the *bit decomposition* of a ranged value via degree-1 vector
// polynomials l(X)/r(X) and a degree-2 t(X), batches the t(X) opening with
// the inner-product argument, and checks one multi-scalar identity. This
// package keeps that exact shape — same A/S/T1/T2/t_x/t_x_blinding/
// e_blinding fields, same two-phase Fiat-Shamir schedule (x, then w) — but
// replaces "prove aL, aR are bits of v" with "prove <lhs, rhs> = v" for
// arbitrary input vectors, per spec.md §4.4.
package ipzk

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ipa"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// DomainLabel is the transcript domain separator reserved for this package's
// proofs. ProveSingle and VerifySingle absorb into whatever transcript the
// caller passes and do not apply it themselves. It is
// deliberately distinct from any range-proof label (spec.md §9 flags the
// teacher's ambiguous reuse of "AggregateRangeProofBenchmark" across
// unrelated proof types as a latent bug; this module never repeats that
// mistake).
const DomainLabel = "svmzkp.ipzk.v1"

// Proof is the non-interactive inner-product zero-knowledge proof record.
// V (the commitment to the claimed inner product) is intentionally not a
// field here: spec.md §4.4 step 10 requires the verifier to know V
// out-of-band, so it is threaded through Prove/Verify as a parameter.
type Proof struct {
	A, S       ristretto.Point
	T1, T2     ristretto.Point
	Tx         ristretto.Scalar
	TxBlinding ristretto.Scalar
	EBlinding  ristretto.Scalar
	IPP        ipa.Proof
}

func innerProduct(a, b []ristretto.Scalar) ristretto.Scalar {
	acc := ristretto.NewScalar()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}

func addVec(a, b []ristretto.Scalar) []ristretto.Scalar {
	out := make([]ristretto.Scalar, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func scaleVec(a []ristretto.Scalar, x ristretto.Scalar) []ristretto.Scalar {
	out := make([]ristretto.Scalar, len(a))
	for i := range a {
		out[i] = a[i].Mul(x)
	}
	return out
}

func randomVec(n int, rng io.Reader) []ristretto.Scalar {
	out := make([]ristretto.Scalar, n)
	for i := range out {
		out[i] = ristretto.RandomScalar(rng)
	}
	return out
}

// ProveSingle runs the prover's side of spec.md §4.4. n = len(lhs) must be a
// power of two and at most bp.Capacity(). v is the prover's claim that
// v == <lhs, rhs>; a dishonest claim still produces a proof record (proving
// never checks it), but VerifySingle against the resulting V will fail.
func ProveSingle(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	v ristretto.Scalar, lhs, rhs []ristretto.Scalar, vBlinding, aBlinding ristretto.Scalar,
	rng io.Reader) (Proof, ristretto.Point, error) {
	n := len(lhs)
	if n != len(rhs) {
		return Proof{}, ristretto.Point{}, errs.New(errs.InvalidGeneratorsLength, "ipzk: lhs and rhs must have equal length")
	}
	g, err := bp.Slice(n)
	if err != nil {
		return Proof{}, ristretto.Point{}, errs.New(errs.InvalidGeneratorsLength, "%v", err)
	}

	V := pc.Commit(v, vBlinding)

	A := pc.BBlinding.Mul(aBlinding).Add(ristretto.MultiMul(lhs, g.G)).Add(ristretto.MultiMul(rhs, g.H))

	sBlinding := ristretto.RandomScalar(rng)
	sL := randomVec(n, rng)
	sR := randomVec(n, rng)
	S := pc.BBlinding.Mul(sBlinding).Add(ristretto.MultiMul(sL, g.G)).Add(ristretto.MultiMul(sR, g.H))

	// t(X) = <lhs + sL*X, rhs + sR*X> = t0 + t1*X + t2*X^2
	t1 := innerProduct(lhs, sR).Add(innerProduct(sL, rhs))
	t2 := innerProduct(sL, sR)

	t1Blinding := ristretto.RandomScalar(rng)
	t2Blinding := ristretto.RandomScalar(rng)
	T1 := pc.Commit(t1, t1Blinding)
	T2 := pc.Commit(t2, t2Blinding)

	tr.AppendPoint("V", V)
	tr.AppendPoint("A", A)
	tr.AppendPoint("S", S)
	tr.AppendPoint("T1", T1)
	tr.AppendPoint("T2", T2)
	x := tr.ChallengeScalar("x")

	x2 := x.Square()
	tx := v.Add(t1.Mul(x)).Add(t2.Mul(x2))
	txBlinding := vBlinding.Add(t1Blinding.Mul(x)).Add(t2Blinding.Mul(x2))
	eBlinding := aBlinding.Add(sBlinding.Mul(x))

	lVec := addVec(lhs, scaleVec(sL, x))
	rVec := addVec(rhs, scaleVec(sR, x))

	tr.AppendScalar("t_x", tx)
	tr.AppendScalar("t_x_blinding", txBlinding)
	tr.AppendScalar("e_blinding", eBlinding)
	w := tr.ChallengeScalar("w")
	Q := pc.B.Mul(w)

	ipp := ipa.Prove(tr, Q, g.G, g.H, nil, nil, lVec, rVec)

	return Proof{A: A, S: S, T1: T1, T2: T2, Tx: tx, TxBlinding: txBlinding, EBlinding: eBlinding, IPP: ipp}, V, nil
}

// VerifySingle checks a proof against V, the out-of-band commitment to the
// claimed inner product, per spec.md §4.4's batched single multi-scalar
// check. n is the vector length the proof was produced for. rng supplies
// the verifier's private batching challenge c, which must never be drawn
// from the transcript (spec.md §9: a transcript-derived c would let a
// malicious prover bias it).
func (p Proof) VerifySingle(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	V ristretto.Point, n int, rng io.Reader) error {
	g, err := bp.Slice(n)
	if err != nil {
		return errs.New(errs.InvalidGeneratorsLength, "%v", err)
	}

	if err := tr.ValidateAndAppendPoint("V", V); err != nil {
		return err
	}
	for _, pt := range []struct {
		label string
		p     ristretto.Point
	}{{"A", p.A}, {"S", p.S}, {"T1", p.T1}, {"T2", p.T2}} {
		if err := tr.ValidateAndAppendPoint(pt.label, pt.p); err != nil {
			return err
		}
	}
	x := tr.ChallengeScalar("x")

	tr.AppendScalar("t_x", p.Tx)
	tr.AppendScalar("t_x_blinding", p.TxBlinding)
	tr.AppendScalar("e_blinding", p.EBlinding)
	w := tr.ChallengeScalar("w")

	c := ristretto.RandomScalar(rng)

	uSq, uInvSq, s, err := p.IPP.VerificationScalars(tr, n)
	if err != nil {
		return err
	}
	a, b := p.IPP.A, p.IPP.B

	x2 := x.Square()

	scalars := make([]ristretto.Scalar, 0, 4+2*len(p.IPP.L)+2+2*n+1)
	points := make([]ristretto.Point, 0, cap(scalars))

	one := ristretto.ScalarFromUint64(1)
	scalars = append(scalars, one, x, c.Mul(x), c.Mul(x2))
	points = append(points, p.A, p.S, p.T1, p.T2)

	for i := range p.IPP.L {
		scalars = append(scalars, uSq[i], uInvSq[i])
		points = append(points, p.IPP.L[i], p.IPP.R[i])
	}

	scalars = append(scalars, p.EBlinding.Neg().Sub(c.Mul(p.TxBlinding)))
	points = append(points, pc.BBlinding)

	scalars = append(scalars, w.Mul(p.Tx.Sub(a.Mul(b))).Sub(c.Mul(p.Tx)))
	points = append(points, pc.B)

	for i := 0; i < n; i++ {
		scalars = append(scalars, a.Mul(s[i]).Neg())
		points = append(points, g.G[i])
		scalars = append(scalars, b.Mul(s[n-1-i]).Neg())
		points = append(points, g.H[i])
	}

	scalars = append(scalars, c)
	points = append(points, V)

	if !ristretto.MultiMul(scalars, points).IsIdentity() {
		return errs.New(errs.VerificationError, "ipzk: batched verification equation did not collapse to identity")
	}
	return nil
}

// VerifyExpectedA reports whether p.A equals expected. The variance
// composite (svm package) derives its A-commitment in closed form from
// commitments it already has on hand and cross-checks it this way before
// running the full VerifySingle, per spec.md §4.6.
func (p Proof) VerifyExpectedA(expected ristretto.Point) bool {
	return p.A.Equal(expected)
}
