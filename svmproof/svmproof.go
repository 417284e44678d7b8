// Package svmproof sequences the composite proofs of package svm behind a
// single per-channel Prove/Verify pair, the "top-level orchestration"
// spec.md §2 item 9 describes: one shared transcript carries a channel's
// sum, adjacent-difference, variance, and standard-deviation proofs end to
// end. Plaintext aggregation (computing the sum/variance/stddev a caller
// wants to certify) is the sensor-data preprocessing spec.md §1 explicitly
// places out of scope; this package does the minimal arithmetic needed to
// produce a self-consistent demo proof, not a general statistics library.
package svmproof

import (
	"io"
	"math"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/svm"
	"github.com/takakv/svmzkp/transcript"
)

// DomainLabel is a transcript domain separator reserved for full channel
// evaluation proofs. ProveChannel and VerifyChannel key their transcript
// with the label their caller passes; they do not apply DomainLabel
// themselves.
const DomainLabel = "svmzkp.svmproof.channel.v1"

// Channel bundles the commitments and sub-proofs produced for one sensor
// channel: its raw-vector commitment (under two rotations, for the diff
// proof), its sum, its variance, and its standard deviation.
type Channel struct {
	CM        ristretto.Point
	CMRotated ristretto.Point
	CSum      ristretto.Point
	CVariance ristretto.Point
	CStdDev   ristretto.Point
	CStdDevSq ristretto.Point

	Sum      svm.SumProof
	Diff     svm.DiffProof
	Variance svm.VarianceProof
	StdDev   svm.StdDevProof
}

// aggregate computes the plaintext sum, the n^3-scaled population variance,
// and the integer floor of that scaled variance's square root. This is the out-of-scope
// preprocessing step spec.md §1 assumes already happened; it exists here
// only so the demo has something concrete to prove.
func aggregate(values []uint64) (sum uint64, variance uint64, stddev uint64) {
	n := uint64(len(values))
	var total uint64
	for _, v := range values {
		total += v
	}
	sum = total

	var sqDiffSum uint64
	for _, v := range values {
		d := int64(n*v) - int64(sum)
		sqDiffSum += uint64(d * d)
	}
	// Population variance scaled by n^3 to stay in integer arithmetic,
	// matching the u[i] = n*m[i] - sum definition the variance composite
	// proves directly: variance == <u, u> == n^3 * Var(values).
	variance = sqDiffSum
	stddev = uint64(math.Sqrt(float64(variance)))
	for (stddev+1)*(stddev+1) <= variance {
		stddev++
	}
	for stddev*stddev > variance {
		stddev--
	}
	return sum, variance, stddev
}

// ProveChannel proves sum, adjacent-difference, variance, and standard
// deviation for one channel's hidden values, all under one shared
// transcript keyed by label. gens must come from
// generators.VectorFromBulletproof(bp, n, ...): the variance composite's
// closed-form A-commitment check only collapses when the channel's vector
// generators and bp's G/H generators coincide that way.
func ProveChannel(bp generators.BulletproofGens, gens generators.PedersenVector, label string,
	values []uint64, rng io.Reader) (Channel, error) {
	n := len(values)
	if n != len(gens.B) {
		return Channel{}, errs.New(errs.InvalidGeneratorsLength,
			"svmproof: channel length %d does not match %d generators", n, len(gens.B))
	}

	m := make([]ristretto.Scalar, n)
	for i, v := range values {
		m[i] = ristretto.ScalarFromUint64(v)
	}

	tr := transcript.New(label)

	rM := ristretto.RandomScalar(rng)
	cM, err := gens.Commit(m, rM)
	if err != nil {
		return Channel{}, err
	}

	gensRotated := gens.Iterate(n)
	rMRotated := ristretto.RandomScalar(rng)
	cMRotated, err := gensRotated.Commit(m, rMRotated)
	if err != nil {
		return Channel{}, err
	}

	pcSum := gens.ScalarBase()
	sumVal, varianceVal, stdDevVal := aggregate(values)

	sBlinding := ristretto.RandomScalar(rng)
	aBlindingSum := rM
	sumProof, cSum, err := svm.ProveSum(bp, pcSum, tr, m, sBlinding, aBlindingSum, rng)
	if err != nil {
		return Channel{}, err
	}
	if !cSum.Equal(pcSum.Commit(ristretto.ScalarFromUint64(sumVal), sBlinding)) {
		return Channel{}, errs.New(errs.VerificationError, "svmproof: plaintext sum does not match committed vector")
	}

	diffProof, err := svm.ProveDiff(gens, tr, m, rM, rMRotated, rng)
	if err != nil {
		return Channel{}, err
	}

	rSum := sBlinding
	varBlinding := ristretto.RandomScalar(rng)
	varianceProof, cVariance, err := svm.ProveVariance(bp, gens, tr, m, rM, ristretto.ScalarFromUint64(sumVal), rSum,
		ristretto.ScalarFromUint64(varianceVal), varBlinding, rng)
	if err != nil {
		return Channel{}, err
	}

	rStdDev := ristretto.RandomScalar(rng)
	cStdDev := pcSum.Commit(ristretto.ScalarFromUint64(stdDevVal), rStdDev)
	stdDevProof, cStdDevSq, err := svm.ProveStdDev(bp, pcSum, tr, varianceVal, stdDevVal, varBlinding, rStdDev,
		cVariance, cStdDev, rng)
	if err != nil {
		return Channel{}, err
	}

	return Channel{
		CM: cM, CMRotated: cMRotated, CSum: cSum, CVariance: cVariance,
		CStdDev: cStdDev, CStdDevSq: cStdDevSq,
		Sum: sumProof, Diff: diffProof, Variance: varianceProof, StdDev: stdDevProof,
	}, nil
}

// VerifyChannel replays every sub-proof against the commitments in c, over
// a fresh transcript keyed the same way the prover's was.
func VerifyChannel(bp generators.BulletproofGens, gens generators.PedersenVector, label string,
	channelLen int, c Channel, rng io.Reader) error {
	tr := transcript.New(label)
	pcSum := gens.ScalarBase()

	if err := c.Sum.VerifySum(bp, pcSum, tr, c.CSum, channelLen, rng); err != nil {
		return err
	}

	if err := c.Diff.Verify(gens, tr, c.CM, c.CMRotated); err != nil {
		return err
	}

	if err := c.Variance.VerifyVariance(bp, gens, tr, c.CM, c.CSum, c.CVariance, channelLen, rng); err != nil {
		return err
	}

	return c.StdDev.Verify(bp, pcSum, tr, c.CVariance, c.CStdDev, c.CStdDevSq)
}
