package svm

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/sigma"
	"github.com/takakv/svmzkp/transcript"
)

// StdDevProof proves that a committed standard deviation is the floor
// square root of an already-committed variance, per spec.md §4.6. It is a
// thin wrapper over sigma.FloorSqrtProof: the variance and standard
// deviation here play the roles sigma.ProveFloorSqrt calls "v" and "f".
// Since variance is itself a proof output of VarianceProof rather than a
// raw channel value, this composite additionally needs the plaintext
// variance and stddev values (not just their commitments) to build the two
// embedded range proofs.
type StdDevProof struct {
	FloorSqrt sigma.FloorSqrtProof
}

// ProveStdDev proves that stddev == floor(sqrt(variance)), given the
// openings of cVariance (value variance, blinding rVariance) and cStdDev
// (value stddev, blinding rStdDev). It samples a fresh blinding from rng
// for the internal stddev-squared commitment and returns that commitment.
func ProveStdDev(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	variance, stddev uint64, rVariance, rStdDev ristretto.Scalar,
	cVariance, cStdDev ristretto.Point, rng io.Reader) (StdDevProof, ristretto.Point, error) {
	stddevSq := stddev * stddev
	rStdDevSq := ristretto.RandomScalar(rng)
	cStdDevSq := pc.Commit(ristretto.ScalarFromUint64(stddevSq), rStdDevSq)

	fs, err := sigma.ProveFloorSqrt(bp, pc, tr, variance, stddev, rVariance, rStdDev, rStdDevSq,
		cVariance, cStdDev, cStdDevSq, rng)
	if err != nil {
		return StdDevProof{}, ristretto.Point{}, err
	}
	return StdDevProof{FloorSqrt: fs}, cStdDevSq, nil
}

// Verify checks that cStdDev is the floor square root of cVariance, given
// the internal squared-stddev commitment cStdDevSq produced alongside the
// proof.
func (p StdDevProof) Verify(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	cVariance, cStdDev, cStdDevSq ristretto.Point) error {
	return p.FloorSqrt.Verify(bp, pc, tr, cVariance, cStdDev, cStdDevSq)
}
