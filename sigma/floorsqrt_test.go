package sigma_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/sigma"
	"github.com/takakv/svmzkp/transcript"
)

func floorSqrtCommitments(pc generators.PedersenScalar, value, f uint64) (cV, cF, cFSq ristretto.Point, rV, rF, rFSq ristretto.Scalar) {
	rV = ristretto.RandomScalar(rand.Reader)
	rF = ristretto.RandomScalar(rand.Reader)
	rFSq = ristretto.RandomScalar(rand.Reader)
	cV = pc.Commit(ristretto.ScalarFromUint64(value), rV)
	cF = pc.Commit(ristretto.ScalarFromUint64(f), rF)
	cFSq = pc.Commit(ristretto.ScalarFromUint64(f*f), rFSq)
	return
}

func TestProveVerifyFloorSqrtRoundTrip(t *testing.T) {
	bp := generators.NewBulletproofGens("floorsqrt-test", 32)
	pc := generators.NewPedersenScalar("floorsqrt-test-value")

	const value = 12323
	const f = 111 // 111*111 = 12321 <= 12323 < 12544 = 112*112

	cV, cF, cFSq, rV, rF, rFSq := floorSqrtCommitments(pc, value, f)

	proof, err := sigma.ProveFloorSqrt(bp, pc, transcript.New("floorsqrt"), value, f, rV, rF, rFSq, cV, cF, cFSq, rand.Reader)
	require.NoError(t, err)

	require.NoError(t, proof.Verify(bp, pc, transcript.New("floorsqrt"), cV, cF, cFSq))
}

func TestProveFloorSqrtRejectsTooSmallCandidate(t *testing.T) {
	bp := generators.NewBulletproofGens("floorsqrt-low", 32)
	pc := generators.NewPedersenScalar("floorsqrt-low-value")

	const value = 12323
	const f = 110 // 110*110 = 12100 <= 12323, but 111*111 = 12321 <= 12323 too: not a valid floor root

	cV, cF, cFSq, rV, rF, rFSq := floorSqrtCommitments(pc, value, f)

	_, err := sigma.ProveFloorSqrt(bp, pc, transcript.New("floorsqrt-low"), value, f, rV, rF, rFSq, cV, cF, cFSq, rand.Reader)
	require.Error(t, err)
}

func TestProveFloorSqrtRejectsTooLargeCandidate(t *testing.T) {
	bp := generators.NewBulletproofGens("floorsqrt-high", 32)
	pc := generators.NewPedersenScalar("floorsqrt-high-value")

	const value = 12323
	const f = 112 // 112*112 = 12544 > 12323: f*f already exceeds v

	cV, cF, cFSq, rV, rF, rFSq := floorSqrtCommitments(pc, value, f)

	_, err := sigma.ProveFloorSqrt(bp, pc, transcript.New("floorsqrt-high"), value, f, rV, rF, rFSq, cV, cF, cFSq, rand.Reader)
	require.Error(t, err)
}
