package rangeproof_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/rangeproof"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

func TestProveVerifySingleInRange(t *testing.T) {
	const n = 8
	bp := generators.NewBulletproofGens("rangeproof-test", n)
	pc := generators.NewPedersenScalar("rangeproof-test-value")

	blinding := ristretto.RandomScalar(rand.Reader)
	proof, V, err := rangeproof.ProveSingle(bp, pc, transcript.New("range"), 200, blinding, n, rand.Reader)
	require.NoError(t, err)

	require.NoError(t, proof.VerifySingle(bp, pc, transcript.New("range"), V, n))
}

func TestProveSingleRejectsOutOfRangeValue(t *testing.T) {
	const n = 8
	bp := generators.NewBulletproofGens("rangeproof-oob", n)
	pc := generators.NewPedersenScalar("rangeproof-oob-value")

	_, _, err := rangeproof.ProveSingle(bp, pc, transcript.New("range-oob"), 256, ristretto.RandomScalar(rand.Reader), n, rand.Reader)
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.FormatError, zkErr.Kind)
}

func TestVerifySingleRejectsTamperedCommitment(t *testing.T) {
	const n = 8
	bp := generators.NewBulletproofGens("rangeproof-tamper", n)
	pc := generators.NewPedersenScalar("rangeproof-tamper-value")

	blinding := ristretto.RandomScalar(rand.Reader)
	proof, V, err := rangeproof.ProveSingle(bp, pc, transcript.New("range-tamper"), 10, blinding, n, rand.Reader)
	require.NoError(t, err)

	tamperedV := V.Add(pc.B)
	err = proof.VerifySingle(bp, pc, transcript.New("range-tamper"), tamperedV, n)
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.VerificationError, zkErr.Kind)
}

func TestProveVerifySingleBoundaryValues(t *testing.T) {
	const n = 8
	bp := generators.NewBulletproofGens("rangeproof-boundary", n)
	pc := generators.NewPedersenScalar("rangeproof-boundary-value")

	for _, v := range []uint64{0, 255} {
		blinding := ristretto.RandomScalar(rand.Reader)
		proof, V, err := rangeproof.ProveSingle(bp, pc, transcript.New("range-boundary"), v, blinding, n, rand.Reader)
		require.NoError(t, err)
		require.NoError(t, proof.VerifySingle(bp, pc, transcript.New("range-boundary"), V, n))
	}
}
