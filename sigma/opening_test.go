package sigma_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/sigma"
	"github.com/takakv/svmzkp/transcript"
)

func randomMessage(n int) []ristretto.Scalar {
	out := make([]ristretto.Scalar, n)
	for i := range out {
		out[i] = ristretto.RandomScalar(rand.Reader)
	}
	return out
}

func TestProveVerifyOpeningRoundTrip(t *testing.T) {
	gens := generators.NewPedersenVector("opening-test", 4)
	m := randomMessage(4)
	r := ristretto.RandomScalar(rand.Reader)
	c, err := gens.Commit(m, r)
	require.NoError(t, err)

	proof, err := sigma.ProveOpening(gens, transcript.New("opening"), m, r, rand.Reader)
	require.NoError(t, err)

	require.NoError(t, proof.Verify(gens, transcript.New("opening"), c))
}

func TestVerifyOpeningRejectsWrongCommitment(t *testing.T) {
	gens := generators.NewPedersenVector("opening-wrong", 3)
	m := randomMessage(3)
	r := ristretto.RandomScalar(rand.Reader)

	proof, err := sigma.ProveOpening(gens, transcript.New("opening-wrong"), m, r, rand.Reader)
	require.NoError(t, err)

	wrongC, err := gens.Commit(randomMessage(3), r)
	require.NoError(t, err)

	err = proof.Verify(gens, transcript.New("opening-wrong"), wrongC)
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.VerificationError, zkErr.Kind)
}

func TestProveOpeningRejectsLengthMismatch(t *testing.T) {
	gens := generators.NewPedersenVector("opening-len", 3)
	_, err := sigma.ProveOpening(gens, transcript.New("opening-len"), randomMessage(2),
		ristretto.RandomScalar(rand.Reader), rand.Reader)
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.InvalidGeneratorsLength, zkErr.Kind)
}
