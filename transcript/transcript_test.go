package transcript_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

func TestChallengeScalarIsDeterministic(t *testing.T) {
	p := ristretto.RandomPoint(rand.Reader)

	tr1 := transcript.New("test-label")
	tr1.AppendPoint("p", p)
	c1 := tr1.ChallengeScalar("c")

	tr2 := transcript.New("test-label")
	tr2.AppendPoint("p", p)
	c2 := tr2.ChallengeScalar("c")

	require.True(t, c1.Equal(c2))
}

func TestChallengeScalarDependsOnDomainLabel(t *testing.T) {
	p := ristretto.RandomPoint(rand.Reader)

	tr1 := transcript.New("domain-a")
	tr1.AppendPoint("p", p)
	c1 := tr1.ChallengeScalar("c")

	tr2 := transcript.New("domain-b")
	tr2.AppendPoint("p", p)
	c2 := tr2.ChallengeScalar("c")

	require.False(t, c1.Equal(c2))
}

func TestChallengeScalarDependsOnAppendOrder(t *testing.T) {
	p := ristretto.RandomPoint(rand.Reader)
	q := ristretto.RandomPoint(rand.Reader)

	tr1 := transcript.New("order")
	tr1.AppendPoint("p", p)
	tr1.AppendPoint("q", q)
	c1 := tr1.ChallengeScalar("c")

	tr2 := transcript.New("order")
	tr2.AppendPoint("q", q)
	tr2.AppendPoint("p", p)
	c2 := tr2.ChallengeScalar("c")

	require.False(t, c1.Equal(c2))
}

func TestSuccessiveChallengesDiffer(t *testing.T) {
	tr := transcript.New("successive")
	c1 := tr.ChallengeScalar("c")
	c2 := tr.ChallengeScalar("c")
	require.False(t, c1.Equal(c2))
}

func TestValidateAndAppendPointRejectsIdentity(t *testing.T) {
	tr := transcript.New("identity-guard")
	err := tr.ValidateAndAppendPoint("p", ristretto.Identity())
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.InvalidCommitment, zkErr.Kind)
}

func TestCloneDivergesIndependently(t *testing.T) {
	tr := transcript.New("clone")
	tr.AppendScalar("a", ristretto.ScalarFromUint64(1))

	clone := tr.Clone()
	cOriginal := tr.ChallengeScalar("c")
	cClone := clone.ChallengeScalar("c")
	require.True(t, cOriginal.Equal(cClone))

	tr.AppendScalar("b", ristretto.ScalarFromUint64(2))
	cOriginal2 := tr.ChallengeScalar("c")
	cClone2 := clone.ChallengeScalar("c")
	require.False(t, cOriginal2.Equal(cClone2))
}
