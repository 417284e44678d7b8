package generators_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
)

func TestPedersenScalarCommitIsBinding(t *testing.T) {
	g := generators.NewPedersenScalar("test-scalar")
	v := ristretto.ScalarFromUint64(5)
	r := ristretto.RandomScalar(rand.Reader)

	c1 := g.Commit(v, r)
	c2 := g.Commit(v, r)
	require.True(t, c1.Equal(c2))

	other := g.Commit(ristretto.ScalarFromUint64(6), r)
	require.False(t, c1.Equal(other))
}

func TestPedersenVectorFromScalarMatchesScalarForm(t *testing.T) {
	scalarGens := generators.NewPedersenScalar("lift")
	vecGens := generators.FromScalar(scalarGens)

	v := ristretto.RandomScalar(rand.Reader)
	r := ristretto.RandomScalar(rand.Reader)

	want := scalarGens.Commit(v, r)
	got, err := vecGens.Commit([]ristretto.Scalar{v}, r)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestPedersenVectorCommitRejectsLengthMismatch(t *testing.T) {
	g := generators.NewPedersenVector("length-check", 4)
	_, err := g.Commit([]ristretto.Scalar{ristretto.ScalarFromUint64(1)}, ristretto.RandomScalar(rand.Reader))
	require.Error(t, err)

	var zkErr *errs.Error
	require.ErrorAs(t, err, &zkErr)
	require.Equal(t, errs.InvalidGeneratorsLength, zkErr.Kind)
}

func TestIterateOneIsIdentity(t *testing.T) {
	g := generators.NewPedersenVector("rotate", 4)
	identity := g.Iterate(1)
	for i := 0; i < 4; i++ {
		require.True(t, identity.B[i].Equal(g.B[i]))
	}
}

func TestIterateRotatesOnlyTheWindow(t *testing.T) {
	g := generators.NewPedersenVector("rotate-window", 4)
	windowed := g.Iterate(3)

	require.True(t, windowed.B[0].Equal(g.B[2]))
	require.True(t, windowed.B[1].Equal(g.B[0]))
	require.True(t, windowed.B[2].Equal(g.B[1]))
	// Outside the window, bases are untouched.
	require.True(t, windowed.B[3].Equal(g.B[3]))
}

func TestIterateFullLengthRotatesWholeVectorByOne(t *testing.T) {
	g := generators.NewPedersenVector("rotate-full", 4)
	rotated := g.Iterate(4)

	require.True(t, rotated.B[0].Equal(g.B[3]))
	for i := 1; i < 4; i++ {
		require.True(t, rotated.B[i].Equal(g.B[i-1]))
	}
}

func TestScalarBaseSumsVectorBases(t *testing.T) {
	g := generators.NewPedersenVector("scalar-base", 3)
	base := g.ScalarBase()

	want := g.B[0].Add(g.B[1]).Add(g.B[2])
	require.True(t, base.B.Equal(want))
	require.True(t, base.BBlinding.Equal(g.BBlinding))
}

func TestVectorFromBulletproofMatchesGeneratorSlices(t *testing.T) {
	bp := generators.NewBulletproofGens("vfb", 4)
	g, err := generators.VectorFromBulletproof(bp, 4, "vfb-channel")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.True(t, g.B[i].Equal(bp.G[i].Add(bp.H[i])))
	}
}

func TestVectorFromBulletproofRejectsOversizedLength(t *testing.T) {
	bp := generators.NewBulletproofGens("vfb-small", 4)
	_, err := generators.VectorFromBulletproof(bp, 8, "vfb-channel")
	require.Error(t, err)
}

func TestExpectedAClosedFormMatchesEmbeddedACommitment(t *testing.T) {
	n := 4
	bp := generators.NewBulletproofGens("expected-a", n)
	gens, err := generators.VectorFromBulletproof(bp, n, "expected-a-channel")
	require.NoError(t, err)
	pcSum := gens.ScalarBase()

	m := make([]ristretto.Scalar, n)
	var sum ristretto.Scalar = ristretto.NewScalar()
	for i := range m {
		m[i] = ristretto.ScalarFromUint64(uint64(i + 1))
		sum = sum.Add(m[i])
	}
	rM := ristretto.RandomScalar(rand.Reader)
	rSum := ristretto.RandomScalar(rand.Reader)

	cM, err := gens.Commit(m, rM)
	require.NoError(t, err)
	cSum := pcSum.Commit(sum, rSum)

	nScalar := ristretto.ScalarFromUint64(uint64(n))
	u := make([]ristretto.Scalar, n)
	for i := range m {
		u[i] = nScalar.Mul(m[i]).Sub(sum)
	}
	aBlinding := nScalar.Mul(rM).Sub(rSum)

	a := pcSum.BBlinding.Mul(aBlinding).Add(ristretto.MultiMul(u, bp.G)).Add(ristretto.MultiMul(u, bp.H))
	expected := cM.Mul(nScalar).Sub(cSum)
	require.True(t, a.Equal(expected))
}

func TestRemoveBaseDropsExactlyRequestedIndices(t *testing.T) {
	g := generators.NewPedersenVector("remove", 5)
	reduced := g.RemoveBase(1, 3)
	require.Len(t, reduced.B, 3)
	require.True(t, reduced.B[0].Equal(g.B[0]))
	require.True(t, reduced.B[1].Equal(g.B[2]))
	require.True(t, reduced.B[2].Equal(g.B[4]))
}

func TestRemoveBaseIgnoresDuplicateIndices(t *testing.T) {
	g := generators.NewPedersenVector("remove-dup", 4)
	reduced := g.RemoveBase(2, 2, 2)
	require.Len(t, reduced.B, 3)
}
