package generators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/svmzkp/generators"
)

func TestNewBulletproofGensIsDeterministic(t *testing.T) {
	g1 := generators.NewBulletproofGens("bp-test", 8)
	g2 := generators.NewBulletproofGens("bp-test", 8)

	for i := 0; i < 8; i++ {
		require.True(t, g1.G[i].Equal(g2.G[i]))
		require.True(t, g1.H[i].Equal(g2.H[i]))
	}
}

func TestNewBulletproofGensDistinctLabelsDiverge(t *testing.T) {
	g1 := generators.NewBulletproofGens("bp-label-a", 4)
	g2 := generators.NewBulletproofGens("bp-label-b", 4)
	require.False(t, g1.G[0].Equal(g2.G[0]))
}

func TestCapacityMatchesConstructionSize(t *testing.T) {
	g := generators.NewBulletproofGens("bp-capacity", 16)
	require.Equal(t, 16, g.Capacity())
}

func TestSliceReturnsPrefix(t *testing.T) {
	g := generators.NewBulletproofGens("bp-slice", 8)
	s, err := g.Slice(4)
	require.NoError(t, err)
	require.Len(t, s.G, 4)
	for i := 0; i < 4; i++ {
		require.True(t, s.G[i].Equal(g.G[i]))
		require.True(t, s.H[i].Equal(g.H[i]))
	}
}

func TestSliceRejectsOversizedLength(t *testing.T) {
	g := generators.NewBulletproofGens("bp-slice-oob", 4)
	_, err := g.Slice(8)
	require.Error(t, err)
}

func TestShareReturnsDisjointSlices(t *testing.T) {
	g := generators.NewBulletproofGens("bp-share", 8)
	s0, err := g.Share(4, 0)
	require.NoError(t, err)
	s1, err := g.Share(4, 1)
	require.NoError(t, err)

	require.True(t, s0.G[0].Equal(g.G[0]))
	require.True(t, s1.G[0].Equal(g.G[4]))
	require.False(t, s0.G[0].Equal(s1.G[0]))
}

func TestShareRejectsOutOfBoundsIndex(t *testing.T) {
	g := generators.NewBulletproofGens("bp-share-oob", 8)
	_, err := g.Share(4, 2)
	require.Error(t, err)
}
