package cascade_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascadia/cascade"
	"github.com/katalvlaran/cascadia/generate"
	"github.com/katalvlaran/cascadia/network"
)

func TestSelectSeeds_Validation(t *testing.T) {
	_, err := cascade.SelectSeeds(nil, 1)
	assert.ErrorIs(t, err, cascade.ErrNetworkNil)

	net, err := generate.Edgeless(4)
	require.NoError(t, err)

	_, err = cascade.SelectSeeds(net, -1)
	assert.ErrorIs(t, err, network.ErrInvalidConfiguration)

	_, err = cascade.SelectSeeds(net, 5)
	assert.ErrorIs(t, err, network.ErrInvalidConfiguration)
}

func TestSelectSeeds_ExactCountDistinctSorted(t *testing.T) {
	net, err := generate.Random(25, 0.1, generate.WithSeed(3))
	require.NoError(t, err)

	seeds, err := cascade.SelectSeeds(net, 6, cascade.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, seeds, 6)
	assert.True(t, sort.IntsAreSorted(seeds))

	seen := make(map[int]struct{}, len(seeds))
	for _, id := range seeds {
		_, dup := seen[id]
		assert.False(t, dup, "seed %d listed twice", id)
		seen[id] = struct{}{}
		assert.True(t, net.HasNode(id))
	}

	// The network's adoption flags match the returned sample exactly.
	var adopted int
	for id, flag := range net.AdoptedState() {
		if flag {
			adopted++
			_, isSeed := seen[id]
			assert.True(t, isSeed, "node %d adopted but not a seed", id)
		}
	}
	assert.Equal(t, 6, adopted)
}

func TestSelectSeeds_ResetsPriorState(t *testing.T) {
	net, err := generate.Edgeless(5)
	require.NoError(t, err)
	require.NoError(t, net.SetAdopted(0, true))
	require.NoError(t, net.SetAdopted(1, true))

	seeds, err := cascade.SelectSeeds(net, 1, cascade.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, 1, net.Stats().AdoptedCount, "re-seeding must clear earlier adopters")
}

func TestSelectSeeds_Boundaries(t *testing.T) {
	net, err := generate.Edgeless(3)
	require.NoError(t, err)

	none, err := cascade.SelectSeeds(net, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, 0, net.Stats().AdoptedCount)

	all, err := cascade.SelectSeeds(net, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, all)
	assert.Equal(t, 3, net.Stats().AdoptedCount)
}

func TestSelectSeeds_DeterministicForFixedSeed(t *testing.T) {
	pick := func(seed int64) []int {
		net, err := generate.Edgeless(40)
		require.NoError(t, err)
		seeds, err := cascade.SelectSeeds(net, 5, cascade.WithSeed(seed))
		require.NoError(t, err)
		return seeds
	}

	assert.Equal(t, pick(21), pick(21))
}
